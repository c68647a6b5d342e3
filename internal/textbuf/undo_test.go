package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRedoInsert(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("hello"))
	require.True(t, b.CanUndo())
	require.False(t, b.CanRedo())

	assert.True(t, b.Undo())
	assert.Equal(t, "", string(b.GetText()))
	assert.True(t, b.CanRedo())

	assert.True(t, b.Redo())
	assert.Equal(t, "hello", string(b.GetText()))
}

func TestUndoRedoBlockOverstrike(t *testing.T) {
	// spec.md §8 TEXT scenario 6: Undo replays the bytes the block
	// overstrike's replace removed, restoring the buffer byte-for-byte;
	// Redo re-applies the overstrike.
	b := NewBuffer()
	b.InsertText(0, []byte("abc\ndef\nghi"))
	before := string(b.GetText())

	extracted := b.ExtractTextBlock(0, b.Len(), 0, 1)
	b.OverstrikeTextBlock(0, b.Len(), 0, []byte("XXX"))
	after := string(b.GetText())
	require.NotEqual(t, before, after)

	require.True(t, b.Undo())
	assert.Equal(t, before, string(b.GetText()))
	require.True(t, b.Redo())
	assert.Equal(t, after, string(b.GetText()))
	_ = extracted
}

func TestUndoStackTruncatesBeyondMax(t *testing.T) {
	s := newUndoStack(2)
	s.record(0, nil, []byte("a"))
	s.record(1, nil, []byte("b"))
	s.record(2, nil, []byte("c"))
	assert.Len(t, s.entries, 2)
}

func TestRecordingSuppressedWhileActive(t *testing.T) {
	s := newUndoStack(10)
	s.active = true
	s.record(0, nil, []byte("a"))
	assert.Empty(t, s.entries)
}
