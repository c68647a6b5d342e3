package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceGrowsAndShrinksAcrossGap(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("abcdef"))
	b.ReplaceText(2, 2, []byte("XYZ")) // "cd" -> "XYZ"
	assert.Equal(t, "abXYZef", string(b.GetText()))
	b.ReplaceText(2, 3, []byte("c"))
	assert.Equal(t, "abcef", string(b.GetText()))
}

func TestRemoveTextShrinksLength(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("hello world"))
	b.RemoveText(5, 6)
	assert.Equal(t, "hello", string(b.GetText()))
}

func TestReadOnlyEditsAreNoOps(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("fixed"))
	b.SetReadOnly(true)
	b.InsertText(0, []byte("nope"))
	b.RemoveText(0, 2)
	assert.Equal(t, "fixed", string(b.GetText()))
}

func TestSelectionAdjustedOnInsideEdit(t *testing.T) {
	// spec.md §8 TEXT scenario 5: selection [3,8) + replace(5,2,"Z") -> [3,7).
	b := NewBuffer()
	b.InsertText(0, []byte("0123456789"))
	b.SetSelection(3, 5) // [3,8)
	b.ReplaceText(5, 2, []byte("Z"))
	sel := b.sel
	require.False(t, sel.Empty())
	assert.Equal(t, 3, sel.StartPos)
	assert.Equal(t, 7, sel.EndPos)
}

func TestAppendAndClearText(t *testing.T) {
	b := NewBuffer()
	b.AppendText([]byte("abc"))
	b.AppendText([]byte("def"))
	assert.Equal(t, "abcdef", string(b.GetText()))
	b.ClearText()
	assert.Equal(t, 0, b.Len())
}
