package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTextForward(t *testing.T) {
	// spec.md §8 TEXT scenario 2.
	b := NewBuffer()
	b.InsertText(0, []byte("hello world\nhello world\n"))

	beg, end, ok := b.FindText("world", 0, SearchFlag(0))
	require.True(t, ok)
	assert.Equal(t, 6, beg)
	assert.Equal(t, 11, end)
}

func TestFindTextBackwardFindsNearestPrecedingMatch(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("hello world\nhello world\n"))

	// No wrap needed: the first occurrence (ending at 11) precedes pos 15.
	beg, end, ok := b.FindText("world", 15, SearchBackward)
	require.True(t, ok)
	assert.Equal(t, 6, beg)
	assert.Equal(t, 11, end)
}

func TestFindTextBackwardWraps(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("hello world\nhello world\n"))

	// Nothing ends at or before pos 3; wrapping resumes from the buffer's
	// end and finds the second (last) occurrence first.
	beg, end, ok := b.FindText("world", 3, SearchBackward|SearchWrap)
	require.True(t, ok)
	assert.Equal(t, 18, beg)
	assert.Equal(t, 23, end)
}

func TestFindTextIgnoreCase(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("Hello World"))
	_, _, ok := b.FindText("world", 0, SearchFlag(0))
	assert.False(t, ok)
	beg, end, ok := b.FindText("world", 0, SearchIgnoreCase)
	require.True(t, ok)
	assert.Equal(t, 6, beg)
	assert.Equal(t, 11, end)
}

func TestReplaceFoundSubstitutesCapture(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("foo=1 bar=2"))
	_, ok := b.ReplaceFound(`(\w+)=(\d+)`, 0, SearchRegex, `\1:\2`)
	require.True(t, ok)
	assert.Equal(t, "foo:1 bar=2", string(b.GetText()))
}
