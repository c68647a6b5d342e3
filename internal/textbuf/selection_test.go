package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSelectionIsPosSelected(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("0123456789"))
	b.SetSelection(2, 4) // [2,6)
	for p := 0; p < 10; p++ {
		want := p >= 2 && p < 6
		assert.Equal(t, want, b.IsPosSelected(p), "pos %d", p)
	}
}

func TestKillSelectionClears(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("abcdef"))
	b.SetSelection(1, 3)
	require.False(t, b.sel.Empty())
	b.KillSelection()
	assert.True(t, b.sel.Empty())
	assert.False(t, b.IsPosSelected(2))
}

func TestGetSelectedTextRange(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("the quick brown fox"))
	b.SetSelection(4, 5) // "quick"
	assert.Equal(t, "quick", string(b.GetSelectedText()))
}

func TestSetBlockSelectionExtractsColumns(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("abc\ndef\nghi"))
	b.SetBlockSelection(0, 1, b.Len(), 2) // column 1 of each row: "b","e","h"
	got := string(b.GetSelectedText())
	assert.Equal(t, "b\ne\nh", got)
}

func TestAdjustRangeFiveCases(t *testing.T) {
	// (a) entirely before
	s, e := adjustRange(10, 20, 0, 2, 5)
	assert.Equal(t, 13, s)
	assert.Equal(t, 23, e)

	// (b) overlaps head
	s, e = adjustRange(10, 20, 8, 4, 1)
	assert.Equal(t, 8, s)
	assert.Equal(t, 17, e)

	// (c) entirely inside — spec.md §8 scenario 5.
	s, e = adjustRange(3, 8, 5, 2, 1)
	assert.Equal(t, 3, s)
	assert.Equal(t, 7, e)

	// (d) overlaps tail
	s, e = adjustRange(10, 20, 15, 10, 2)
	assert.Equal(t, 10, s)
	assert.Equal(t, 17, e)

	// (e) entirely after
	s, e = adjustRange(10, 20, 25, 2, 1)
	assert.Equal(t, 10, s)
	assert.Equal(t, 20, e)
}
