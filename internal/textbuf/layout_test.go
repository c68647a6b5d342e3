package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertComputesRowsAndColumns(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("ab\ncd"))
	require.Equal(t, 5, b.Len())
	assert.Equal(t, 2, b.CountRows(0, b.Len()))
	assert.Equal(t, 3, b.RowStart(4))
	assert.Equal(t, 1, b.ColumnFromPos(3, 4))
}

func TestWordWrapBreaksAtWhitespaceAndForcesProgress(t *testing.T) {
	b := NewBuffer()
	b.SetWordWrap(true)
	b.SetWrapColumns(5)
	b.InsertText(0, []byte("aa bbb ccccc"))

	var rows []string
	pos := 0
	for pos < b.Len() {
		end := b.RowEnd(pos)
		rows = append(rows, string(b.ExtractText(pos, end-pos)))
		pos = end
	}
	assert.Equal(t, []string{"aa ", "bbb ", "cccc", "c"}, rows)
}

func TestCountRowsMatchesNrowsInvariant(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("one\ntwo\nthree"))
	assert.Equal(t, 3, b.CountRows(0, b.Len()))
	assert.Equal(t, b.CountRows(0, b.Len())+1, b.nrows)
}

func TestRowFromPosAndPosFromRowRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("alpha\nbeta\ngamma"))
	for r := 0; r < b.CountRows(0, b.Len()); r++ {
		pos := b.PosFromRow(r)
		assert.Equal(t, r, b.RowFromPos(pos), "row %d", r)
	}
}

func TestColumnFromPosAndPosFromColumnRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("hello"))
	rowStart := b.RowStart(0)
	for c := 0; c <= 5; c++ {
		pos := b.PosFromColumn(rowStart, c)
		assert.Equal(t, c, b.ColumnFromPos(rowStart, pos), "col %d", c)
	}
}

func TestTabExpandsToTabColumnBoundary(t *testing.T) {
	b := NewBuffer()
	b.SetTabColumns(4)
	b.InsertText(0, []byte("a\tb"))
	// 'a' at col 0 occupies col 0, tab at col 1 expands to col 4, 'b' at col 4.
	assert.Equal(t, 4, b.ColumnFromPos(0, 2))
}
