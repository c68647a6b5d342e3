package textbuf

// Selection is spec.md §3.2's selection record: {startpos, endpos,
// startcol, endcol}. Interpretation (unchanged from spec.md):
//   - empty iff startpos > endpos (canonical empty: startpos=0, endpos=-1)
//   - block iff startcol <= endcol && startpos <= endpos
//   - range iff startcol > endcol && startpos < endpos
type Selection struct {
	StartPos, EndPos int
	StartCol, EndCol int
}

func emptySelection() Selection { return Selection{StartPos: 0, EndPos: -1} }

// Empty reports whether the selection is the canonical empty value.
func (s Selection) Empty() bool { return s.StartPos > s.EndPos }

// IsBlock reports whether s is a block (rectangular) selection.
func (s Selection) IsBlock() bool { return s.StartCol <= s.EndCol && s.StartPos <= s.EndPos }

// IsRange reports whether s is a contiguous range selection.
func (s Selection) IsRange() bool { return s.StartCol > s.EndCol && s.StartPos < s.EndPos }

// Granularity selects the unit extendSelection aligns to.
type Granularity int

const (
	GranChars Granularity = iota
	GranWords
	GranRows
	GranLines
)

// SetSelection sets a range selection [pos, pos+n), notifying the
// listener's Selected with the region's start position and length; no
// column information is passed.
func (b *Buffer) SetSelection(pos, n int) {
	if !b.sel.Empty() {
		b.notifyDeselect(b.sel)
	}
	pos = clampPos(pos, b.length)
	end := clampPos(pos+n, b.length)
	b.sel = Selection{
		StartPos: pos,
		EndPos:   end,
		StartCol: 1, // StartCol > EndCol marks "range", see IsRange
		EndCol:   0,
	}
	b.notifySelect(b.sel)
}

// KillSelection clears the current selection.
func (b *Buffer) KillSelection() {
	if b.sel.Empty() {
		return
	}
	old := b.sel
	b.sel = emptySelection()
	b.notifyDeselect(old)
}

// IsPosSelected reports whether pos falls within the current selection,
// range or block.
func (b *Buffer) IsPosSelected(pos int) bool {
	if b.sel.Empty() {
		return false
	}
	if b.sel.IsRange() {
		return pos >= b.sel.StartPos && pos < b.sel.EndPos
	}
	if b.sel.IsBlock() {
		row := b.RowStart(pos)
		if pos < b.sel.StartPos || row > b.sel.EndPos {
			return false
		}
		col := b.ColumnFromPos(row, pos)
		return col >= b.sel.StartCol && col < b.sel.EndCol
	}
	return false
}

// GetSelectedText returns the bytes covered by the current selection (for
// block selections, the rectangular extraction via extractTextBlock).
func (b *Buffer) GetSelectedText() []byte {
	if b.sel.Empty() {
		return nil
	}
	if b.sel.IsRange() {
		return b.ExtractText(b.sel.StartPos, b.sel.EndPos-b.sel.StartPos)
	}
	if b.sel.IsBlock() {
		return b.ExtractTextBlock(b.sel.StartPos, b.sel.EndPos, b.sel.StartCol, b.sel.EndCol)
	}
	return nil
}

// ExtendSelection expands the selection from the anchor to pos, aligned
// to granularity boundaries.
func (b *Buffer) ExtendSelection(pos int, gran Granularity) {
	anchor := b.anchor.pos
	lo, hi := anchor, pos
	if lo > hi {
		lo, hi = hi, lo
	}
	switch gran {
	case GranWords:
		lo = b.WordStart(lo)
		hi = b.WordEnd(hi)
	case GranRows:
		lo = b.RowStart(lo)
		hi = b.RowEnd(hi)
	case GranLines:
		lo = b.LineStart(lo)
		hi = b.LineEnd(hi)
	}
	b.SetSelection(lo, hi-lo)
}

// SetBlockSelection sets a rectangular selection covering columns
// [lcol,rcol) of the lines from position trow through position brow.
// trow and brow are byte positions, stored as the selection's
// StartPos/EndPos; they are not converted from row indices.
func (b *Buffer) SetBlockSelection(trow, lcol, brow, rcol int) {
	if !b.sel.Empty() {
		b.notifyDeselect(b.sel)
	}
	if lcol > rcol {
		lcol, rcol = rcol, lcol
	}
	b.sel = Selection{StartPos: trow, EndPos: brow, StartCol: lcol, EndCol: rcol}
	b.notifySelect(b.sel)
}

// ExtendBlockSelection extends a block selection's bottom-right corner to
// position row and column col, keeping the top-left anchor fixed.
func (b *Buffer) ExtendBlockSelection(row, col int) {
	top, lcol := b.sel.StartPos, b.sel.StartCol
	if row < top {
		top, row = row, top
	}
	if col < lcol {
		lcol, col = col, lcol
	}
	b.SetBlockSelection(top, lcol, row, col)
}

func (b *Buffer) notifySelect(s Selection)   { b.listener.Selected(Region{Pos: s.StartPos, Len: s.EndPos - s.StartPos}) }
func (b *Buffer) notifyDeselect(s Selection) { b.listener.Deselected(Region{Pos: s.StartPos, Len: s.EndPos - s.StartPos}) }

func clampPos(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

// adjustRange implements spec.md §4.6's five-case edit adjustment for
// a replace(pos, ndel, nins) at logical position pos.
func adjustRange(startPos, endPos, pos, ndel, nins int) (int, int) {
	delta := nins - ndel
	editEnd := pos + ndel
	switch {
	case editEnd <= startPos:
		// (a) entirely before: shift both endpoints.
		return startPos + delta, endPos + delta
	case pos <= startPos && editEnd < endPos:
		// (b) overlaps the head: clamp start to pos, extend end.
		return pos, endPos + delta
	case pos >= startPos && editEnd <= endPos:
		// (c) entirely inside: expand to cover the inserted range.
		return startPos, endPos + delta
	case pos < endPos && editEnd >= endPos && pos > startPos:
		// (d) overlaps the tail: extend end to pos+nins.
		return startPos, pos + nins
	default:
		// (e) after selection (pos >= endPos): no change.
		if pos >= endPos {
			return startPos, endPos
		}
		return startPos, endPos + delta
	}
}

func (b *Buffer) adjustSelectionsForEdit(pos, ndel, nins int) {
	if !b.sel.Empty() {
		s, e := adjustRange(b.sel.StartPos, b.sel.EndPos, pos, ndel, nins)
		b.sel.StartPos, b.sel.EndPos = s, e
	}
	if !b.hilite.Empty() {
		s, e := adjustRange(b.hilite.StartPos, b.hilite.EndPos, pos, ndel, nins)
		b.hilite.StartPos, b.hilite.EndPos = s, e
	}
}
