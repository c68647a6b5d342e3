package textbuf

// Layout implements spec.md §4.4: row wrapping, measurement, and
// incremental visible-row-index maintenance. Two regimes are supported,
// selected by Buffer.wordWrap/fixedWrap: no-wrap (rows end only at '\n')
// and word-wrap (rows break at the last whitespace before the wrap
// bound, or after at least one character if there is none).

// RowStart returns the logical position of the start of the row
// containing pos.
func (b *Buffer) RowStart(pos int) int {
	p := pos
	for p > 0 && b.ByteAt(p-1) != '\n' {
		p--
	}
	// Re-wrap forward from the line start to find the row boundary that
	// covers pos; this is the simple, always-correct path spec.md allows
	// ("re-measures... before and after the edit") at the cost of
	// re-wrapping the whole line on every query outside the cached index.
	row := p
	for {
		next := b.wrap(row)
		if pos < next || next >= b.length {
			return row
		}
		row = next
	}
}

// RowEnd returns the position just past the row containing pos
// (exclusive), i.e. wrap(RowStart(pos)).
func (b *Buffer) RowEnd(pos int) int {
	return b.wrap(b.RowStart(pos))
}

// wrap returns the start of the next row after start, per spec.md §4.4.
func (b *Buffer) wrap(start int) int {
	if start >= b.length {
		return b.length
	}
	if !b.wordWrap && !b.fixedWrap {
		p := start
		for p < b.length {
			if b.ByteAt(p) == '\n' {
				return p + 1
			}
			p++
		}
		return p
	}
	return b.wrapAt(start)
}

// wrapColumnLimit resolves the wrap bound in logical columns: both
// fixed-wrap and word-wrap use wrapColumns (80 when unset) as a column
// budget. No pixel measurement is done, with or without a Font, and
// wrapWidth does not affect wrapping.
func (b *Buffer) wrapColumnLimit() int {
	if b.wrapColumns > 0 {
		return b.wrapColumns
	}
	return 80
}

// wrapAt implements the word-wrap/fixed-wrap row-break rule: break at the
// last whitespace before the limit is exceeded; if none, break after at
// least one character. "Before the limit is exceeded" keeps a row's
// column count strictly under limit (col+w==limit already counts as
// exceeded), matching spec.md §8's concrete wrap scenario.
func (b *Buffer) wrapAt(start int) int {
	limit := b.wrapColumnLimit()
	col := 0
	lastSpace := -1
	p := start
	for p < b.length {
		c := b.ByteAt(p)
		if c == '\n' {
			return p + 1
		}
		w := b.charColumns(c, col)
		if col+w >= limit && p > start {
			if lastSpace >= 0 {
				return lastSpace + 1
			}
			return p
		}
		if c == ' ' || c == '\t' {
			lastSpace = p
		}
		col += w
		p++
	}
	return p
}

// charColumns is the column-arithmetic half of spec.md §4.4's character
// width rules: tabs expand to tab-column boundaries, everything else
// (including control bytes, which the render layer draws as ^X) counts
// as a single logical column here — column arithmetic and pixel
// measurement are independent, per spec.md's "Tab columns and tab pixel
// width are independent settings."
func (b *Buffer) charColumns(c byte, col int) int {
	if c == '\t' {
		tc := b.tabColumns
		if tc <= 0 {
			tc = 8
		}
		return tc - col%tc
	}
	return 1
}

// ColumnFromPos returns the logical column of pos relative to rowStart,
// expanding tabs to tab-column boundaries.
func (b *Buffer) ColumnFromPos(rowStart, pos int) int {
	col := 0
	for p := rowStart; p < pos && p < b.length; {
		c := b.ByteAt(p)
		col += b.charColumns(c, col)
		p++
	}
	return col
}

// PosFromColumn returns the position in the row starting at rowStart
// whose logical column is col (or the row's end, if the row is shorter).
func (b *Buffer) PosFromColumn(rowStart, col int) int {
	cur := 0
	rowEnd := b.wrap(rowStart)
	for p := rowStart; p < rowEnd; p++ {
		c := b.ByteAt(p)
		if c == '\n' {
			return p
		}
		w := b.charColumns(c, cur)
		if cur+w > col {
			return p
		}
		cur += w
	}
	return rowEnd
	// Note: rowEnd may include the trailing '\n' under no-wrap; callers
	// doing column arithmetic across a line boundary should clamp.
}

// CountCols returns the number of logical columns of the row containing
// pos.
func (b *Buffer) CountCols(pos int) int {
	start := b.RowStart(pos)
	end := b.RowEnd(pos)
	return b.ColumnFromPos(start, end)
}

// CountLines counts '\n'-delimited lines in [beg,end).
func (b *Buffer) CountLines(beg, end int) int {
	n := 0
	for p := beg; p < end; p++ {
		if b.ByteAt(p) == '\n' {
			n++
		}
	}
	return n
}

// CountRows counts wrapped rows in [beg,end).
func (b *Buffer) CountRows(beg, end int) int {
	n := 0
	for p := beg; p < end; {
		p = b.wrap(p)
		n++
	}
	return n
}

// MeasureText reflows [from,to) under the current wrap mode, returning
// the row count, the maximum logical-column width reached, and the
// height. maxWidth is always in logical columns (no pixel width is
// measured, with or without a Font); height is rows times the Font's
// line height, or 0 when no Font is installed.
func (b *Buffer) MeasureText(from, to int) (rows, maxWidth, height int) {
	p := from
	for p < to {
		rowStart := p
		p = b.wrap(p)
		w := b.ColumnFromPos(rowStart, p)
		if w > maxWidth {
			maxWidth = w
		}
		rows++
	}
	if rows == 0 {
		rows = 1
	}
	if b.font != nil {
		height = rows * b.font.LineHeight()
	}
	return rows, maxWidth, height
}

// RowFromPos returns the index of the row containing pos, counted from
// the top of the buffer (not the visible window).
func (b *Buffer) RowFromPos(pos int) int {
	pos = b.RowStart(clampPos(pos, b.length))
	p := 0
	row := 0
	for p < pos && p < b.length {
		p = b.wrap(p)
		row++
	}
	return row
}

// PosFromRow returns the start position of the r-th row from the top of
// the buffer (not the visible window).
func (b *Buffer) PosFromRow(r int) int {
	p := 0
	for i := 0; i < r && p < b.length; i++ {
		p = b.wrap(p)
	}
	return p
}

// reflow recomputes the visrow index after an edit touching [p, p+ndel)
// replaced by nins inserted bytes. It refreshes nrows and visrow and
// clamps toprow to a valid row; keeppos is not used, so toprow is not
// scrolled to keep that position visible. This
// module keeps the index as a flat, fully-recomputed-on-demand slice
// rather than FXText's incremental above/inside/below-visible-window
// cases (Buffer has no fixed-size "visible window" concept without a
// Canvas attached) — RowFromPos/PosFromRow above already recompute from
// scratch in O(rows), so reflow's job is only to refresh nrows and keep
// toprow pointing at a valid row start.
func (b *Buffer) reflow(keeppos int) {
	b.nrows = b.CountRows(0, b.length) + 1
	if b.toprow >= b.nrows {
		b.toprow = b.nrows - 1
	}
	top := b.PosFromRow(b.toprow)
	end := top
	visrow := []int{top}
	for end < b.length {
		end = b.wrap(end)
		visrow = append(visrow, end)
	}
	if len(visrow) == 1 {
		visrow = append(visrow, b.length)
	}
	b.visrow = visrow
	_ = keeppos
}
