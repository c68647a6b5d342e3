package textbuf

import "github.com/gogglesmm/gogglesmm-sub010/internal/utf8util"

// Cursor/anchor navigation (spec.md §6.2). Cursor and anchor are each a
// (pos, row, col, vcol) tuple; vcol is the "preferred column" retained
// across vertical motion over short rows.

// SetCursorPos moves the cursor to pos, recomputing row/col/vcol.
func (b *Buffer) SetCursorPos(pos int) {
	pos = clampPos(pos, b.length)
	row := b.RowStart(pos)
	col := b.ColumnFromPos(row, pos)
	b.cursor = cursorPos{pos: pos, row: b.RowFromPos(pos), col: col, vcol: col}
	b.listener.Changed(pos)
}

// CursorPos returns the cursor's logical byte position.
func (b *Buffer) CursorPos() int { return b.cursor.pos }

// CursorRowCol returns the cursor's (row, col).
func (b *Buffer) CursorRowCol() (row, col int) { return b.cursor.row, b.cursor.col }

// SetAnchorPos moves the anchor (the fixed end of an extending
// selection) to pos.
func (b *Buffer) SetAnchorPos(pos int) {
	pos = clampPos(pos, b.length)
	row := b.RowStart(pos)
	col := b.ColumnFromPos(row, pos)
	b.anchor = cursorPos{pos: pos, row: b.RowFromPos(pos), col: col, vcol: col}
}

// AnchorPos returns the anchor's logical byte position.
func (b *Buffer) AnchorPos() int { return b.anchor.pos }

// LineStart returns the start of the '\n'-delimited line containing pos
// (as opposed to RowStart, which honours wrapping).
func (b *Buffer) LineStart(pos int) int {
	p := pos
	for p > 0 && b.ByteAt(p-1) != '\n' {
		p--
	}
	return p
}

// LineEnd returns the position of the '\n' terminating the line
// containing pos, or b.length if it's the last line.
func (b *Buffer) LineEnd(pos int) int {
	p := pos
	for p < b.length && b.ByteAt(p) != '\n' {
		p++
	}
	return p
}

// WordStart returns the start of the word containing (or preceding) pos.
func (b *Buffer) WordStart(pos int) int {
	p := pos
	for p > 0 {
		r, _ := b.CharAt(b.Dec(p))
		if !utf8util.IsWordRune(r) {
			break
		}
		p = b.Dec(p)
	}
	return p
}

// WordEnd returns the end of the word containing pos.
func (b *Buffer) WordEnd(pos int) int {
	p := pos
	for p < b.length {
		r, _ := b.CharAt(p)
		if !utf8util.IsWordRune(r) {
			break
		}
		p = b.Inc(p)
	}
	return p
}

// LeftWord moves pos to the start of the previous word.
func (b *Buffer) LeftWord(pos int) int {
	p := pos
	for p > 0 {
		r, _ := b.CharAt(b.Dec(p))
		if utf8util.IsWordRune(r) {
			break
		}
		p = b.Dec(p)
	}
	return b.WordStart(p)
}

// RightWord moves pos to the start of the next word.
func (b *Buffer) RightWord(pos int) int {
	p := b.WordEnd(pos)
	for p < b.length {
		r, _ := b.CharAt(p)
		if utf8util.IsWordRune(r) {
			break
		}
		p = b.Inc(p)
	}
	return p
}

// NextLine returns the position on the next '\n'-delimited line at the
// cursor's preferred column, clamped to that line's length.
func (b *Buffer) NextLine(pos, vcol int) int {
	end := b.LineEnd(pos)
	if end >= b.length {
		return pos
	}
	nextStart := end + 1
	return b.PosFromColumn(nextStart, vcol)
}

// PrevLine is NextLine's backward counterpart.
func (b *Buffer) PrevLine(pos, vcol int) int {
	start := b.LineStart(pos)
	if start == 0 {
		return pos
	}
	prevEnd := start - 1 // the '\n'
	prevStart := b.LineStart(prevEnd)
	return b.PosFromColumn(prevStart, vcol)
}

// NextRow/PrevRow are NextLine/PrevLine's wrap-aware counterparts,
// stepping by visible row instead of by '\n'-delimited line.
func (b *Buffer) NextRow(pos, vcol int) int {
	end := b.RowEnd(pos)
	if end >= b.length {
		return pos
	}
	return b.PosFromColumn(end, vcol)
}

func (b *Buffer) PrevRow(pos, vcol int) int {
	start := b.RowStart(pos)
	if start == 0 {
		return pos
	}
	prevStart := b.RowStart(start - 1)
	return b.PosFromColumn(prevStart, vcol)
}

// IsPosVisible reports whether pos falls within the current visrow
// window.
func (b *Buffer) IsPosVisible(pos int) bool {
	if len(b.visrow) == 0 {
		return false
	}
	return pos >= b.visrow[0] && pos <= b.visrow[len(b.visrow)-1]
}

var bracketPairs = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// MatchingBracket scans for the bracket matching the one at pos, used by
// Mode.ShowMatch rendering. It reports ok=false if ShowMatch is off, pos
// isn't on a bracket, or no match is found within the buffer.
func (b *Buffer) MatchingBracket(pos int) (match int, ok bool) {
	if !b.showMatch || pos >= b.length {
		return 0, false
	}
	open := b.ByteAt(pos)
	if close, isOpen := bracketPairs[open]; isOpen {
		depth := 1
		for p := pos + 1; p < b.length; p++ {
			switch b.ByteAt(p) {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return p, true
				}
			}
		}
		return 0, false
	}
	for o, c := range bracketPairs {
		if c == open {
			depth := 1
			for p := pos - 1; p >= 0; p-- {
				switch b.ByteAt(p) {
				case open:
					depth++
				case o:
					depth--
					if depth == 0 {
						return p, true
					}
				}
			}
			return 0, false
		}
	}
	return 0, false
}
