package textbuf

import (
	"fmt"

	"github.com/gogglesmm/gogglesmm-sub010/internal/utf8util"
)

// Font and Canvas are the only two external capabilities TEXT depends on
// (spec.md §1): character-width queries plus filled rectangles and
// clipped text drawing. No concrete backend is bundled here (Non-goal);
// cmd/gmtextd supplies a lipgloss-backed ANSI Canvas.
type Font interface {
	CharWidth(r rune) int
	Ascent() int
	LineHeight() int
	FixedPitch() bool
}

// Canvas draws into a rendering surface at pixel (or, for a text-mode
// backend, cell) coordinates.
type Canvas interface {
	FillRect(x, y, w, h int, fg, bg Color)
	DrawText(x, y int, text string, fg, bg Color)
}

// styleKind is the result of styleOf's lookup chain (spec.md §4.7):
// style-buffer byte, selection, highlight, active-row, control-char.
type styleKind struct {
	entry    StyleEntry
	hasEntry bool
	selected bool
	hilited  bool
	active   bool
	control  bool
	bracket  bool
}

// styleOf consults, in order, the style-buffer byte, selection
// range/block membership, highlight range membership, the active-row
// flag, the matching-bracket flag (if Mode.ShowMatch), and the
// control-character flag, per spec.md §4.7. Block highlights are not
// checked: isPosHilited reports false for them.
func (b *Buffer) styleOf(row, pos int) styleKind {
	var sk styleKind
	if b.styled {
		idx := int(b.StyleAt(pos))
		if idx >= 0 && idx < len(b.styleTable) {
			sk.entry = b.styleTable[idx]
			sk.hasEntry = true
		}
	}
	sk.selected = b.IsPosSelected(pos)
	sk.hilited = b.isPosHilited(pos)
	sk.active = b.showActive && row == b.cursor.row
	sk.control = utf8util.IsControl(b.ByteAt(pos))
	if match, ok := b.MatchingBracket(b.cursor.pos); ok {
		sk.bracket = pos == b.cursor.pos || pos == match
	}
	return sk
}

func (b *Buffer) isPosHilited(pos int) bool {
	if b.hilite.Empty() {
		return false
	}
	if b.hilite.IsRange() {
		return pos >= b.hilite.StartPos && pos < b.hilite.EndPos
	}
	return false
}

func (sk styleKind) colors() (fg, bg Color) {
	fg, bg = sk.entry.NormalFG, sk.entry.NormalBG
	if sk.hilited {
		fg, bg = sk.entry.HiliteFG, sk.entry.HiliteBG
	}
	if sk.selected {
		fg, bg = sk.entry.SelectedFG, sk.entry.SelectedBG
	}
	if sk.active && !sk.selected {
		bg = sk.entry.ActiveBG
	}
	if sk.bracket && !sk.selected {
		fg, bg = bg, fg
	}
	return fg, bg
}

// DrawTextRow paints the row starting at rowStart onto dc at pixel (x,y),
// switching style whenever styleOf changes, per spec.md §4.7.
func (b *Buffer) DrawTextRow(rowStart int, x, y int) {
	if b.canvas == nil {
		return
	}
	row := b.RowFromPos(rowStart)
	end := b.RowEnd(rowStart)
	col := 0
	runStart := rowStart
	var runStyle styleKind
	haveRun := false
	flush := func(upto int) {
		if !haveRun || runStart >= upto {
			return
		}
		fg, bg := runStyle.colors()
		b.canvas.DrawText(x+b.ColumnFromPos(rowStart, runStart), y, string(b.ExtractText(runStart, upto-runStart)), fg, bg)
	}
	for p := rowStart; p < end; {
		c := b.ByteAt(p)
		if c == '\n' {
			break
		}
		sk := b.styleOf(row, p)
		if !haveRun || sk != runStyle {
			flush(p)
			runStart = p
			runStyle = sk
			haveRun = true
		}
		w := b.charColumns(c, col)
		col += w
		_, n := b.CharAt(p)
		p += n
	}
	flush(end)
}

// CaretShape selects which glyph PaintCaret draws.
type CaretShape int

const (
	CaretBar CaretShape = iota // 2-unit-wide vertical bar without serifs, insert mode
	CaretBlock                 // rectangle the width of the character under it, overstrike mode
)

// PaintCaret draws the caret at the cursor's current (row,col), idempotent
// on the visible flag (blink is driven externally by a timer toggling
// visible).
func (b *Buffer) PaintCaret(x, y int, visible bool, fg Color) {
	if b.canvas == nil || !visible {
		return
	}
	shape := CaretBar
	if b.overstrike {
		shape = CaretBlock
	}
	cx := x + b.cursor.col
	switch shape {
	case CaretBar:
		b.canvas.FillRect(cx, y, 2, b.lineHeight(), fg, 0)
	case CaretBlock:
		w := 1
		if b.cursor.pos < b.length {
			r, _ := b.CharAt(b.cursor.pos)
			if b.font != nil {
				w = b.font.CharWidth(r)
			}
		}
		b.canvas.FillRect(cx, y, w, b.lineHeight(), fg, 0)
	}
}

func (b *Buffer) lineHeight() int {
	if b.font != nil {
		return b.font.LineHeight()
	}
	return 1
}

// DrawGutter paints the line-number gutter (spec.md §4.7): a band of
// width barColumns*font("8") on the left, decimal row+1 right-justified
// per visible row.
func (b *Buffer) DrawGutter(barColumns, x, y int, fg, bg Color) {
	if b.canvas == nil || barColumns <= 0 {
		return
	}
	width := barColumns
	if b.font != nil {
		width = barColumns * b.font.CharWidth('8')
	}
	rowY := y
	for i, top := range b.visrow {
		if i == len(b.visrow)-1 {
			break
		}
		_ = top
		label := fmt.Sprintf("%*d", barColumns, b.toprow+i+1)
		b.canvas.FillRect(x, rowY, width, b.lineHeight(), fg, bg)
		b.canvas.DrawText(x, rowY, label, fg, bg)
		rowY += b.lineHeight()
	}
}
