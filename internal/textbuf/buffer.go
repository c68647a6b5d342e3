// Package textbuf implements the TEXT engine (spec.md §3.2, §4.3-§4.7):
// a gap-buffered, UTF-8-aware multi-line text store with styled spans,
// word-wrap layout, range/block selection, and incremental row-index
// maintenance, ported from cfox/lib/FXText.cpp. The package is a single
// aggregate (Buffer) owned by exactly one goroutine, per spec.md §5 — no
// internal locking is done, matching FXText's single-owner-thread design.
package textbuf

import (
	"github.com/google/uuid"

	"github.com/gogglesmm/gogglesmm-sub010/internal/utf8util"
)

const (
	minGap = 256
	maxGap = 8192
)

// Buffer is the gap-buffered byte store plus everything layered on top of
// it (style buffer, layout cache, selection, cursor/anchor). Fields are
// grouped the way FXText's member layout groups them: storage, then
// layout state, then interaction state.
type Buffer struct {
	id uuid.UUID

	text      []byte // physical storage, length gapStart + (len(text)-gapEnd) + gap
	gapStart  int
	gapEnd    int
	length    int // logical length, excludes gap

	styled bool
	style  []byte // parallel to text; only meaningful when styled

	readOnly bool

	wordWrap  bool
	fixedWrap bool
	overstrike bool
	noTabs     bool
	autoIndent bool
	showActive bool
	showMatch  bool

	tabColumns  int
	wrapColumns int // wrap bound in columns, for both fixed-wrap and word-wrap
	wrapWidth   int // pixel width, stored by SetWrapWidth; layout does not read it

	font   Font
	canvas Canvas

	styleTable []StyleEntry

	visrow []int // visible-row position index, visrow[0]=toppos
	toprow int
	nrows  int

	cursor cursorPos
	anchor cursorPos

	sel   Selection
	hilite Selection

	listener Listener

	undo *undoStack
}

// cursorPos mirrors spec.md §3.2's (pos, row, col, vcol) tuple.
type cursorPos struct {
	pos  int
	row  int
	col  int
	vcol int
}

// NewBuffer returns an empty, editable buffer with a minimum-size gap, per
// spec.md §3.2's lifecycle note ("created empty with a minimum-size gap").
func NewBuffer() *Buffer {
	b := &Buffer{
		id:          uuid.New(),
		text:        make([]byte, minGap),
		gapStart:    0,
		gapEnd:      minGap,
		tabColumns:  8,
		wrapColumns: 80,
		listener:    noopListener{},
		undo:        newUndoStack(64),
	}
	b.visrow = []int{0, 0}
	b.nrows = 1
	return b
}

// ID returns the buffer's session id, surfaced in snapshot metadata and
// structured log fields once a host embeds many buffers.
func (b *Buffer) ID() uuid.UUID { return b.id }

// Len returns the logical length L, excluding the gap.
func (b *Buffer) Len() int { return b.length }

// moveGap relocates the gap so gapStart == pos, memmoving the smaller
// side, with the style buffer moved in lockstep (spec.md §4.3).
func (b *Buffer) moveGap(pos int) {
	if pos == b.gapStart {
		return
	}
	gapLen := b.gapEnd - b.gapStart
	if pos < b.gapStart {
		copy(b.text[pos+gapLen:b.gapStart+gapLen], b.text[pos:b.gapStart])
		if b.styled {
			copy(b.style[pos+gapLen:b.gapStart+gapLen], b.style[pos:b.gapStart])
		}
		b.gapStart = pos
		b.gapEnd = pos + gapLen
	} else {
		n := pos - b.gapStart
		copy(b.text[b.gapStart:b.gapStart+n], b.text[b.gapEnd:b.gapEnd+n])
		if b.styled {
			copy(b.style[b.gapStart:b.gapStart+n], b.style[b.gapEnd:b.gapEnd+n])
		}
		b.gapStart += n
		b.gapEnd += n
	}
}

// resizeGap ensures the gap is exactly sz bytes (raised to minGap when sz
// is smaller), reallocating storage if
// needed (spec.md §4.3). The gap is always moved to gapStart first so the
// reallocation copy is a simple two-region split.
func (b *Buffer) resizeGap(sz int) {
	if sz < minGap {
		sz = minGap
	}
	cur := b.gapEnd - b.gapStart
	if cur == sz {
		return
	}
	oldGapEnd := b.gapEnd
	next := make([]byte, b.length+sz)
	copy(next[:b.gapStart], b.text[:b.gapStart])
	copy(next[b.gapStart+sz:], b.text[oldGapEnd:])
	b.text = next
	if b.styled {
		nextStyle := make([]byte, b.length+sz)
		copy(nextStyle[:b.gapStart], b.style[:b.gapStart])
		copy(nextStyle[b.gapStart+sz:], b.style[oldGapEnd:])
		b.style = nextStyle
	}
	b.gapEnd = b.gapStart + sz
}

// phys maps a logical byte position to its physical index in b.text,
// per spec.md §4.3's byte_at mapping ("branchless" in the original; Go's
// branch predictor makes the explicit conditional just as fast and much
// more readable).
func (b *Buffer) phys(pos int) int {
	if pos < b.gapStart {
		return pos
	}
	return pos + (b.gapEnd - b.gapStart)
}

// ByteAt returns the byte at logical position pos.
func (b *Buffer) ByteAt(pos int) byte {
	return b.text[b.phys(pos)]
}

// StyleAt returns the style index at logical position pos, or 0 if the
// buffer is not styled.
func (b *Buffer) StyleAt(pos int) byte {
	if !b.styled {
		return 0
	}
	return b.style[b.phys(pos)]
}

// CharAt decodes the UTF-8 code point starting at pos, returning the rune
// and its byte width. The gap is never moved into the middle of a code
// point (ValidPos enforces this), so a code point starting before the
// gap never straddles it; one that starts at or after the gap reads
// contiguous physical bytes directly.
func (b *Buffer) CharAt(pos int) (rune, int) {
	lead := b.ByteAt(pos)
	n := utf8util.Count(lead)
	if n == 1 {
		return rune(lead), 1
	}
	if pos+n > b.length {
		return utf8util.RuneError, 1
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = b.ByteAt(pos + i)
	}
	r, size := utf8util.Decode(buf)
	return r, size
}

// ValidPos clamps pos to [0,L] and adjusts backward to the nearest UTF-8
// lead byte, at most three bytes back (spec.md §4.3).
func (b *Buffer) ValidPos(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= b.length {
		return b.length
	}
	for i := 0; i < 3 && pos > 0 && utf8util.IsCont(b.ByteAt(pos)); i++ {
		pos--
	}
	return pos
}

// Inc steps one code point forward from pos.
func (b *Buffer) Inc(pos int) int {
	if pos >= b.length {
		return b.length
	}
	_, n := b.CharAt(pos)
	return pos + n
}

// Dec steps one code point backward from pos.
func (b *Buffer) Dec(pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && utf8util.IsCont(b.ByteAt(pos)) {
		pos--
	}
	return pos
}

// ExtractText copies out the n bytes of logical text starting at pos,
// per spec.md §6.2's extractText.
func (b *Buffer) ExtractText(pos, n int) []byte {
	if pos < 0 {
		pos = 0
	}
	if pos+n > b.length {
		n = b.length - pos
	}
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = b.ByteAt(pos + i)
	}
	return out
}

// GetText returns the whole logical content.
func (b *Buffer) GetText() []byte { return b.ExtractText(0, b.length) }

// SetStyled enables or disables the parallel style buffer.
func (b *Buffer) SetStyled(on bool) {
	if on == b.styled {
		return
	}
	b.styled = on
	if on {
		b.style = make([]byte, len(b.text))
	} else {
		b.style = nil
	}
}

// SetHiliteStyles installs the externally owned style table (spec.md
// §3.2, §5: "style table: externally owned; TEXT holds a non-owning
// pointer"). Go has no raw pointers here, but the contract is the same:
// TEXT never mutates the slice it's given.
func (b *Buffer) SetHiliteStyles(table []StyleEntry) { b.styleTable = table }

func (b *Buffer) SetReadOnly(ro bool)  { b.readOnly = ro }
func (b *Buffer) ReadOnly() bool       { return b.readOnly }
func (b *Buffer) SetWordWrap(on bool)  { b.wordWrap = on }
func (b *Buffer) SetFixedWrap(on bool) { b.fixedWrap = on }
func (b *Buffer) SetOverstrike(on bool) { b.overstrike = on }
func (b *Buffer) SetNoTabs(on bool)     { b.noTabs = on }
func (b *Buffer) SetAutoIndent(on bool) { b.autoIndent = on }
func (b *Buffer) SetShowActive(on bool) { b.showActive = on }
func (b *Buffer) SetShowMatch(on bool)  { b.showMatch = on }
func (b *Buffer) SetTabColumns(n int)   { b.tabColumns = n }
func (b *Buffer) SetWrapColumns(n int)  { b.wrapColumns = n }
func (b *Buffer) SetWrapWidth(n int)    { b.wrapWidth = n }
func (b *Buffer) SetListener(l Listener) {
	if l == nil {
		l = noopListener{}
	}
	b.listener = l
}
func (b *Buffer) SetFont(f Font)     { b.font = f }
func (b *Buffer) SetCanvas(c Canvas) { b.canvas = c }
