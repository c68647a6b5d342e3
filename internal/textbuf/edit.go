package textbuf

// replace is the single edit primitive everything else (InsertText,
// RemoveText, block ops) is built from, per spec.md §4.5: move the gap
// to pos, enlarge it if needed, copy the insertion in, shrink the gap
// back down if it grew past maxGap, then run layout maintenance and
// selection adjustment. Read-only buffers make this and every caller a
// no-op (spec.md §7: "edit primitives check an editable flag and become
// no-ops when the buffer is read-only").
func (b *Buffer) replace(pos, ndel int, ins []byte, style byte) {
	if b.readOnly {
		return
	}
	pos = clampPos(pos, b.length)
	if ndel < 0 {
		ndel = 0
	}
	if pos+ndel > b.length {
		ndel = b.length - pos
	}
	nins := len(ins)

	prevBytes := b.ExtractText(pos, ndel)
	b.undo.record(pos, prevBytes, ins)

	b.moveGap(pos)
	// Delete: move gapEnd forward past the ndel bytes being removed,
	// absorbing them into the gap.
	b.gapEnd += ndel
	// Ensure the (now ndel-larger) gap can also hold the insertion.
	if b.gapEnd-b.gapStart < nins {
		b.resizeGap(nins)
	}
	// Insert: copy into the gap, growing gapStart.
	for i, c := range ins {
		b.text[b.gapStart+i] = c
		if b.styled {
			b.style[b.gapStart+i] = style
		}
	}
	b.gapStart += nins
	b.length += nins - ndel

	if b.gapEnd-b.gapStart > maxGap {
		b.resizeGap(minGap)
	}

	b.reflow(pos)
	b.adjustSelectionsForEdit(pos, ndel, nins)
	b.syncCursorAfterEdit(pos, ndel, nins)

	if ndel > 0 && nins > 0 {
		b.listener.Replaced(pos, ndel, nins)
	} else if ndel > 0 {
		b.listener.Deleted(pos, ndel)
	} else if nins > 0 {
		b.listener.Inserted(pos, nins)
	}
	b.listener.Changed(b.cursor.pos)
}

// InsertText inserts bytes at pos (spec.md §6.2's insertText / insert :=
// replace(pos,0,bytes,len,style)).
func (b *Buffer) InsertText(pos int, data []byte) { b.replace(pos, 0, data, 0) }

// InsertStyledText is InsertText's styled variant.
func (b *Buffer) InsertStyledText(pos int, data []byte, style byte) { b.replace(pos, 0, data, style) }

// RemoveText deletes n bytes starting at pos (remove := replace(pos,n,∅,0,0)).
func (b *Buffer) RemoveText(pos, n int) { b.replace(pos, n, nil, 0) }

// ReplaceText replaces n bytes starting at pos with data.
func (b *Buffer) ReplaceText(pos, n int, data []byte) { b.replace(pos, n, data, 0) }

// ReplaceStyledText is ReplaceText's styled variant.
func (b *Buffer) ReplaceStyledText(pos, n int, data []byte, style byte) {
	b.replace(pos, n, data, style)
}

// SetText replaces the whole buffer contents.
func (b *Buffer) SetText(data []byte) { b.replace(0, b.length, data, 0) }

// AppendText appends data to the end of the buffer.
func (b *Buffer) AppendText(data []byte) { b.replace(b.length, 0, data, 0) }

// ClearText empties the buffer.
func (b *Buffer) ClearText() { b.replace(0, b.length, nil, 0) }

// syncCursorAfterEdit keeps cursor.row/col consistent with cursor.pos
// after an edit, per spec.md §3.2's invariant: "cursor.row =
// rowFromPos(rowStart(cursor.pos))".
func (b *Buffer) syncCursorAfterEdit(pos, ndel, nins int) {
	delta := nins - ndel
	switch {
	case pos+ndel <= b.cursor.pos:
		b.cursor.pos += delta
	case pos < b.cursor.pos:
		b.cursor.pos = pos + nins
	}
	b.cursor.pos = clampPos(b.cursor.pos, b.length)
	start := b.RowStart(b.cursor.pos)
	b.cursor.row = b.RowFromPos(b.cursor.pos)
	b.cursor.col = b.ColumnFromPos(start, b.cursor.pos)
}
