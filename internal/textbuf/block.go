package textbuf

import "bytes"

// Rectangular block operations (spec.md §4.5): each works on a region
// (startpos, endpos, startcol, endcol), detabbing the existing text and
// the replacement, splicing column-aligned, then re-entabbing the result
// unless noTabs is set.

// detab expands tabs in data to spaces using tabColumns, tracking column
// position across the whole run (tabs past a '\n' restart at column 0).
func (b *Buffer) detab(data []byte) []byte {
	tc := b.tabColumns
	if tc <= 0 {
		tc = 8
	}
	out := make([]byte, 0, len(data))
	col := 0
	for _, c := range data {
		switch {
		case c == '\t':
			n := tc - col%tc
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			col += n
		case c == '\n':
			out = append(out, c)
			col = 0
		default:
			out = append(out, c)
			col++
		}
	}
	return out
}

// entab collapses runs of spaces that reach a tab-column boundary back
// into tabs. It is the inverse transform detab approximates, used only
// when noTabs is false.
func (b *Buffer) entab(data []byte) []byte {
	tc := b.tabColumns
	if tc <= 0 {
		tc = 8
	}
	var out []byte
	col := 0
	spaces := 0
	flushSpaces := func(upto int) {
		start := col - spaces
		for start < upto {
			next := start + (tc - start%tc)
			if next > upto {
				for i := start; i < upto; i++ {
					out = append(out, ' ')
				}
				break
			}
			out = append(out, '\t')
			start = next
		}
		spaces = 0
	}
	for _, c := range data {
		switch {
		case c == ' ':
			spaces++
			col++
		case c == '\n':
			flushSpaces(col)
			out = append(out, c)
			col = 0
		default:
			flushSpaces(col)
			out = append(out, c)
			col++
		}
	}
	flushSpaces(col)
	return out
}

// splitLines splits detabbed text into lines without the trailing '\n',
// reporting whether the original ended with one.
func splitLines(data []byte) (lines [][]byte, trailingNL bool) {
	if len(data) == 0 {
		return nil, false
	}
	trailingNL = data[len(data)-1] == '\n'
	raw := data
	if trailingNL {
		raw = data[:len(data)-1]
	}
	return bytes.Split(raw, []byte{'\n'}), trailingNL
}

// spliceColumn builds one output line: copy up to startcol (padding with
// spaces if the line is shorter), splice in repl, then append whatever
// followed endcol in the original (padding to preserve alignment when
// the original line was shorter than endcol).
func spliceColumn(line, repl []byte, startcol, endcol int) []byte {
	var out []byte
	if len(line) >= startcol {
		out = append(out, line[:startcol]...)
	} else {
		out = append(out, line...)
		for i := len(line); i < startcol; i++ {
			out = append(out, ' ')
		}
	}
	out = append(out, repl...)
	if len(line) > endcol {
		out = append(out, line[endcol:]...)
	}
	return out
}

// blockSplice is the shared engine for the four block variants: it
// detabs region and repl, splices column-aligned per spliceColumn, joins
// with '\n', and re-entabs unless noTabs is set.
func (b *Buffer) blockSplice(region, repl []byte, startcol, endcol int) []byte {
	region = b.detab(region)
	repl = b.detab(repl)
	regionLines, _ := splitLines(region)
	replLines, replTrailingNL := splitLines(repl)

	// A single-line replacement (no '\n' at all, e.g. typing one word in
	// block-select mode) is broadcast onto every region line, matching
	// FXText's insertcolumns/replacecolumns doc comment ("insert same
	// text at given column on each line"). A genuinely multi-line
	// replacement instead aligns line-by-line, leaving any region lines
	// beyond the replacement's count unspliced.
	broadcast := len(replLines) <= 1

	n := len(regionLines)
	if !broadcast && len(replLines) > n {
		n = len(replLines)
	}
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		var line, rl []byte
		if i < len(regionLines) {
			line = regionLines[i]
		}
		switch {
		case broadcast && len(replLines) == 1:
			rl = replLines[0]
		case !broadcast && i < len(replLines):
			rl = replLines[i]
		}
		out = append(out, spliceColumn(line, rl, startcol, endcol))
	}
	result := bytes.Join(out, []byte{'\n'})
	if replTrailingNL || len(replLines) > len(regionLines) {
		result = append(result, '\n')
	}
	if !b.noTabs {
		result = b.entab(result)
	}
	return result
}

// ReplaceTextBlock replaces the rectangular region [startpos,endpos) x
// [startcol,endcol) with repl, splicing column-aligned.
func (b *Buffer) ReplaceTextBlock(startpos, endpos, startcol, endcol int, repl []byte) {
	region := b.ExtractText(startpos, endpos-startpos)
	spliced := b.blockSplice(region, repl, startcol, endcol)
	b.replace(startpos, endpos-startpos, spliced, 0)
}

// InsertTextBlock inserts repl as a new column span at startcol, pushing
// the existing column content right (endcol == startcol: nothing to
// overwrite).
func (b *Buffer) InsertTextBlock(startpos, endpos, startcol int, repl []byte) {
	b.ReplaceTextBlock(startpos, endpos, startcol, startcol, repl)
}

// OverstrikeTextBlock overwrites the column span [startcol,startcol+width)
// of repl's widest line with repl.
func (b *Buffer) OverstrikeTextBlock(startpos, endpos, startcol int, repl []byte) {
	width := 0
	for _, line := range bytes.Split(b.detab(repl), []byte{'\n'}) {
		if len(line) > width {
			width = len(line)
		}
	}
	b.ReplaceTextBlock(startpos, endpos, startcol, startcol+width, repl)
}

// RemoveTextBlock deletes the column span [startcol,endcol) from every
// line in [startpos,endpos).
func (b *Buffer) RemoveTextBlock(startpos, endpos, startcol, endcol int) {
	b.ReplaceTextBlock(startpos, endpos, startcol, endcol, nil)
}

// ExtractTextBlock returns the rectangular region's text, detabbed, one
// column span per source line joined by '\n'.
func (b *Buffer) ExtractTextBlock(startpos, endpos, startcol, endcol int) []byte {
	region := b.detab(b.ExtractText(startpos, endpos-startpos))
	lines, _ := splitLines(region)
	out := make([][]byte, 0, len(lines))
	for _, line := range lines {
		lo, hi := startcol, endcol
		if lo > len(line) {
			lo = len(line)
		}
		if hi > len(line) {
			hi = len(line)
		}
		if hi < lo {
			hi = lo
		}
		out = append(out, line[lo:hi])
	}
	return bytes.Join(out, []byte{'\n'})
}
