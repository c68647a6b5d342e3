package textbuf

import "github.com/gogglesmm/gogglesmm-sub010/internal/rex"

// SearchFlag mirrors spec.md §6.2's findText flag set.
type SearchFlag int

const (
	SearchIgnoreCase SearchFlag = 1 << iota
	SearchRegex                 // RegexOrVerbatim: set means pattern is a regex, unset means literal
	SearchBackward               // unset means Forward
	SearchWrap
)

func (f SearchFlag) has(bit SearchFlag) bool { return f&bit != 0 }

// compilePattern compiles pattern for findText, using rex.Verbatim for a
// literal (RegexOrVerbatim=verbatim) search rather than hand-escaping
// metacharacters, since REX already has a mode for exactly this.
func compilePattern(pattern string, flags SearchFlag) *rex.Rex {
	mode := rex.Capture
	if flags.has(SearchIgnoreCase) {
		mode |= rex.IgnoreCase
	}
	if !flags.has(SearchRegex) {
		mode |= rex.Verbatim
	}
	if flags.has(SearchBackward) {
		mode |= rex.Reverse
	}
	return rex.NewRex(pattern, mode)
}

// FindText searches for pattern starting at pos, using internal/rex end
// to end (spec.md §6.2: "REX is a library consumed by the controller for
// find/replace operations"). It returns the matched range [beg,end) and
// whether a match was found; on SearchWrap, a failed scan from pos
// retries from the buffer boundary in the same direction.
func (b *Buffer) FindText(pattern string, pos int, flags SearchFlag) (beg, end int, ok bool) {
	r := compilePattern(pattern, flags)
	if r.Err() != rex.ErrOK {
		return 0, 0, false
	}
	text := string(b.GetText())

	if flags.has(SearchBackward) {
		if beg, end, ok = searchOnce(r, text, pos, 0); ok {
			return beg, end, true
		}
		if flags.has(SearchWrap) {
			return searchOnce(r, text, len(text), pos)
		}
		return 0, 0, false
	}
	if beg, end, ok = searchOnce(r, text, pos, len(text)); ok {
		return beg, end, true
	}
	if flags.has(SearchWrap) {
		return searchOnce(r, text, 0, pos)
	}
	return 0, 0, false
}

func searchOnce(r *rex.Rex, text string, from, to int) (beg, end int, ok bool) {
	caps, found := r.Search(text, from, to, rex.Normal)
	if !found {
		return 0, 0, false
	}
	return caps.Beg[0], caps.End[0], true
}

// ReplaceFound is a thin find+replace helper: it finds pattern starting
// at pos and, on success, replaces the match with the REX substitution
// template repl (supporting & and \1-\9 per internal/rex's Substitute).
func (b *Buffer) ReplaceFound(pattern string, pos int, flags SearchFlag, repl string) (newEnd int, ok bool) {
	r := compilePattern(pattern, flags)
	if r.Err() != rex.ErrOK {
		return 0, false
	}
	text := string(b.GetText())
	caps, found := r.Search(text, pos, len(text), rex.Normal)
	if !found {
		return 0, false
	}
	out := rex.Substitute(text, caps, repl)
	b.ReplaceText(caps.Beg[0], caps.End[0]-caps.Beg[0], []byte(out))
	return caps.Beg[0] + len(out), true
}
