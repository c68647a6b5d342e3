package rex

// AMatch anchors a match attempt at exactly the byte offset start, the
// Go-facing equivalent of FXRex::amatch (spec.md §4.2). fg carries
// per-call Mode.NotBol/Mode.NotEol overrides, letting a caller scanning a
// larger buffer say "this substring doesn't actually start a line" without
// recompiling the pattern.
func (p *Program) AMatch(subject string, start int, fg Mode) (Captures, bool) {
	caps := newCaptures()
	if start < 0 || start > len(subject) {
		return caps, false
	}
	dir := 1
	if p.reversed {
		dir = -1
	}
	m := &matcher{
		prog:   p,
		sub:    subject,
		dir:    dir,
		start:  start,
		caps:   &caps,
		notBOL: fg.has(NotBol),
		notEOL: fg.has(NotEol),
	}
	var end int
	if !m.match(0, start, -1, func(pos int) bool { end = pos; return true }) {
		return newCaptures(), false
	}
	if dir > 0 {
		caps.Beg[0], caps.End[0] = start, end
		return caps, true
	}
	caps.Beg[0], caps.End[0] = end, start
	for i := 1; i < maxCapture; i++ {
		if caps.Beg[i] >= 0 && caps.End[i] >= 0 {
			caps.Beg[i], caps.End[i] = caps.End[i], caps.Beg[i]
		}
	}
	return caps, true
}

// Search scans anchor positions from "from" to "to" inclusive, in the
// program's natural direction (forward, or backward for a program
// compiled under Mode.Reverse), returning the first successful AMatch's
// captures. It mirrors FXRex::search, which is just AMatch tried at every
// offset in range.
func (p *Program) Search(subject string, from, to int, fg Mode) (Captures, bool) {
	dir := 1
	if p.reversed {
		dir = -1
	}
	if (dir > 0 && from > to) || (dir < 0 && from < to) {
		return newCaptures(), false
	}
	for pos := from; ; pos += dir {
		if caps, ok := p.AMatch(subject, pos, fg); ok {
			return caps, true
		}
		if pos == to {
			break
		}
	}
	return newCaptures(), false
}

// Rex is the façade spec.md §4.1 asks for: a named value wrapping a
// compiled Program together with the Error its compilation produced,
// mirroring FXRex's public surface (construct-then-check, rather than a
// separate Compile call the caller must remember to check).
type Rex struct {
	prog *Program
	err  Error
}

// MustCompile is for package-level var initialization the way
// regexp.MustCompile is; it panics on a bad pattern instead of returning
// an error, which is only appropriate for patterns fixed at compile time.
func MustCompile(pattern string, mode Mode) *Rex {
	r := NewRex(pattern, mode)
	if r.err != ErrOK {
		panic("rex: " + r.err.Error() + ": " + pattern)
	}
	return r
}

// NewRex compiles pattern under mode. The returned *Rex is always usable
// (AMatch/Search simply never match) even when err != ErrOK, matching
// spec.md §6.1's "compilation failure leaves the engine in a safe,
// always-fails state" contract.
func NewRex(pattern string, mode Mode) *Rex {
	prog, err := Compile(pattern, mode)
	return &Rex{prog: prog, err: err}
}

// FromProgram wraps an already-compiled (e.g. deserialized) Program.
func FromProgram(prog *Program) *Rex {
	return &Rex{prog: prog, err: ErrOK}
}

func (r *Rex) Err() Error         { return r.err }
func (r *Rex) Empty() bool        { return r.prog.Empty() }
func (r *Rex) Program() *Program  { return r.prog }

// AMatch tries to match the whole pattern anchored at start.
func (r *Rex) AMatch(subject string, start int, fg Mode) (Captures, bool) {
	return r.prog.AMatch(subject, start, fg)
}

// Search finds the pattern's first match starting somewhere in [from,to].
func (r *Rex) Search(subject string, from, to int, fg Mode) (Captures, bool) {
	return r.prog.Search(subject, from, to, fg)
}
