package rex

import (
	"unicode"

	"github.com/gogglesmm/gogglesmm-sub010/internal/utf8util"
)

// maxRecursion bounds the backtracking call stack, matching FXRex.cpp's
// own MAXRECURSION guard against pathological patterns (spec.md §4.2).
const maxRecursion = 10000

// maxLookbehindWidth bounds how far back a lookbehind sub-pattern is
// allowed to have matched from. FXRex.cpp lookbehind is effectively
// fixed-width; this engine allows variable-width lookbehind bodies but
// caps the backward scan so a pathological lookbehind can't make a single
// assertion check unbounded.
const maxLookbehindWidth = 256

// Captures holds the half-open [Beg[k], End[k]) byte ranges AMatch and
// Search fill in, index 0 being the whole match. -1 means the slot did
// not participate (spec.md §3.1 `subs` semantics).
type Captures struct {
	Beg [maxCapture]int
	End [maxCapture]int
}

func newCaptures() Captures {
	var c Captures
	for i := range c.Beg {
		c.Beg[i] = -1
		c.End[i] = -1
	}
	return c
}

type matcher struct {
	prog  *Program
	sub   string
	dir   int
	start int // anchor position of the whole match attempt, for \B-at-start / NotEmpty
	caps  *Captures

	notBOL bool // Mode.NotBol for this call: position 0 is not string/line start
	notEOL bool // Mode.NotEol for this call: end of subject is not string/line end

	counters [maxCounter]int
	depth    int
}

// dispatch walks the compiled program from pc starting at pos. stopAt, when
// not -1, makes reaching that instruction index an immediate success via
// cont rather than dispatching on it; KAtomic/KLookahead/KLookbehind use
// this to run a self-contained sub-match over [A,B) without needing a
// dedicated set of no-backtrack opcodes; the top-level call passes -1
// since the program's own trailing KPass already marks completion.
func (m *matcher) match(pc, pos, stopAt int, cont func(int) bool) bool {
	m.depth++
	if m.depth > maxRecursion {
		m.depth--
		return false
	}
	ok := m.dispatch(pc, pos, stopAt, cont)
	m.depth--
	return ok
}

func (m *matcher) dispatch(pc, pos, stopAt int, cont func(int) bool) bool {
	if pc == stopAt {
		return cont(pos)
	}
	if pc < 0 || pc >= len(m.prog.Instrs) {
		// A correctly compiled program never produces an out-of-range
		// target, but dispatch must never trust that: spec.md §7 requires
		// amatch/search to never crash regardless of how pc got here.
		return false
	}
	in := &m.prog.Instrs[pc]
	switch in.Kind {

	case KPass:
		return cont(pos)
	case KFail:
		return false
	case KJump:
		return m.match(in.Target, pos, stopAt, cont)

	case KBranch:
		if m.match(pc+1, pos, stopAt, cont) {
			return true
		}
		return m.match(in.Target, pos, stopAt, cont)
	case KBranchRev:
		if m.match(in.Target, pos, stopAt, cont) {
			return true
		}
		return m.match(pc+1, pos, stopAt, cont)

	case KAtomic:
		sub, ok := m.matchBounded(in.A, in.B, pos)
		if !ok {
			return false
		}
		return m.match(in.B, sub, stopAt, cont)

	case KLookahead:
		_, ok := m.matchBounded(in.A, in.B, pos)
		if ok == in.Neg {
			return false
		}
		return m.match(in.B, pos, stopAt, cont)

	case KLookbehind:
		ok := m.matchLookbehind(in.A, in.B, pos)
		if ok == in.Neg {
			return false
		}
		return m.match(in.B, pos, stopAt, cont)

	case KAssertNotEmpty:
		if pos == m.start {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)
	case KAssertStrBeg:
		if !(pos == 0 && !m.notBOL) {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)
	case KAssertStrEnd:
		if !(pos == len(m.sub) && !m.notEOL) {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)
	case KAssertLineBeg:
		if !((pos == 0 && !m.notBOL) || m.byteBefore(pos) == '\n') {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)
	case KAssertLineEnd:
		if !((pos == len(m.sub) && !m.notEOL) || m.byteAtForward(pos) == '\n') {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)
	case KAssertWordBeg:
		if m.wordBefore(pos) || !m.wordAfter(pos) {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)
	case KAssertWordEnd:
		if !m.wordBefore(pos) || m.wordAfter(pos) {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)
	case KAssertWordBnd:
		boundary := m.wordBefore(pos) != m.wordAfter(pos)
		if boundary == in.Neg {
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)

	case KChar:
		next, ok := m.matchChar(in, pos)
		if !ok {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KLiteral:
		next, ok := m.matchLiteral(in, pos)
		if !ok {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KAny:
		r, next, ok := m.step(pos)
		if !ok || (r == '\n' && !in.IncludeNL) {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KClass:
		b, next, ok := m.stepByte(pos)
		if !ok {
			return false
		}
		set := classSet(*(*[32]byte)(in.Bytes))
		if set.has(b) == in.Neg {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KPredicate:
		if in.Uni {
			r, next, ok := m.step(pos)
			if !ok || !negatable(predRune(in.Pred, r), in.Neg, r == '\n', in.IncludeNL) {
				return false
			}
			return m.match(pc+1, next, stopAt, cont)
		}
		b, next, ok := m.stepByte(pos)
		if !ok || !negatable(predByte(in.Pred, b), in.Neg, b == '\n', in.IncludeNL) {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KUCat:
		r, next, ok := m.step(pos)
		rt, _ := utf8util.UnicodeCategory(in.Name)
		if !ok || !negatable(unicode.Is(rt, r), in.Neg, r == '\n', in.IncludeNL) {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KUScript:
		r, next, ok := m.step(pos)
		rt, _ := utf8util.UnicodeScript(in.Name)
		if !ok || !negatable(unicode.Is(rt, r), in.Neg, r == '\n', in.IncludeNL) {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KRepeatSimple:
		// The repeated atom sits at in.A; matching resumes just past it.
		next := in.A + 1
		return m.repeatSimpleFrom(in, pos, 0, func(p int) bool {
			return m.match(next, p, stopAt, cont)
		})

	case KSubBeg:
		if in.A < maxCapture {
			saved := m.caps.Beg[in.A]
			m.caps.Beg[in.A] = pos
			if m.match(pc+1, pos, stopAt, cont) {
				return true
			}
			m.caps.Beg[in.A] = saved
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)

	case KSubEnd:
		if in.A < maxCapture {
			saved := m.caps.End[in.A]
			m.caps.End[in.A] = pos
			if m.match(pc+1, pos, stopAt, cont) {
				return true
			}
			m.caps.End[in.A] = saved
			return false
		}
		return m.match(pc+1, pos, stopAt, cont)

	case KBackRef:
		next, ok := m.matchBackRef(in, pos)
		if !ok {
			return false
		}
		return m.match(pc+1, next, stopAt, cont)

	case KCounterZero:
		m.counters[in.A] = 0
		return m.match(pc+1, pos, stopAt, cont)
	case KCounterIncr:
		m.counters[in.A]++
		return m.match(pc+1, pos, stopAt, cont)
	case KCounterJumpLT:
		if m.counters[in.A] < in.B {
			return m.match(in.Target, pos, stopAt, cont)
		}
		return m.match(pc+1, pos, stopAt, cont)
	}
	return false
}

// matchBounded runs the self-contained sub-program [pcStart,pcEnd) at pos
// and reports the first successful ending position, used by KAtomic and
// KLookahead.
func (m *matcher) matchBounded(pcStart, pcEnd, pos int) (int, bool) {
	result := pos
	ok := m.match(pcStart, pos, pcEnd, func(p int) bool {
		result = p
		return true
	})
	return result, ok
}

// matchLookbehind reports whether [pcStart,pcEnd) can match some substring
// ending exactly at pos, scanning candidate start positions backward up to
// maxLookbehindWidth bytes.
func (m *matcher) matchLookbehind(pcStart, pcEnd, pos int) bool {
	limit := pos - maxLookbehindWidth
	if limit < 0 {
		limit = 0
	}
	for s := pos; s >= limit; s-- {
		if end, ok := m.matchBounded(pcStart, pcEnd, s); ok && end == pos {
			return true
		}
		if s == 0 {
			break
		}
	}
	return false
}

// repeatSimpleFrom implements KRepeatSimple's Min/Max/Greed semantics by
// direct recursion over the embedded single-instruction atom at
// m.prog.Instrs[in.A], rather than compiling a generic counted loop: the
// atom is known to match exactly one character, so the interpreter can
// just test it up to Max times and let Greed pick the backtracking order.
func (m *matcher) repeatSimpleFrom(in *Instr, pos, count int, cont func(int) bool) bool {
	m.depth++
	if m.depth > maxRecursion {
		m.depth--
		return false
	}
	defer func() { m.depth-- }()

	atomIdx := in.A
	tryMore := count < in.Max
	tryStop := count >= in.Min

	attemptMore := func() (int, bool) {
		if !tryMore {
			return pos, false
		}
		next, ok := m.matchSingle(atomIdx, pos)
		return next, ok
	}

	switch in.Greed {
	case Possessive:
		p := pos
		n := count
		for n < in.Max {
			next, ok := m.matchSingle(atomIdx, p)
			if !ok {
				break
			}
			p = next
			n++
		}
		if n < in.Min {
			return false
		}
		return cont(p)
	case Lazy:
		if tryStop && cont(pos) {
			return true
		}
		if next, ok := attemptMore(); ok {
			return m.repeatSimpleFrom(in, next, count+1, cont)
		}
		return false
	default: // Greedy
		if next, ok := attemptMore(); ok {
			if m.repeatSimpleFrom(in, next, count+1, cont) {
				return true
			}
		}
		if tryStop {
			return cont(pos)
		}
		return false
	}
}

// matchSingle tests the one-instruction atom at pc against pos and returns
// the position after it, without any of match's control-flow dispatch
// (pc+1 is meaningless for an atom living inside another instruction's A
// field, not the flat instruction stream the caller is walking).
func (m *matcher) matchSingle(pc, pos int) (int, bool) {
	in := &m.prog.Instrs[pc]
	switch in.Kind {
	case KChar:
		return m.matchChar(in, pos)
	case KAny:
		r, next, ok := m.step(pos)
		if !ok || (r == '\n' && !in.IncludeNL) {
			return pos, false
		}
		return next, true
	case KClass:
		b, next, ok := m.stepByte(pos)
		if !ok {
			return pos, false
		}
		set := classSet(*(*[32]byte)(in.Bytes))
		if set.has(b) == in.Neg {
			return pos, false
		}
		return next, true
	case KPredicate:
		if in.Uni {
			r, next, ok := m.step(pos)
			if !ok || !negatable(predRune(in.Pred, r), in.Neg, r == '\n', in.IncludeNL) {
				return pos, false
			}
			return next, true
		}
		b, next, ok := m.stepByte(pos)
		if !ok || !negatable(predByte(in.Pred, b), in.Neg, b == '\n', in.IncludeNL) {
			return pos, false
		}
		return next, true
	case KUCat:
		r, next, ok := m.step(pos)
		rt, _ := utf8util.UnicodeCategory(in.Name)
		if !ok || !negatable(unicode.Is(rt, r), in.Neg, r == '\n', in.IncludeNL) {
			return pos, false
		}
		return next, true
	case KUScript:
		r, next, ok := m.step(pos)
		rt, _ := utf8util.UnicodeScript(in.Name)
		if !ok || !negatable(unicode.Is(rt, r), in.Neg, r == '\n', in.IncludeNL) {
			return pos, false
		}
		return next, true
	}
	return pos, false
}

func (m *matcher) matchChar(in *Instr, pos int) (int, bool) {
	if in.Uni {
		got, next, ok := m.step(pos)
		if !ok {
			return pos, false
		}
		if !runeEq(got, in.Rune, in.Neg) {
			return pos, false
		}
		return next, true
	}
	got, next, ok := m.stepByte(pos)
	if !ok {
		return pos, false
	}
	if !byteEq(got, byte(in.Rune), in.Neg) {
		return pos, false
	}
	return next, true
}

func (m *matcher) matchLiteral(in *Instr, pos int) (int, bool) {
	if in.Uni {
		data := in.Bytes
		i := 0
		for i < len(data) {
			want, n := utf8util.Decode(data[i:])
			i += n
			got, next, ok := m.step(pos)
			if !ok || !runeEq(got, want, in.Neg) {
				return pos, false
			}
			pos = next
		}
		return pos, true
	}
	for _, want := range in.Bytes {
		got, next, ok := m.stepByte(pos)
		if !ok || !byteEq(got, want, in.Neg) {
			return pos, false
		}
		pos = next
	}
	return pos, true
}

func (m *matcher) matchBackRef(in *Instr, pos int) (int, bool) {
	beg, end := m.caps.Beg[in.A], m.caps.End[in.A]
	if beg < 0 || end < 0 {
		return pos, false
	}
	n := end - beg
	if pos+n > len(m.sub) {
		return pos, false
	}
	for i := 0; i < n; i++ {
		a, b := m.sub[pos+i], m.sub[beg+i]
		if !byteEq(a, b, in.Neg) {
			return pos, false
		}
	}
	return pos + n, true
}

func byteEq(got, want byte, ci bool) bool {
	if !ci {
		return got == want
	}
	return utf8util.ToUpper(got) == utf8util.ToUpper(want)
}

func runeEq(got, want rune, ci bool) bool {
	if !ci {
		return got == want
	}
	return utf8util.FoldRune(got) == utf8util.FoldRune(want)
}

// negatable applies a class/predicate's Neg flag to a raw membership test,
// with the usual regex convention that a negated class still excludes '\n'
// unless the pattern was compiled with Mode.Newline.
func negatable(raw, neg, isNewline, includeNL bool) bool {
	result := raw != neg
	if neg && isNewline && !includeNL {
		result = false
	}
	return result
}

func predByte(pred Pred, b byte) bool {
	switch pred {
	case PredUpper:
		return utf8util.IsUpper(b)
	case PredLower:
		return utf8util.IsLower(b)
	case PredSpace:
		return utf8util.IsSpace(b)
	case PredDigit:
		return utf8util.IsDigit(b)
	case PredHex:
		return utf8util.IsHex(b)
	case PredLetter:
		return utf8util.IsLetter(b)
	case PredPunct:
		return utf8util.IsPunct(b)
	case PredWord:
		return utf8util.IsWord(b)
	}
	return false
}

func predRune(pred Pred, r rune) bool {
	switch pred {
	case PredUpper:
		return utf8util.IsUpperRune(r)
	case PredLower:
		return utf8util.IsLowerRune(r)
	case PredTitle:
		return utf8util.IsTitleRune(r)
	case PredSpace:
		return utf8util.IsSpaceRune(r)
	case PredDigit:
		return utf8util.IsDigitRune(r)
	case PredHex:
		return r < 128 && utf8util.IsHex(byte(r))
	case PredLetter:
		return utf8util.IsLetterRune(r)
	case PredPunct:
		return utf8util.IsPunctRune(r)
	case PredWord:
		return utf8util.IsWordRune(r)
	}
	return false
}

// step decodes one character in the match direction: a rune in Unicode
// mode, a single byte otherwise.
func (m *matcher) step(pos int) (rune, int, bool) {
	if m.prog.Mode.has(Unicode) {
		return m.stepRune(pos)
	}
	b, next, ok := m.stepByte(pos)
	return rune(b), next, ok
}

func (m *matcher) stepByte(pos int) (byte, int, bool) {
	if m.dir > 0 {
		if pos >= len(m.sub) {
			return 0, pos, false
		}
		return m.sub[pos], pos + 1, true
	}
	if pos <= 0 {
		return 0, pos, false
	}
	return m.sub[pos-1], pos - 1, true
}

func (m *matcher) stepRune(pos int) (rune, int, bool) {
	if m.dir > 0 {
		if pos >= len(m.sub) {
			return 0, pos, false
		}
		r, n := utf8util.Decode([]byte(m.sub[pos:]))
		return r, pos + n, true
	}
	if pos <= 0 {
		return 0, pos, false
	}
	start := pos - 1
	for k := 0; k < 3 && start > 0 && utf8util.IsCont(m.sub[start]); k++ {
		start--
	}
	r, n := utf8util.Decode([]byte(m.sub[start:]))
	if start+n != pos {
		return rune(m.sub[pos-1]), pos - 1, true
	}
	return r, start, true
}

// byteAtForward/byteBefore are direction-agnostic helpers for anchors
// (start/end-of-line is always defined in absolute subject coordinates,
// never relative to the match direction).
func (m *matcher) byteAtForward(pos int) byte {
	if pos < 0 || pos >= len(m.sub) {
		return 0
	}
	return m.sub[pos]
}

func (m *matcher) byteBefore(pos int) byte {
	if pos <= 0 || pos > len(m.sub) {
		return 0
	}
	return m.sub[pos-1]
}

func (m *matcher) runeEndingAt(pos int) (rune, bool) {
	if pos <= 0 {
		return 0, false
	}
	start := pos - 1
	for k := 0; k < 3 && start > 0 && utf8util.IsCont(m.sub[start]); k++ {
		start--
	}
	r, n := utf8util.Decode([]byte(m.sub[start:]))
	if start+n != pos {
		return rune(m.sub[pos-1]), true
	}
	return r, true
}

func (m *matcher) runeStartingAt(pos int) (rune, bool) {
	if pos >= len(m.sub) {
		return 0, false
	}
	r, _ := utf8util.Decode([]byte(m.sub[pos:]))
	return r, true
}

func (m *matcher) isWordRune(r rune) bool {
	if m.prog.Mode.has(Unicode) {
		return utf8util.IsWordRune(r)
	}
	if r < 0 || r > 255 {
		return false
	}
	return utf8util.IsWord(byte(r))
}

func (m *matcher) wordBefore(pos int) bool {
	r, ok := m.runeEndingAt(pos)
	return ok && m.isWordRune(r)
}

func (m *matcher) wordAfter(pos int) bool {
	r, ok := m.runeStartingAt(pos)
	return ok && m.isWordRune(r)
}
