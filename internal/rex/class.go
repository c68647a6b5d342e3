package rex

import "github.com/gogglesmm/gogglesmm-sub010/internal/utf8util"

// classSet is the 256-bit membership bitmap a bracketed [...] expression
// compiles to (spec.md §4.1: "a character class compiles to a 32-byte set
// bitmap checked by OP_IN/OP_NOT_IN regardless of pattern length"). Bracket
// expressions stay byte-oriented even in Unicode mode; Unicode-aware
// classification is what the \p{}-style shorthands and KUCat/KUScript are
// for.
type classSet [32]byte

func (s *classSet) include(b byte) {
	s[b>>3] |= 1 << (b & 7)
}

func (s *classSet) has(b byte) bool {
	return s[b>>3]&(1<<(b&7)) != 0
}

func (s *classSet) bytes() []byte {
	out := make([]byte, 32)
	copy(out, s[:])
	return out
}

func includeIfASCII(s *classSet, pred func(byte) bool, neg bool) {
	for i := 0; i < 128; i++ {
		b := byte(i)
		if pred(b) != neg {
			s.include(b)
		}
	}
}

// unionShorthand folds the members of a \w\W\s\S\d\D\h\H\l\L\p\P\u\U
// shorthand class into s. \u and \U are not a negated pair the way the
// others are: FXRex.cpp's charset() maps \u to "is upper" and \U to "is
// lower" outright, with no negation sense for either letter.
func unionShorthand(s *classSet, letter byte) bool {
	switch letter {
	case 'w':
		includeIfASCII(s, utf8util.IsWord, false)
	case 'W':
		includeIfASCII(s, utf8util.IsWord, true)
	case 's':
		includeIfASCII(s, utf8util.IsSpace, false)
	case 'S':
		includeIfASCII(s, utf8util.IsSpace, true)
	case 'd':
		includeIfASCII(s, utf8util.IsDigit, false)
	case 'D':
		includeIfASCII(s, utf8util.IsDigit, true)
	case 'h':
		includeIfASCII(s, utf8util.IsHex, false)
	case 'H':
		includeIfASCII(s, utf8util.IsHex, true)
	case 'l':
		includeIfASCII(s, utf8util.IsLetter, false)
	case 'L':
		includeIfASCII(s, utf8util.IsLetter, true)
	case 'p':
		includeIfASCII(s, utf8util.IsPunct, false)
	case 'P':
		includeIfASCII(s, utf8util.IsPunct, true)
	case 'u':
		includeIfASCII(s, utf8util.IsUpper, false)
	case 'U':
		includeIfASCII(s, utf8util.IsLower, false)
	default:
		return false
	}
	return true
}

// isShorthandLetter reports whether letter names one of the \w\d\s... class
// shorthands, as opposed to a single-character escape like \n or \x41.
func isShorthandLetter(letter byte) bool {
	switch letter {
	case 'w', 'W', 's', 'S', 'd', 'D', 'h', 'H', 'l', 'L', 'p', 'P', 'u', 'U':
		return true
	}
	return false
}

func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }

func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// charset parses a bracketed expression, c.pos already past the opening
// '['. A ']' occurring as the very first member (immediately after '[' or
// '[^') is a literal close-bracket character, not the terminator, matching
// the common "[]abc]" idiom FXRex.cpp's charset() also honours.
func (c *compiler) charset() (block, Error) {
	neg := false
	if c.pos < len(c.src) && c.src[c.pos] == '^' {
		neg = true
		c.pos++
	}
	var set classSet
	ci := c.mode.has(IgnoreCase)
	addByte := func(b byte) {
		if ci {
			set.include(utf8util.ToUpper(b))
			set.include(utf8util.ToLower(b))
		} else {
			set.include(b)
		}
	}

	count := 0
	haveFirst := false
	first := 0
	for {
		if c.pos >= len(c.src) {
			return nil, ErrBracket
		}
		ch := c.src[c.pos]
		if ch == ']' && count > 0 {
			c.pos++
			break
		}
		count++

		if ch == '\\' {
			c.pos++
			if c.pos >= len(c.src) {
				return nil, ErrBracket
			}
			letter := c.src[c.pos]
			if isShorthandLetter(letter) {
				c.pos++
				unionShorthand(&set, letter)
				haveFirst = false
				continue
			}
			c.pos++
			val, err := c.escapeValue(letter)
			if err != ErrOK {
				return nil, err
			}
			addByte(byte(val))
			if haveFirst {
				if first > val {
					return nil, ErrRange
				}
				for x := first; x < val; x++ {
					addByte(byte(x))
				}
				haveFirst = false
			} else if c.pos+1 < len(c.src) && c.src[c.pos] == '-' && c.src[c.pos+1] != ']' {
				first = val
				haveFirst = true
				c.pos++
			}
			continue
		}

		c.pos++
		val := int(ch)
		addByte(byte(val))
		if haveFirst {
			if first > val {
				return nil, ErrRange
			}
			for x := first; x < val; x++ {
				addByte(byte(x))
			}
			haveFirst = false
		} else if c.pos+1 < len(c.src) && c.src[c.pos] == '-' && c.src[c.pos+1] != ']' {
			first = val
			haveFirst = true
			c.pos++
		}
	}

	if neg && !c.mode.has(Newline) {
		set.include('\n')
	}
	return single(Instr{Kind: KClass, Bytes: set.bytes(), Neg: neg}), ErrOK
}
