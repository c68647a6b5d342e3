package rex

// escapeValue resolves the single-character value of a backslash escape
// whose letter has already been consumed (c.pos points just past letter).
// It covers the forms that mean the same thing inside and outside a
// bracket expression: \a\e\f\n\r\t\v\b(backspace)\xHH\cX\0OOO, plus "any
// other character escapes to itself" (so \. \* \\ and friends work without
// a case for every punctuation mark). Word-boundary \b and the \1-\9
// back-references are handled by atom's own dispatch before this is ever
// reached for those letters, since \b means backspace only inside a
// bracket expression.
func (c *compiler) escapeValue(letter byte) (int, Error) {
	switch letter {
	case 'a':
		return 7, ErrOK
	case 'e':
		return 27, ErrOK
	case 'f':
		return 12, ErrOK
	case 'n':
		return 10, ErrOK
	case 'r':
		return 13, ErrOK
	case 't':
		return 9, ErrOK
	case 'v':
		return 11, ErrOK
	case 'b':
		return 8, ErrOK
	case 'c':
		if c.pos >= len(c.src) {
			return 0, ErrToken
		}
		ch := c.src[c.pos]
		switch {
		case ch >= '@' && ch <= '_':
			c.pos++
			return int(ch - '@'), ErrOK
		case ch == '?':
			c.pos++
			return 127, ErrOK
		default:
			return 0, ErrToken
		}
	case 'x':
		if c.pos+1 >= len(c.src) {
			return 0, ErrToken
		}
		h1, ok1 := hexVal(c.src[c.pos])
		h2, ok2 := hexVal(c.src[c.pos+1])
		if !ok1 || !ok2 {
			return 0, ErrToken
		}
		c.pos += 2
		return h1*16 + h2, ErrOK
	case '0':
		v := 0
		for i := 0; i < 3 && c.pos < len(c.src) && isOctDigit(c.src[c.pos]); i++ {
			v = v*8 + int(c.src[c.pos]-'0')
			c.pos++
		}
		return v, ErrOK
	default:
		return int(letter), ErrOK
	}
}
