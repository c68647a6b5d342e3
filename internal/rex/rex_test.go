package rex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func search(t *testing.T, pattern, subject string, mode Mode) (Captures, bool) {
	t.Helper()
	prog, err := Compile(pattern, mode)
	require.Equal(t, ErrOK, err, "compile %q", pattern)
	return prog.Search(subject, 0, len(subject), Normal)
}

func TestLiteralAndAlternation(t *testing.T) {
	caps, ok := search(t, "cat|dog", "I have a dog", Normal)
	require.True(t, ok)
	assert.Equal(t, "dog", "I have a dog"[caps.Beg[0]:caps.End[0]])

	_, ok = search(t, "cat|dog", "I have a fish", Normal)
	assert.False(t, ok)
}

func TestAlternationFirstBranchMatches(t *testing.T) {
	// Regression: alternate()'s KJump used to be over-relocated by
	// concat, sending it past the end of the program whenever the
	// *first* branch matched (the only case that actually executes the
	// jump). TestLiteralAndAlternation never exercised this because its
	// subject only ever matched the second alternative.
	caps, ok := search(t, "cat|dog", "a cat sat", Normal)
	require.True(t, ok)
	assert.Equal(t, "cat", "a cat sat"[caps.Beg[0]:caps.End[0]])

	caps, ok = search(t, "cat|dog|bird", "a bird flew", Normal)
	require.True(t, ok)
	assert.Equal(t, "bird", "a bird flew"[caps.Beg[0]:caps.End[0]])
}

func TestComplexAtomRepetition(t *testing.T) {
	// spec.md §8 REX scenario 2: (a|b)+ on "xababx", capture 1 = "b".
	// (a|b) is not a SIMPLE atom (it compiles to a Branch/Jump
	// alternation, not a single instruction), so "+" here goes through
	// starLoop rather than KRepeatSimple.
	prog, err := Compile(`(a|b)+`, Capture)
	require.Equal(t, ErrOK, err)
	subject := "xababx"
	caps, ok := prog.Search(subject, 0, len(subject), Normal)
	require.True(t, ok)
	assert.Equal(t, "abab", subject[caps.Beg[0]:caps.End[0]])
	assert.Equal(t, "b", subject[caps.Beg[1]:caps.End[1]])

	// (ab)* : another non-SIMPLE atom through starLoop, zero repeats
	// must also succeed (matches the empty string).
	caps, ok = search(t, `(ab)*`, "ababab!", Normal)
	require.True(t, ok)
	assert.Equal(t, "ababab", "ababab!"[caps.Beg[0]:caps.End[0]])

	_, ok = search(t, `(ab)*`, "!ababab", Normal)
	require.True(t, ok, "zero repeats still matches the empty string at position 0")

	// (ab){2,3}: non-SIMPLE atom through mandatoryLoop + optionalBoundedLoop.
	caps, ok = search(t, `(ab){2,3}`, "xababababx", Normal)
	require.True(t, ok)
	assert.Equal(t, "ababab", "xababababx"[caps.Beg[0]:caps.End[0]])

	_, ok = search(t, `(ab){2,3}`, "xabx", Normal)
	assert.False(t, ok, "only one repeat present, minimum is two")
}

func TestQuantifiers(t *testing.T) {
	caps, ok := search(t, "ab*c", "abbbbc", Normal)
	require.True(t, ok)
	assert.Equal(t, "abbbbc", "abbbbc"[caps.Beg[0]:caps.End[0]])

	caps, ok = search(t, "ab*c", "ac", Normal)
	require.True(t, ok)
	assert.Equal(t, "ac", "ac"[caps.Beg[0]:caps.End[0]])

	_, ok = search(t, "ab+c", "ac", Normal)
	assert.False(t, ok)

	caps, ok = search(t, "a.*?b", "axxbxxb", Normal)
	require.True(t, ok)
	assert.Equal(t, "axxb", "axxbxxb"[caps.Beg[0]:caps.End[0]], "lazy star stops at first b")
}

func TestCountedRepeat(t *testing.T) {
	caps, ok := search(t, "a{2,4}", "aaaaa", Normal)
	require.True(t, ok)
	assert.Equal(t, 4, caps.End[0]-caps.Beg[0])

	_, ok = search(t, "a{3}", "aa", Normal)
	assert.False(t, ok)

	caps, ok = search(t, "a{3}", "aaa", Normal)
	require.True(t, ok)
	assert.Equal(t, 3, caps.End[0]-caps.Beg[0])
}

func TestCharacterClasses(t *testing.T) {
	caps, ok := search(t, "[a-c]+", "xxabcax", Normal)
	require.True(t, ok)
	assert.Equal(t, "abca", "xxabcax"[caps.Beg[0]:caps.End[0]])

	caps, ok = search(t, "[^0-9]+", "42 cats", Normal)
	require.True(t, ok)
	assert.Equal(t, " cats", "42 cats"[caps.Beg[0]:caps.End[0]])

	caps, ok = search(t, `\d+`, "room 237", Normal)
	require.True(t, ok)
	assert.Equal(t, "237", "room 237"[caps.Beg[0]:caps.End[0]])
}

func TestCaptureGroups(t *testing.T) {
	prog, err := Compile(`(\w+)@(\w+)\.com`, Capture)
	require.Equal(t, ErrOK, err)
	subject := "contact admin@example.com please"
	caps, ok := prog.Search(subject, 0, len(subject), Normal)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", subject[caps.Beg[0]:caps.End[0]])
	assert.Equal(t, "admin", subject[caps.Beg[1]:caps.End[1]])
	assert.Equal(t, "example", subject[caps.Beg[2]:caps.End[2]])
}

func TestBackReference(t *testing.T) {
	prog, err := Compile(`(\w+) \1`, Capture)
	require.Equal(t, ErrOK, err)
	subject := "the same same word"
	caps, ok := prog.Search(subject, 0, len(subject), Normal)
	require.True(t, ok)
	assert.Equal(t, "same same", subject[caps.Beg[0]:caps.End[0]])
}

func TestAnchorsAndWordBoundary(t *testing.T) {
	caps, ok := search(t, `^cat$`, "cat", Normal)
	require.True(t, ok)
	assert.Equal(t, 0, caps.Beg[0])

	_, ok = search(t, `^cat$`, "cats", Normal)
	assert.False(t, ok)

	caps, ok = search(t, `\bcat\b`, "a cat sat", Normal)
	require.True(t, ok)
	assert.Equal(t, "cat", "a cat sat"[caps.Beg[0]:caps.End[0]])

	_, ok = search(t, `\bcat\b`, "concatenate", Normal)
	assert.False(t, ok)
}

func TestIgnoreCase(t *testing.T) {
	caps, ok := search(t, "hello", "Say HELLO now", IgnoreCase)
	require.True(t, ok)
	assert.Equal(t, "HELLO", "Say HELLO now"[caps.Beg[0]:caps.End[0]])
}

func TestGroupsAndLookaround(t *testing.T) {
	caps, ok := search(t, `foo(?=bar)`, "foobar", Normal)
	require.True(t, ok)
	assert.Equal(t, "foo", "foobar"[caps.Beg[0]:caps.End[0]])

	_, ok = search(t, `foo(?!bar)`, "foobar", Normal)
	assert.False(t, ok)

	caps, ok = search(t, `foo(?!bar)`, "foobaz", Normal)
	require.True(t, ok)
	assert.Equal(t, "foo", "foobaz"[caps.Beg[0]:caps.End[0]])
}

func TestPossessiveNoBacktrack(t *testing.T) {
	_, ok := search(t, `a*+a`, "aaaa", Normal)
	assert.False(t, ok, "possessive star consumes all a's, leaving none for the trailing literal a")
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile("", Normal)
	assert.Equal(t, ErrEmpty, err)

	_, err = Compile("(abc", Normal)
	assert.Equal(t, ErrParen, err)

	_, err = Compile("abc)", Normal)
	assert.Equal(t, ErrParen, err)

	_, err = Compile("a{5,2}", Normal)
	assert.Equal(t, ErrCount, err)

	_, err = Compile("*abc", Normal)
	assert.Equal(t, ErrNoAtom, err)

	_, err = Compile(`\9`, Capture)
	assert.Equal(t, ErrBackRef, err)
}

func TestSubstitute(t *testing.T) {
	prog, err := Compile(`(\w+)@(\w+)`, Capture)
	require.Equal(t, ErrOK, err)
	subject := "user@host"
	caps, ok := prog.Search(subject, 0, len(subject), Normal)
	require.True(t, ok)
	assert.Equal(t, "host@user", Substitute(subject, caps, `\2@\1`))
	assert.Equal(t, "[user@host]", Substitute(subject, caps, `[&]`))
}

func TestSerializeRoundTrip(t *testing.T) {
	prog, err := Compile(`\d{2,4}-[a-z]+`, Capture)
	require.Equal(t, ErrOK, err)
	data := prog.Serialize()
	back, derr := Deserialize(data)
	require.NoError(t, derr)
	subject := "12-ab 1234-xyz"
	wantCaps, wantOK := prog.Search(subject, 0, len(subject), Normal)
	gotCaps, gotOK := back.Search(subject, 0, len(subject), Normal)
	assert.Equal(t, wantOK, gotOK)
	assert.Equal(t, wantCaps, gotCaps)
}

func TestReverseMode(t *testing.T) {
	prog, err := Compile("abc", Reverse)
	require.Equal(t, ErrOK, err)
	caps, ok := prog.AMatch("xxabcxx", 5, Normal)
	require.True(t, ok)
	assert.Equal(t, "abc", "xxabcxx"[caps.Beg[0]:caps.End[0]])
}

func TestUnicodeMode(t *testing.T) {
	caps, ok := search(t, `\w+`, "héllo world", Unicode)
	require.True(t, ok)
	assert.Equal(t, "héllo", "héllo world"[caps.Beg[0]:caps.End[0]])
}

func TestRexFacade(t *testing.T) {
	r := NewRex(`\d+`, Normal)
	require.Equal(t, ErrOK, r.Err())
	caps, ok := r.Search("a42b", 0, 4, Normal)
	require.True(t, ok)
	assert.Equal(t, "42", "a42b"[caps.Beg[0]:caps.End[0]])

	bad := NewRex("(unclosed", Normal)
	assert.Equal(t, ErrParen, bad.Err())
	assert.True(t, bad.Empty())
}
