package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFont struct{}

func (fakeFont) CharWidth(r rune) int { return 1 }
func (fakeFont) Ascent() int          { return 1 }
func (fakeFont) LineHeight() int      { return 1 }
func (fakeFont) FixedPitch() bool     { return true }

type drawCall struct {
	x, y   int
	text   string
	fg, bg Color
}

type fakeCanvas struct {
	draws []drawCall
	rects int
}

func (c *fakeCanvas) FillRect(x, y, w, h int, fg, bg Color) { c.rects++ }
func (c *fakeCanvas) DrawText(x, y int, text string, fg, bg Color) {
	c.draws = append(c.draws, drawCall{x, y, text, fg, bg})
}

func TestMatchingBracketFindsPair(t *testing.T) {
	b := NewBuffer()
	b.SetShowMatch(true)
	b.InsertText(0, []byte("f(a(b)c)d"))

	match, ok := b.MatchingBracket(1) // the first '('
	require.True(t, ok)
	assert.Equal(t, 7, match) // its closing ')'

	match, ok = b.MatchingBracket(7)
	require.True(t, ok)
	assert.Equal(t, 1, match)
}

func TestMatchingBracketDisabledWithoutShowMatch(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("(a)"))
	_, ok := b.MatchingBracket(0)
	assert.False(t, ok)
}

func TestDrawTextRowInvokesCanvas(t *testing.T) {
	b := NewBuffer()
	canvas := &fakeCanvas{}
	b.SetFont(fakeFont{})
	b.SetCanvas(canvas)
	b.InsertText(0, []byte("hello"))

	b.DrawTextRow(0, 0, 0)
	require.NotEmpty(t, canvas.draws)
	assert.Equal(t, "hello", canvas.draws[0].text)
}

func TestStyleOfMarksBracketAtCursor(t *testing.T) {
	b := NewBuffer()
	b.SetShowMatch(true)
	b.InsertText(0, []byte("(ab)"))
	b.SetCursorPos(0)

	sk := b.styleOf(0, 0)
	assert.True(t, sk.bracket)
	sk = b.styleOf(0, 3)
	assert.True(t, sk.bracket)
	sk = b.styleOf(0, 1)
	assert.False(t, sk.bracket)
}
