package textbuf

import (
	"strings"
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

// Property-based invariant checks (SPEC_FULL.md's Ambient Stack calls out
// "round-trip, idempotence, and invariant checks" as natural rapid
// properties). These complement the concrete scenario tests in
// buffer_test.go rather than replace them: a random sequence of
// insert/remove/replace calls must never leave the buffer in a state
// that violates the invariants spec.md §3.2 and §8 name.
func genASCIIWord(t *rapid.T) string {
	return rapid.StringMatching(`[a-z]{0,6}\n?`).Draw(t, "word")
}

// TestBufferEditSequenceInvariants drives random edits through a model
// string and checks the buffer agrees with it at every step, and that
// cursor/row bookkeeping never drifts out of the invariants it must
// maintain.
func TestBufferEditSequenceInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := NewBuffer()
		var model strings.Builder

		steps := rapid.IntRange(1, 25).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			cur := model.String()
			op := rapid.IntRange(0, 2).Draw(rt, "op")
			pos := 0
			if len(cur) > 0 {
				pos = rapid.IntRange(0, len(cur)).Draw(rt, "pos")
				// never split a UTF-8 sequence: ASCII-only generator
				// keeps every byte offset a valid rune boundary.
			}

			switch op {
			case 0: // insert
				ins := genASCIIWord(rt)
				b.InsertText(pos, []byte(ins))
				model2 := cur[:pos] + ins + cur[pos:]
				model.Reset()
				model.WriteString(model2)
			case 1: // remove
				if len(cur) == 0 {
					continue
				}
				n := rapid.IntRange(0, len(cur)-pos).Draw(rt, "n")
				b.RemoveText(pos, n)
				model2 := cur[:pos] + cur[pos+n:]
				model.Reset()
				model.WriteString(model2)
			case 2: // replace
				n := 0
				if len(cur) > 0 {
					n = rapid.IntRange(0, len(cur)-pos).Draw(rt, "n")
				}
				ins := genASCIIWord(rt)
				b.ReplaceText(pos, n, []byte(ins))
				model2 := cur[:pos] + ins + cur[pos+n:]
				model.Reset()
				model.WriteString(model2)
			}

			want := model.String()
			got := string(b.GetText())
			if got != want {
				rt.Fatalf("buffer diverged from model: got %q want %q", got, want)
			}
			if b.Len() != len(want) {
				rt.Fatalf("Len()=%d, want %d", b.Len(), len(want))
			}
			if !utf8.Valid(b.GetText()) {
				rt.Fatalf("buffer text is not valid UTF-8: %q", got)
			}
			// cursor.pos must always sit on a valid, in-range position.
			cpos := b.CursorPos()
			if cpos < 0 || cpos > b.Len() {
				rt.Fatalf("cursor pos %d out of range [0,%d]", cpos, b.Len())
			}
			if b.ValidPos(cpos) != cpos {
				rt.Fatalf("cursor pos %d is not a valid rune boundary", cpos)
			}
			// row/col bookkeeping must agree with a fresh recomputation.
			row, col := b.CursorRowCol()
			wantRow := b.RowFromPos(cpos)
			wantCol := b.ColumnFromPos(b.RowStart(cpos), cpos)
			if row != wantRow || col != wantCol {
				rt.Fatalf("cursor row/col (%d,%d) disagrees with recomputed (%d,%d)", row, col, wantRow, wantCol)
			}
		}
	})
}

// TestSetTextRoundTripIsIdentity checks spec.md §8's round-trip property
// across arbitrary ASCII text, not just the one hand-picked string in
// buffer_test.go's concrete version.
func TestSetTextRoundTripIsIdentity(rt *testing.T) {
	rapid.Check(rt, func(t *rapid.T) {
		b := NewBuffer()
		text := rapid.StringMatching(`[a-zA-Z0-9 \n]{0,80}`).Draw(t, "text")
		b.InsertText(0, []byte(text))
		before := b.GetText()
		b.SetText(b.GetText())
		if string(before) != string(b.GetText()) {
			t.Fatalf("SetText(GetText()) changed contents: %q -> %q", before, b.GetText())
		}
		if b.CountRows(0, b.Len()) != b.CountRows(0, b.Len()) {
			t.Fatalf("CountRows not stable across identical calls")
		}
	})
}

// TestExtractReplaceIsIdempotent checks that extracting a span and
// replacing it with itself is always a no-op, for arbitrary spans.
func TestExtractReplaceIsIdempotent(rt *testing.T) {
	rapid.Check(rt, func(t *rapid.T) {
		b := NewBuffer()
		text := rapid.StringMatching(`[a-zA-Z0-9 \n]{1,80}`).Draw(t, "text")
		b.InsertText(0, []byte(text))

		pos := rapid.IntRange(0, b.Len()).Draw(t, "pos")
		n := rapid.IntRange(0, b.Len()-pos).Draw(t, "n")

		before := string(b.GetText())
		extracted := b.ExtractText(pos, n)
		b.ReplaceText(pos, n, extracted)
		if string(b.GetText()) != before {
			t.Fatalf("self-replace changed contents: %q -> %q", before, b.GetText())
		}
	})
}
