package utf8util

import (
	"unicode"

	"golang.org/x/text/cases"
)

// Unicode-mode classification and folding. The ASCII predicates above stay
// hand-written (spec.md calls out "default ASCII mode uses ASCII case
// only" as the common, hot path); Unicode mode defers to the standard
// unicode package for category tables and golang.org/x/text/cases for
// locale-independent case folding, rather than hand-rolling either.

var foldCaser = cases.Fold()

// FoldRune returns the first rune of r's case folding under
// golang.org/x/text/cases' Fold caser; where the folding is longer than
// one rune, only the first is kept. Used by REX's IgnoreCase+Unicode matching
// and by back-reference comparison in that mode.
func FoldRune(r rune) rune {
	out := foldCaser.Bytes([]byte(string(r)))
	folded, _ := Decode(out)
	return folded
}

func IsUpperRune(r rune) bool  { return unicode.IsUpper(r) }
func IsLowerRune(r rune) bool  { return unicode.IsLower(r) }
func IsTitleRune(r rune) bool  { return unicode.IsTitle(r) }
func IsLetterRune(r rune) bool { return unicode.IsLetter(r) }
func IsDigitRune(r rune) bool  { return unicode.IsDigit(r) }
func IsSpaceRune(r rune) bool  { return unicode.IsSpace(r) }
func IsPunctRune(r rune) bool  { return unicode.IsPunct(r) || unicode.IsSymbol(r) }

// IsWordRune reports whether r should count as a "word" character for
// Unicode word-boundary assertions: letters, digits, and underscore.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// UnicodeCategory looks up a general category table by name (e.g. "Lu",
// "Nd"), used by REX's KUCat instruction.
func UnicodeCategory(name string) (*unicode.RangeTable, bool) {
	rt, ok := unicode.Categories[name]
	return rt, ok
}

// UnicodeScript looks up a script table by name (e.g. "Greek", "Han"),
// used by REX's KUScript instruction.
func UnicodeScript(name string) (*unicode.RangeTable, bool) {
	rt, ok := unicode.Scripts[name]
	return rt, ok
}
