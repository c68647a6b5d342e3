package rex

// Kind tags every instruction in a compiled Program. The set mirrors
// FXRex.cpp's OP_* enum (spec.md §3.1) but follows the "tagged variant"
// re-architecture spec.md §9 explicitly sanctions as an alternative to the
// original's flat opcode-per-variant encoding: related opcodes (e.g. the
// eighteen ASCII single-character-class tests, or the nine greediness
// variants of Star/Plus/Quest/Rep) collapse into one Kind plus generic
// fields, the same way wazero's interpreter represents every WASM
// instruction as one unionOperation{kind, us, rs, b1, b2, b3} struct
// instead of one Go type per opcode.
type Kind uint8

const (
	KFail Kind = iota
	KPass
	KJump
	KBranch    // try inline code first, fall back to Target on failure
	KBranchRev // try Target first, fall back to inline code on failure
	KAtomic    // commit to the match found by [A,B) on success; never re-enter on later failure
	           // (also how every possessive quantifier compiles: x*+ / x++ / x{n,m}+
	           // over a complex atom is the greedy form wrapped in KAtomic, rather than
	           // a dedicated no-backtrack-loop opcode family)

	// Assertions (zero-width).
	KAssertNotEmpty
	KAssertStrBeg
	KAssertStrEnd
	KAssertLineBeg
	KAssertLineEnd
	KAssertWordBeg
	KAssertWordEnd
	KAssertWordBnd // Neg selects the \B sense (not a boundary)

	// Literal runs and single characters.
	KLiteral // Bytes is the run to match; Neg toggles IgnoreCase, Uni toggles Unicode decoding
	KChar    // single literal byte (ASCII) or rune (Unicode); Neg toggles IgnoreCase

	// Single-character matches.
	KAny       // any byte/rune; IncludeNL controls whether '\n' matches
	KClass     // 256-bit byte set in Bytes; Neg selects NotIn
	KPredicate // built-in class (Pred); Neg negates; IncludeNL allows '\n' when negated
	KUCat      // Unicode general category named in Name; Neg/IncludeNL as above
	KUScript   // Unicode script named in Name; Neg/IncludeNL as above

	// Repeats over a single already-compiled atom instruction at A (a
	// SIMPLE atom per spec.md §4.1's "shift-down" note: matches exactly
	// one character, no alternation).
	KRepeatSimple // repeat instruction at index A between Min and Max times; Greed selects strategy

	// Lookaround; [A,B) is the sub-program to test at the current position.
	KLookahead  // Neg selects negative lookahead
	KLookbehind // Neg selects negative lookbehind; [A,B) matches ending at the current position

	// Capture markers.
	KSubBeg // capture index in A
	KSubEnd // capture index in A

	// Back-reference to capture index A; Neg selects case-insensitive.
	KBackRef

	// Counter ops for complex (non-SIMPLE) counted repeats, slots 0..9.
	KCounterZero
	KCounterIncr
	KCounterJumpLT // A: counter slot, B: bound, Target: jump destination if counters[A] < B
)

// Greed selects quantifier backtracking strategy; the numeric values
// mirror FXRex.cpp's "Lazy = Greedy + 1, Possessive = Greedy + 2" coding
// (spec.md §4.1) even though here it is a struct field, not an opcode
// offset, per the tagged-variant re-architecture.
type Greed uint8

const (
	Greedy Greed = iota
	Lazy
	Possessive
)

// Pred enumerates the built-in character-class predicates shared by the
// ASCII and Unicode predicate instructions (KPredicate).
type Pred uint8

const (
	PredUpper Pred = iota
	PredLower
	PredTitle // Unicode-only; ASCII has no title case
	PredSpace
	PredDigit
	PredHex // ASCII-only; Unicode mode has no dedicated hex-digit category
	PredLetter
	PredPunct
	PredWord
)

// sentinel is REX's stand-in for FXRex's ONEINDIG pseudo-infinity: a large
// repeat bound that can never legitimately occur (spec.md §9 "Open
// questions") but is small enough that doubling it during interpretation
// never overflows an int on any supported platform.
const sentinel = 1 << 20

// maxCapture is the number of capture slots including the whole match
// (index 0), per spec.md §3.1.
const maxCapture = 10

// maxCounter is the number of counter slots available to counted repeats
// over non-SIMPLE atoms, per spec.md §4.1.
const maxCounter = 10

// maxProgramLen bounds program size so that a 16-bit signed jump offset,
// were the program serialized with narrow offsets per spec.md §9, would
// always suffice; Compile reports ErrLong above this.
const maxProgramLen = 32767
