package textbuf

// StyleFlag is a bit in StyleEntry.Flags (spec.md §3.2).
type StyleFlag uint8

const (
	StyleBold StyleFlag = 1 << iota
	StyleUnderline
	StyleStrikeout
	StyleControl
)

// Color is a host-defined colour value; textbuf never interprets it, only
// threads it through to a Canvas (spec.md: "TEXT holds a non-owning
// pointer and dereferences only when painting").
type Color uint32

// StyleEntry is one row of an externally supplied style table (spec.md
// §3.2): three colour pairs (normal, selected, highlight), an active-row
// background and a flag set, indexed by an opaque style
// byte stored in the parallel style buffer.
type StyleEntry struct {
	NormalFG, NormalBG       Color
	SelectedFG, SelectedBG   Color
	HiliteFG, HiliteBG       Color
	ActiveBG                 Color
	Flags                    StyleFlag
}

func (s StyleEntry) has(f StyleFlag) bool { return s.Flags&f != 0 }
