package gmtext

import (
	"fmt"

	"github.com/gogglesmm/gogglesmm-sub010/internal/config"
	"github.com/gogglesmm/gogglesmm-sub010/internal/textbuf"
)

// ParseColor parses a "#rrggbb" string into a textbuf.Color, ignoring a
// leading '#' if present. An unparseable string yields black.
func ParseColor(s string) textbuf.Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var v uint32
	if _, err := fmt.Sscanf(s, "%06x", &v); err != nil {
		return 0
	}
	return textbuf.Color(v)
}

// DefaultStyleTable builds the single-entry style table (slot 0, the
// unstyled default) from a config.ColorTable, for SetHiliteStyles.
func DefaultStyleTable(colors config.ColorTable) []textbuf.StyleEntry {
	return []textbuf.StyleEntry{{
		NormalFG:   ParseColor(colors.NormalFG),
		NormalBG:   ParseColor(colors.NormalBG),
		SelectedFG: ParseColor(colors.SelectedFG),
		SelectedBG: ParseColor(colors.SelectedBG),
		HiliteFG:   ParseColor(colors.SelectedBG),
		HiliteBG:   ParseColor(colors.NormalFG),
		ActiveBG:   ParseColor(colors.NormalBG),
	}}
}

// ApplyConfig wires a config.Config's geometry and mode flags onto buf,
// the controller-level counterpart to textbuf's individual Set* setters.
func ApplyConfig(buf *textbuf.Buffer, cfg config.Config) {
	buf.SetTabColumns(cfg.TabColumns)
	buf.SetWrapColumns(cfg.WrapColumns)
	buf.SetWordWrap(cfg.WordWrap)
	buf.SetFixedWrap(cfg.FixedWrap)
	buf.SetShowActive(cfg.ShowActive)
	buf.SetShowMatch(cfg.ShowMatch)
	buf.SetStyled(true)
	buf.SetHiliteStyles(DefaultStyleTable(cfg.Colors))
}
