// Command gmtextd loads a file into a textbuf.Buffer configured through
// pkg/gmtext, reflows it under a configurable wrap width, and renders
// every row to the terminal with a lipgloss-backed Canvas — exercising
// word-wrap layout and render in one pass; it makes no edits, block
// operations or selections after loading. It follows
// cmd/wazero/wazero.go's doMain(args, stdout, stderr) shape.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/gogglesmm/gogglesmm-sub010/internal/config"
	"github.com/gogglesmm/gogglesmm-sub010/internal/obslog"
	"github.com/gogglesmm/gogglesmm-sub010/internal/textbuf"
	"github.com/gogglesmm/gogglesmm-sub010/pkg/gmtext"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

func doMain(args []string, stdOut, stdErr io.Writer) int {
	flags := pflag.NewFlagSet("gmtextd", pflag.ContinueOnError)
	flags.SetOutput(stdErr)

	configPath := flags.StringP("config", "c", "", "path to a YAML config file")
	wrapColumns := flags.IntP("wrap", "w", 0, "override configured wrap width (0 = use config)")
	help := flags.BoolP("help", "h", false, "print usage")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *help || flags.NArg() != 1 {
		fmt.Fprintln(stdErr, "gmtextd [flags] FILE")
		flags.PrintDefaults()
		if *help {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stdErr, "gmtextd: %v\n", err)
		return 1
	}
	if *wrapColumns > 0 {
		cfg.WrapColumns = *wrapColumns
	}
	level, err := obslog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stdErr, "gmtextd: %v\n", err)
		return 1
	}
	logger := obslog.New(stdErr, level)

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(stdErr, "gmtextd: %v\n", err)
		return 1
	}

	buf := textbuf.NewBuffer()
	gmtext.ApplyConfig(buf, cfg)
	buf.SetText(data)
	logger.Info().Str("file", flags.Arg(0)).Int("bytes", buf.Len()).Str("buffer", buf.ID().String()).Msg("loaded")

	ctrl := gmtext.New(buf, nil)

	canvas := &ansiCanvas{w: stdOut}
	buf.SetCanvas(canvas)

	rows := buf.CountRows(0, buf.Len())
	pos := 0
	for y := 0; y < rows; y++ {
		buf.DrawTextRow(pos, 0, y)
		end := buf.RowEnd(pos)
		if end >= buf.Len() {
			break
		}
		pos = end
	}
	canvas.flush()

	_ = ctrl // controller is wired and usable by a future interactive frontend
	return 0
}

// ansiCanvas is a lipgloss-backed stand-in Canvas, giving
// internal/textbuf's render subsystem a real, exercised consumer
// instead of an abstract interface nobody calls. It renders cell
// coordinates (x,y) rather than pixels: one lipgloss style per run of
// text, one line of output per row.
type ansiCanvas struct {
	w     io.Writer
	lines []strings.Builder
}

func (c *ansiCanvas) lineAt(y int) *strings.Builder {
	for len(c.lines) <= y {
		c.lines = append(c.lines, strings.Builder{})
	}
	return &c.lines[y]
}

func (c *ansiCanvas) FillRect(x, y, w, h int, fg, bg textbuf.Color) {}

func (c *ansiCanvas) DrawText(x, y int, text string, fg, bg textbuf.Color) {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHex(fg))).
		Background(lipgloss.Color(colorHex(bg)))
	c.lineAt(y).WriteString(style.Render(text))
}

func (c *ansiCanvas) flush() {
	for _, l := range c.lines {
		fmt.Fprintln(c.w, l.String())
	}
}

func colorHex(c textbuf.Color) string {
	return fmt.Sprintf("#%06x", uint32(c))
}
