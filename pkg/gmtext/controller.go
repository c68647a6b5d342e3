// Package gmtext is the controller glue spec.md §2 allots ~5% of the
// system to: it drives an internal/textbuf.Buffer from named commands,
// the way wazero's wasi_snapshot_preview1 package drives a wasm module
// from a declarative name→host-function table instead of a hand-rolled
// switch per call site.
package gmtext

import (
	"fmt"

	"github.com/gogglesmm/gogglesmm-sub010/internal/textbuf"
)

// Clipboard is the external collaborator spec.md §1 lists alongside
// Font/Canvas: copy/paste/DnD live outside TEXT's core. Controller only
// needs get/set of a single flat byte slice; DnD source/target
// negotiation is a host concern SPEC_FULL.md's Non-goals leave out.
type Clipboard interface {
	Set(data []byte)
	Get() []byte
}

// MemClipboard is an in-memory Clipboard stub, installed by New when no
// Clipboard is given (as in cmd/gmtextd), in place of a real OS
// clipboard integration.
type MemClipboard struct{ data []byte }

func (c *MemClipboard) Set(data []byte) { c.data = append([]byte(nil), data...) }
func (c *MemClipboard) Get() []byte     { return append([]byte(nil), c.data...) }

// Controller owns a Buffer, a Clipboard, and the command dispatch
// table built from it. It is the "thread" spec.md §5 says the buffer
// belongs to: every method below runs synchronously on whatever
// goroutine calls it.
type Controller struct {
	Buf       *textbuf.Buffer
	Clipboard Clipboard
	commands  map[string]Command
}

// Command is a single named editor action, registered into
// Controller.commands the way each wasi_snapshot_preview1 function is
// registered into its export table: by name, against a fixed
// signature, independent of how it's invoked (keybinding, menu, script).
type Command func(c *Controller, arg int)

// New builds a Controller over buf (or a fresh Buffer if buf is nil)
// with the standard command table installed.
func New(buf *textbuf.Buffer, clip Clipboard) *Controller {
	if buf == nil {
		buf = textbuf.NewBuffer()
	}
	if clip == nil {
		clip = &MemClipboard{}
	}
	c := &Controller{Buf: buf, Clipboard: clip}
	c.commands = defaultCommands()
	return c
}

// Do runs the named command with the given repeat/argument count,
// mirroring FOX's FXText::onCmd* handlers being invoked uniformly
// through FXApp's SEL_COMMAND dispatch regardless of trigger source.
func (c *Controller) Do(name string, arg int) error {
	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("gmtext: unknown command %q", name)
	}
	cmd(c, arg)
	return nil
}

// Register installs or overrides a named command, letting a host add
// bindings (macros, custom motions) without forking the package.
func (c *Controller) Register(name string, cmd Command) {
	c.commands[name] = cmd
}

// Commands lists the names of every registered command, for building a
// keybinding/menu UI.
func (c *Controller) Commands() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	return names
}

func defaultCommands() map[string]Command {
	return map[string]Command{
		"cursorLeft":      func(c *Controller, n int) { c.repeat(n, cursorLeft) },
		"cursorRight":     func(c *Controller, n int) { c.repeat(n, cursorRight) },
		"cursorWordLeft":  func(c *Controller, _ int) { c.Buf.SetCursorPos(c.Buf.LeftWord(c.Buf.CursorPos())) },
		"cursorWordRight": func(c *Controller, _ int) { c.Buf.SetCursorPos(c.Buf.RightWord(c.Buf.CursorPos())) },
		"cursorUp":        func(c *Controller, n int) { c.repeat(n, cursorUp) },
		"cursorDown":      func(c *Controller, n int) { c.repeat(n, cursorDown) },
		"cursorHome":      func(c *Controller, _ int) { c.Buf.SetCursorPos(c.Buf.LineStart(c.Buf.CursorPos())) },
		"cursorEnd":       func(c *Controller, _ int) { c.Buf.SetCursorPos(c.Buf.LineEnd(c.Buf.CursorPos())) },
		"selectAll":       func(c *Controller, _ int) { c.Buf.SetSelection(0, c.Buf.Len()) },
		"deselect":        func(c *Controller, _ int) { c.Buf.KillSelection() },
		"copy":            func(c *Controller, _ int) { c.Clipboard.Set(c.Buf.GetSelectedText()) },
		"cut":             func(c *Controller, _ int) { c.cutSelection() },
		"paste":           func(c *Controller, _ int) { c.pasteClipboard() },
		"deleteBack":      func(c *Controller, n int) { c.repeat(n, deleteBack) },
		"deleteFwd":       func(c *Controller, n int) { c.repeat(n, deleteFwd) },
		"undo":            func(c *Controller, _ int) { c.Buf.Undo() },
		"redo":            func(c *Controller, _ int) { c.Buf.Redo() },
		"newline":         func(c *Controller, _ int) { c.insertAtCursor([]byte{'\n'}) },
	}
}

func (c *Controller) repeat(n int, step func(c *Controller)) {
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		step(c)
	}
}

func cursorLeft(c *Controller)  { c.Buf.SetCursorPos(c.Buf.Dec(c.Buf.CursorPos())) }
func cursorRight(c *Controller) { c.Buf.SetCursorPos(c.Buf.Inc(c.Buf.CursorPos())) }

func cursorUp(c *Controller) {
	_, col := c.Buf.CursorRowCol()
	c.Buf.SetCursorPos(c.Buf.PrevRow(c.Buf.CursorPos(), col))
}

func cursorDown(c *Controller) {
	_, col := c.Buf.CursorRowCol()
	c.Buf.SetCursorPos(c.Buf.NextRow(c.Buf.CursorPos(), col))
}

func deleteBack(c *Controller) {
	pos := c.Buf.CursorPos()
	if pos == 0 {
		return
	}
	prev := c.Buf.Dec(pos)
	c.Buf.RemoveText(prev, pos-prev)
	c.Buf.SetCursorPos(prev)
}

func deleteFwd(c *Controller) {
	pos := c.Buf.CursorPos()
	if pos >= c.Buf.Len() {
		return
	}
	next := c.Buf.Inc(pos)
	c.Buf.RemoveText(pos, next-pos)
	c.Buf.SetCursorPos(pos)
}

func (c *Controller) cutSelection() {
	c.Clipboard.Set(c.Buf.GetSelectedText())
	c.deleteSelection()
}

func (c *Controller) deleteSelection() {
	sel := c.Buf.GetSelectedText()
	if len(sel) == 0 {
		return
	}
	// The selection's own bounds live on Buffer; recover them the same
	// way GetSelectedText does, via IsPosSelected's linear scan would be
	// wasteful, so just re-derive start/end from cursor/anchor ordering.
	pos, anchor := c.Buf.CursorPos(), c.Buf.AnchorPos()
	start, end := pos, anchor
	if start > end {
		start, end = end, start
	}
	c.Buf.RemoveText(start, end-start)
	c.Buf.SetCursorPos(start)
	c.Buf.KillSelection()
}

func (c *Controller) pasteClipboard() {
	c.deleteSelection()
	c.insertAtCursor(c.Clipboard.Get())
}

func (c *Controller) insertAtCursor(data []byte) {
	pos := c.Buf.CursorPos()
	c.Buf.InsertText(pos, data)
	c.Buf.SetCursorPos(pos + len(data))
}
