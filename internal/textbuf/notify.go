package textbuf

// Region names a byte range for Selected/Deselected notifications.
type Region struct {
	Pos, Len int
}

// Listener receives the design-level events spec.md §6.2 lists, delivered
// synchronously on the owning goroutine — textbuf itself never logs or
// spawns goroutines, mirroring TEXT's single-owner-thread design.
// NewBuffer installs a no-op Listener, and neither pkg/gmtext nor the
// cmd/ entrypoints install another.
type Listener interface {
	Inserted(pos, nins int)
	Deleted(pos, ndel int)
	Replaced(pos, ndel, nins int)
	Changed(cursorpos int)
	Selected(r Region)
	Deselected(r Region)
}

// noopListener is the default installed by NewBuffer.
type noopListener struct{}

func (noopListener) Inserted(int, int)      {}
func (noopListener) Deleted(int, int)       {}
func (noopListener) Replaced(int, int, int) {}
func (noopListener) Changed(int)            {}
func (noopListener) Selected(Region)        {}
func (noopListener) Deselected(Region)      {}
