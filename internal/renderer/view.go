package renderer

import "github.com/lg2m/athena/internal/editor"

// View is one dirty-tracked renderer. HandleEvent may be called with
// events the view does not care about and must then be a no-op; each
// view decides which event kinds flip it dirty. A freshly created view
// reports dirty so the first pass paints it.
type View interface {
	// Render paints the view. The state is read-locked for the duration
	// of the call and must not be retained.
	Render(out Output, s *editor.State) error

	// HandleEvent lets the view update its presentation cache and dirty
	// flag from one editor event.
	HandleEvent(ev editor.Event, s *editor.State)

	// Dirty reports whether the view needs repainting.
	Dirty() bool

	// MarkClean resets the dirty flag after a repaint.
	MarkClean()
}

// DirtyFlag implements the dirty-tracking half of View. Its zero value
// is dirty, matching the contract that new views paint on first pass.
type DirtyFlag struct {
	clean bool
}

// Dirty reports whether a repaint is needed.
func (d *DirtyFlag) Dirty() bool {
	return !d.clean
}

// MarkClean resets the flag.
func (d *DirtyFlag) MarkClean() {
	d.clean = true
}

// MarkDirty requests a repaint.
func (d *DirtyFlag) MarkDirty() {
	d.clean = false
}
