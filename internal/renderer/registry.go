package renderer

import (
	"errors"
	"fmt"

	"github.com/lg2m/athena/internal/editor"
)

// ErrNilView is returned by Register when given a nil view.
var ErrNilView = errors.New("renderer: nil view")

// Registry holds views keyed by name. Paint order is registration
// order: later views paint over earlier ones. It is built at startup
// and only touched from the render loop afterwards.
type Registry struct {
	names []string
	views map[string]View
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]View)}
}

// Register adds a named view. Names must be unique.
func (r *Registry) Register(name string, v View) error {
	if v == nil {
		return ErrNilView
	}
	if _, ok := r.views[name]; ok {
		return fmt.Errorf("renderer: view %q already registered", name)
	}
	r.names = append(r.names, name)
	r.views[name] = v
	return nil
}

// View returns the view registered under name.
func (r *Registry) View(name string) (View, bool) {
	v, ok := r.views[name]
	return v, ok
}

// Len returns the number of registered views.
func (r *Registry) Len() int {
	return len(r.names)
}

// HandleEvent fans one editor event out to every view.
func (r *Registry) HandleEvent(ev editor.Event, s *editor.State) {
	for _, name := range r.names {
		r.views[name].HandleEvent(ev, s)
	}
}

// RenderPass repaints every dirty view, marking each clean right after
// its repaint, then flushes the output. The first error aborts the
// pass.
func (r *Registry) RenderPass(out Output, s *editor.State) error {
	painted := false
	for _, name := range r.names {
		v := r.views[name]
		if !v.Dirty() {
			continue
		}
		if err := v.Render(out, s); err != nil {
			return fmt.Errorf("renderer: view %q: %w", name, err)
		}
		v.MarkClean()
		painted = true
	}
	if painted {
		out.Show()
	}
	return nil
}
