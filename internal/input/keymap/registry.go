package keymap

import (
	"errors"
	"fmt"

	"github.com/lg2m/athena/internal/editor"
)

// ErrNilKeymap is returned by Register when given a nil keymap.
var ErrNilKeymap = errors.New("keymap: nil keymap")

// Registry holds the active keymap for each editor mode. It is built
// once at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	maps map[editor.Mode]*Keymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{maps: make(map[editor.Mode]*Keymap)}
}

// Register installs a keymap for its mode, replacing any previous one.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return ErrNilKeymap
	}
	r.maps[km.Mode] = km
	return nil
}

// Keymap returns the keymap for a mode, or an error if none is
// registered.
func (r *Registry) Keymap(mode editor.Mode) (*Keymap, error) {
	km, ok := r.maps[mode]
	if !ok {
		return nil, fmt.Errorf("keymap: no keymap for mode %s", mode)
	}
	return km, nil
}

// Lookup resolves a key event against the keymap of the given mode.
// Unregistered modes and unbound events both report false.
func (r *Registry) Lookup(mode editor.Mode, ev Event) (editor.Command, bool) {
	km, ok := r.maps[mode]
	if !ok {
		return editor.Command{}, false
	}
	return km.Resolve(ev)
}
