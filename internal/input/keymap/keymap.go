package keymap

import "github.com/lg2m/athena/internal/editor"

// Binding associates one key event with one command.
type Binding struct {
	Event       Event
	Command     editor.Command
	Description string
}

// Fallback resolves events no binding matched. Used by the insert keymap
// to turn printable runes into insertions.
type Fallback func(Event) (editor.Command, bool)

// Keymap is the set of bindings active in one editor mode.
type Keymap struct {
	Name     string
	Mode     editor.Mode
	bindings map[Event]editor.Command
	fallback Fallback
}

// New creates an empty keymap for the given mode.
func New(name string, mode editor.Mode) *Keymap {
	return &Keymap{
		Name:     name,
		Mode:     mode,
		bindings: make(map[Event]editor.Command),
	}
}

// Bind adds or replaces a binding.
func (k *Keymap) Bind(b Binding) {
	k.bindings[b.Event] = b.Command
}

// SetFallback installs the unmatched-event resolver.
func (k *Keymap) SetFallback(fn Fallback) {
	k.fallback = fn
}

// Resolve maps a key event to a command. The second result reports
// whether the event is bound.
func (k *Keymap) Resolve(ev Event) (editor.Command, bool) {
	if cmd, ok := k.bindings[ev]; ok {
		return cmd, true
	}
	if k.fallback != nil {
		return k.fallback(ev)
	}
	return editor.Command{}, false
}

// Len returns the number of explicit bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
