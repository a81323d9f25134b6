package keymap

import "fmt"

// Key identifies a keyboard key. Character keys use KeyRune with the
// character in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyBackspace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is a character key; the character lives in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRune:
		return "rune"
	default:
		return fmt.Sprintf("key(%d)", uint8(k))
	}
}

// Event is one decoded keyboard event.
type Event struct {
	Key  Key
	Rune rune
	Ctrl bool
}

// Rune builds a character key event.
func Rune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Ctrl builds a control-chord event for the given character.
func Ctrl(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Ctrl: true}
}

// Special builds an event for a non-character key.
func Special(k Key) Event {
	return Event{Key: k}
}

// String formats the event the way bindings are written, e.g. "a",
// "ctrl+s", "escape".
func (e Event) String() string {
	if e.Key == KeyRune {
		if e.Ctrl {
			return fmt.Sprintf("ctrl+%c", e.Rune)
		}
		return string(e.Rune)
	}
	return e.Key.String()
}
