// Package backend provides terminal output and input for the renderer.
package backend

import (
	"github.com/lg2m/athena/internal/input/keymap"
	"github.com/lg2m/athena/internal/renderer"
)

// Backend is a drawing surface with a lifecycle and an input source.
type Backend interface {
	renderer.Output

	// Init takes over the terminal. It must be called before any other
	// method.
	Init() error

	// Fini restores the terminal.
	Fini()

	// PollEvent blocks until the next input event. It returns nil when
	// the backend has been shut down.
	PollEvent() Event

	// Interrupt wakes up a blocked PollEvent, which then returns nil.
	Interrupt()
}

// Event is one terminal input event.
type Event interface {
	isEvent()
}

// KeyEvent is a decoded key press.
type KeyEvent struct {
	Key keymap.Event
}

// ResizeEvent reports new surface dimensions.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
