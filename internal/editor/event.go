package editor

// EventKind identifies a fact in the closed event set.
type EventKind int

const (
	// EvCursorMoved reports the cursor's new (line, col).
	EvCursorMoved EventKind = iota

	// EvModeChanged reports a mode transition.
	EvModeChanged

	// EvBufferChanged reports that buffer content changed.
	EvBufferChanged

	// EvViewportChanged is reserved for size-change notifications; the
	// core never generates it.
	EvViewportChanged
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EvCursorMoved:
		return "cursor-moved"
	case EvModeChanged:
		return "mode-changed"
	case EvBufferChanged:
		return "buffer-changed"
	case EvViewportChanged:
		return "viewport-changed"
	default:
		return "unknown"
	}
}

// Event is a fact emitted after a command is applied. Events are consumed
// by views and never mutate state.
type Event struct {
	Kind EventKind
	Line int
	Col  int
	Mode Mode
}

// CursorMoved returns a cursor-position event.
func CursorMoved(line, col int) Event {
	return Event{Kind: EvCursorMoved, Line: line, Col: col}
}

// ModeChanged returns a mode-transition event.
func ModeChanged(mode Mode) Event {
	return Event{Kind: EvModeChanged, Mode: mode}
}

// BufferChanged returns a content-change event.
func BufferChanged() Event {
	return Event{Kind: EvBufferChanged}
}

// ViewportChanged returns a size-change event.
func ViewportChanged() Event {
	return Event{Kind: EvViewportChanged}
}
