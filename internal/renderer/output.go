package renderer

// CursorStyle selects the hardware cursor shape.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorHidden
)

// Output is the drawing surface views paint on. The backend subpackage
// provides the terminal implementation and an in-memory one for tests.
type Output interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell places a cell. Calls outside the surface are ignored.
	SetCell(x, y int, cell Cell)

	// Fill covers the rectangle [x, x+w) x [y, y+h) with cell.
	Fill(x, y, w, h int, cell Cell)

	// ShowCursor places the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor removes the hardware cursor.
	HideCursor()

	// SetCursorStyle switches the hardware cursor shape.
	SetCursorStyle(style CursorStyle)

	// Show flushes pending drawing to the surface.
	Show()
}
