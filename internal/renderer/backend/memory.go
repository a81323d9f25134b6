package backend

import (
	"strings"
	"sync"

	"github.com/lg2m/athena/internal/renderer"
)

// Memory is an in-memory Backend for tests. It records every cell and
// the cursor state, and serves injected events to PollEvent. Cell
// access is locked, so tests may poll rows while a session renders.
type Memory struct {
	mu            sync.Mutex
	width, height int
	cells         [][]renderer.Cell

	CursorX, CursorY int
	CursorVisible    bool
	CursorShape      renderer.CursorStyle
	ShowCount        int

	events chan Event
}

// NewMemory creates a surface of the given size.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	m.cells = make([][]renderer.Cell, height)
	for y := range m.cells {
		m.cells[y] = make([]renderer.Cell, width)
		for x := range m.cells[y] {
			m.cells[y][x] = renderer.EmptyCell()
		}
	}
	return m
}

func (m *Memory) Init() error { return nil }
func (m *Memory) Fini()       {}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) SetCell(x, y int, cell renderer.Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCell(x, y, cell)
}

func (m *Memory) setCell(x, y int, cell renderer.Cell) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[y][x] = cell
}

func (m *Memory) Fill(x, y, w, h int, cell renderer.Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			m.setCell(col, row, cell)
		}
	}
}

func (m *Memory) ShowCursor(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CursorX, m.CursorY = x, y
	m.CursorVisible = true
}

func (m *Memory) HideCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CursorVisible = false
}

func (m *Memory) SetCursorStyle(style renderer.CursorStyle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CursorShape = style
}

func (m *Memory) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ShowCount++
}

// Cell returns the cell at (x, y).
func (m *Memory) Cell(x, y int) renderer.Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cells[y][x]
}

// Row returns the visible text of one row, trailing blanks trimmed.
func (m *Memory) Row(y int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		b.WriteString(m.cells[y][x].Content)
	}
	return strings.TrimRight(b.String(), " ")
}

// Inject queues an event for PollEvent.
func (m *Memory) Inject(ev Event) {
	m.events <- ev
}

func (m *Memory) PollEvent() Event {
	return <-m.events
}

func (m *Memory) Interrupt() {
	m.events <- nil
}
