package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lg2m/athena/internal/input/keymap"
	"github.com/lg2m/athena/internal/renderer"
)

// Terminal implements Backend on top of tcell.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal allocates a terminal backend. The terminal is not touched
// until Init.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell renderer.Cell) {
	if cell.IsContinuation() {
		// tcell manages the trailing column of wide clusters itself.
		return
	}
	runes := []rune(cell.Content)
	if len(runes) == 0 {
		return
	}
	t.screen.SetContent(x, y, runes[0], runes[1:], convertStyle(cell.Style))
}

func (t *Terminal) Fill(x, y, w, h int, cell renderer.Cell) {
	runes := []rune(cell.Content)
	if len(runes) == 0 {
		return
	}
	style := convertStyle(cell.Style)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			t.screen.SetContent(col, row, runes[0], runes[1:], style)
		}
	}
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style renderer.CursorStyle) {
	switch style {
	case renderer.CursorBlock:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	case renderer.CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	case renderer.CursorHidden:
		t.screen.HideCursor()
	}
}

func (t *Terminal) Show() {
	t.screen.Show()
}

// PollEvent blocks on the next terminal event and converts it. Events
// with no mapping (mouse, paste, focus) are swallowed and polling
// continues.
func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if key, ok := convertKey(ev); ok {
				return KeyEvent{Key: key}
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			return ResizeEvent{Width: w, Height: h}
		case *tcell.EventInterrupt:
			return nil
		case nil:
			return nil
		}
	}
}

func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// convertStyle maps a renderer style to a tcell style.
func convertStyle(s renderer.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))
	if s.Attributes.Has(renderer.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(renderer.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(renderer.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(renderer.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c renderer.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertKey maps a tcell key event to the keymap model.
func convertKey(ev *tcell.EventKey) (keymap.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return keymap.Special(keymap.KeyEscape), true
	case tcell.KeyEnter:
		return keymap.Special(keymap.KeyEnter), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keymap.Special(keymap.KeyBackspace), true
	case tcell.KeyUp:
		return keymap.Special(keymap.KeyUp), true
	case tcell.KeyDown:
		return keymap.Special(keymap.KeyDown), true
	case tcell.KeyLeft:
		return keymap.Special(keymap.KeyLeft), true
	case tcell.KeyRight:
		return keymap.Special(keymap.KeyRight), true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return keymap.Ctrl(ev.Rune()), true
		}
		return keymap.Rune(ev.Rune()), true
	}
	// Control chords arrive as dedicated key codes, not as runes.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return keymap.Ctrl(rune('a' + k - tcell.KeyCtrlA)), true
	}
	return keymap.Event{}, false
}
