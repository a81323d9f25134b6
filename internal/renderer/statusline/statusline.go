// Package statusline renders the one-row bar at the bottom of the
// screen.
package statusline

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/lg2m/athena/internal/editor"
	"github.com/lg2m/athena/internal/engine/grapheme"
	"github.com/lg2m/athena/internal/renderer"
)

// Item is one piece of information the bar can show.
type Item int

const (
	ItemMode Item = iota
	ItemFileName
	ItemFileEncoding
	ItemLanguage
	ItemPosition
	ItemLineCount
)

// ParseItem resolves an item name from a config file.
func ParseItem(name string) (Item, error) {
	switch name {
	case "mode":
		return ItemMode, nil
	case "file_name":
		return ItemFileName, nil
	case "file_encoding":
		return ItemFileEncoding, nil
	case "language":
		return ItemLanguage, nil
	case "position":
		return ItemPosition, nil
	case "line_count":
		return ItemLineCount, nil
	default:
		return 0, fmt.Errorf("statusline: unknown item %q", name)
	}
}

// Layout lists the items of each bar section in display order.
type Layout struct {
	Left   []Item
	Center []Item
	Right  []Item
}

// DefaultLayout shows the mode on the left, the file name in the
// center, and encoding plus cursor position on the right.
func DefaultLayout() Layout {
	return Layout{
		Left:   []Item{ItemMode},
		Center: []Item{ItemFileName},
		Right:  []Item{ItemFileEncoding, ItemPosition, ItemLineCount},
	}
}

// ParseLayout builds a layout from config item names.
func ParseLayout(left, center, right []string) (Layout, error) {
	var l Layout
	var err error
	if l.Left, err = parseItems(left); err != nil {
		return Layout{}, err
	}
	if l.Center, err = parseItems(center); err != nil {
		return Layout{}, err
	}
	if l.Right, err = parseItems(right); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func parseItems(names []string) ([]Item, error) {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		item, err := ParseItem(name)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// StatusLine shows the configured items in three sections across the
// bottom row.
type StatusLine struct {
	renderer.DirtyFlag

	style  renderer.Style
	layout Layout

	fileName string
	encoding string
	language string
	modified bool
}

// New creates a status line with the given style and the default
// layout.
func New(style renderer.Style) *StatusLine {
	return &StatusLine{style: style, layout: DefaultLayout()}
}

// SetLayout replaces the section layout.
func (s *StatusLine) SetLayout(l Layout) {
	s.layout = l
	s.MarkDirty()
}

// SetFileName sets the displayed file name. Empty means a scratch
// buffer.
func (s *StatusLine) SetFileName(name string) {
	s.fileName = name
	s.MarkDirty()
}

// SetEncoding sets the displayed file encoding, e.g. "utf-8".
func (s *StatusLine) SetEncoding(enc string) {
	s.encoding = enc
	s.MarkDirty()
}

// SetLanguage sets the displayed language name.
func (s *StatusLine) SetLanguage(lang string) {
	s.language = lang
	s.MarkDirty()
}

// MarkSaved clears the modified indicator after a successful save.
func (s *StatusLine) MarkSaved() {
	s.modified = false
	s.MarkDirty()
}

// HandleEvent flips the bar dirty on anything it displays; edits also
// set the modified indicator.
func (s *StatusLine) HandleEvent(ev editor.Event, _ *editor.State) {
	switch ev.Kind {
	case editor.EvBufferChanged:
		s.modified = true
		s.MarkDirty()
	case editor.EvCursorMoved, editor.EvModeChanged, editor.EvViewportChanged:
		s.MarkDirty()
	}
}

// Render paints the bottom row.
func (s *StatusLine) Render(out renderer.Output, st *editor.State) error {
	width, height := out.Size()
	if width < 1 || height < 1 {
		return nil
	}
	row := height - 1

	left := " " + s.section(s.layout.Left, st)
	center := s.section(s.layout.Center, st)
	right := s.section(s.layout.Right, st) + " "

	out.Fill(0, row, width, 1, renderer.Cell{Content: " ", Width: 1, Style: s.style})
	s.write(out, 0, row, left)
	s.write(out, (width-displayWidth(center))/2, row, center)
	s.write(out, width-displayWidth(right), row, right)
	return nil
}

// section formats one ordered item list, two spaces between items.
func (s *StatusLine) section(items []Item, st *editor.State) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if text := s.itemText(item, st); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "  ")
}

func (s *StatusLine) itemText(item Item, st *editor.State) string {
	switch item {
	case ItemMode:
		return st.Mode().Abbrev()
	case ItemFileName:
		name := s.fileName
		if name == "" {
			name = "[scratch]"
		}
		if s.modified {
			name += " [+]"
		}
		return name
	case ItemFileEncoding:
		return s.encoding
	case ItemLanguage:
		return s.language
	case ItemPosition:
		line, col := st.CursorCoords()
		return fmt.Sprintf("%d:%d", line+1, col+1)
	case ItemLineCount:
		return fmt.Sprintf("%dL", st.Buffer().LineCount())
	default:
		return ""
	}
}

// write paints a string cluster by cluster starting at (x, y), clipped
// to the surface.
func (s *StatusLine) write(out renderer.Output, x, y int, text string) {
	width, _ := out.Size()
	rest := text
	for len(rest) > 0 && x < width {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		rest = tail
		cell := renderer.NewCell(cluster, s.style)
		if x >= 0 {
			out.SetCell(x, y, cell)
			if cell.Width > 1 {
				out.SetCell(x+1, y, renderer.ContinuationCell(s.style))
			}
		}
		x += cell.Width
	}
}

// displayWidth sums cluster widths the same way write advances.
func displayWidth(text string) int {
	w, rest := 0, text
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		rest = tail
		w += grapheme.Width(cluster)
	}
	return w
}
