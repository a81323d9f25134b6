// Package document renders the text buffer with gutter, selection
// highlighting, and viewport scrolling.
package document

import (
	"fmt"

	"github.com/lg2m/athena/internal/editor"
	"github.com/lg2m/athena/internal/engine/grapheme"
	"github.com/lg2m/athena/internal/renderer"
	"github.com/lg2m/athena/internal/renderer/gutter"
)

// View paints the buffer into every terminal row except the bottom one,
// which is left to the status line. It keeps the cursor line inside the
// visible window by scrolling whole lines.
type View struct {
	renderer.DirtyFlag

	theme      renderer.Theme
	gutter     *gutter.Gutter
	layout     []string
	minWidth   int
	relative   bool
	showGutter bool
	tabWidth   int

	top int // first visible buffer line
}

// NewView creates a document view with the given theme.
func NewView(theme renderer.Theme) *View {
	v := &View{
		theme:      theme,
		layout:     []string{"line_numbers", "spacer"},
		minWidth:   3,
		showGutter: true,
		tabWidth:   4,
	}
	v.rebuildGutter()
	return v
}

// SetLineNumbers switches the gutter mode: "absolute", "relative", or
// "off".
func (v *View) SetLineNumbers(mode string) {
	v.showGutter = mode != "off"
	v.relative = mode == "relative"
	v.rebuildGutter()
}

// SetGutterLayout replaces the ordered gutter element list. Valid
/// elements: "spacer", "line_numbers".
func (v *View) SetGutterLayout(layout []string) error {
	for _, el := range layout {
		if el != "spacer" && el != "line_numbers" {
			return fmt.Errorf("document: unknown gutter element %q", el)
		}
	}
	v.layout = layout
	v.rebuildGutter()
	return nil
}

// SetGutterMinWidth sets the least gutter digit-column count.
func (v *View) SetGutterMinWidth(n int) {
	if n >= 1 {
		v.minWidth = n
		v.rebuildGutter()
	}
}

// SetTabWidth sets the display width of a tab character.
func (v *View) SetTabWidth(n int) {
	if n >= 1 {
		v.tabWidth = n
		v.MarkDirty()
	}
}

// rebuildGutter reassembles the element list after a settings change.
func (v *View) rebuildGutter() {
	elements := make([]gutter.Element, 0, len(v.layout))
	for _, el := range v.layout {
		switch el {
		case "spacer":
			elements = append(elements, gutter.Spacer{Style: v.theme.Text})
		case "line_numbers":
			elements = append(elements, &gutter.LineNumbers{
				Relative:     v.relative,
				MinWidth:     v.minWidth,
				Style:        v.theme.LineNumber,
				CurrentStyle: v.theme.Text,
			})
		}
	}
	v.gutter = gutter.New(elements...)
	v.MarkDirty()
}

// HandleEvent flips the view dirty on anything that changes what it
// paints.
func (v *View) HandleEvent(ev editor.Event, s *editor.State) {
	switch ev.Kind {
	case editor.EvCursorMoved, editor.EvBufferChanged, editor.EvModeChanged, editor.EvViewportChanged:
		v.MarkDirty()
	}
}

// Top returns the first visible buffer line.
func (v *View) Top() int {
	return v.top
}

// Render repaints the whole document area.
func (v *View) Render(out renderer.Output, s *editor.State) error {
	width, height := out.Size()
	rows := height - 1 // bottom row belongs to the status line
	if rows < 1 || width < 1 {
		return nil
	}

	buf := s.Buffer()
	curLine, curCol := s.CursorCoords()
	v.scrollTo(curLine, rows)

	lineCount := buf.LineCount()
	gutterWidth := 0
	if v.showGutter {
		gutterWidth = v.gutter.Width(lineCount)
	}

	selLo, selHi := -1, -1
	if s.Selection().IsActive() {
		selLo, selHi = s.Selection().Range()
	}

	for row := 0; row < rows; row++ {
		line := v.top + row
		if v.showGutter {
			v.gutter.RenderLine(out, 0, row, line, curLine, lineCount)
		}
		if line >= lineCount {
			out.Fill(gutterWidth, row, width-gutterWidth, 1, renderer.Cell{Content: " ", Width: 1, Style: v.theme.Text})
			continue
		}
		v.renderLine(out, buf, line, row, gutterWidth, width, selLo, selHi)
	}

	v.placeCursor(out, s, buf, curLine, curCol, gutterWidth)
	return nil
}

// renderLine paints one buffer line cluster by cluster, highlighting
// the selected index range.
func (v *View) renderLine(out renderer.Output, buf ropeBuffer, line, row, x0, width, selLo, selHi int) {
	start := buf.LineStart(line)
	end := start + buf.LineLen(line)

	x := x0
	for idx := start; idx < end && x < width; {
		next := grapheme.NextBoundary(buf, idx)
		if next <= idx {
			break
		}
		cluster := buf.Slice(idx, next)

		style := v.theme.Text
		if idx >= selLo && idx < selHi {
			style = v.theme.Selection
		}

		if cluster == "\t" {
			out.Fill(x, row, min(v.tabWidth, width-x), 1, renderer.Cell{Content: " ", Width: 1, Style: style})
			x += v.tabWidth
			idx = next
			continue
		}

		cell := renderer.NewCell(cluster, style)
		out.SetCell(x, row, cell)
		if cell.Width > 1 {
			out.SetCell(x+1, row, renderer.ContinuationCell(style))
		}
		x += cell.Width
		idx = next
	}
	if x < width {
		out.Fill(x, row, width-x, 1, renderer.Cell{Content: " ", Width: 1, Style: v.theme.Text})
	}
}

// placeCursor positions the hardware cursor at the cursor's display
// column, bar-shaped in insert mode and block-shaped in normal mode.
func (v *View) placeCursor(out renderer.Output, s *editor.State, buf ropeBuffer, curLine, curCol, x0 int) {
	width, _ := out.Size()

	x := x0
	start := buf.LineStart(curLine)
	for idx := start; idx < start+curCol; {
		next := grapheme.NextBoundary(buf, idx)
		if next <= idx {
			break
		}
		x += v.clusterWidth(buf.Slice(idx, next))
		idx = next
	}
	y := curLine - v.top

	if x >= width {
		out.HideCursor()
		return
	}
	if s.Mode() == editor.ModeInsert {
		out.SetCursorStyle(renderer.CursorBar)
	} else {
		out.SetCursorStyle(renderer.CursorBlock)
	}
	out.ShowCursor(x, y)
}

// clusterWidth is the display width of one cluster, with tabs expanded.
func (v *View) clusterWidth(cluster string) int {
	if cluster == "\t" {
		return v.tabWidth
	}
	return grapheme.Width(cluster)
}

// scrollTo moves the window so line is visible in a viewport of rows
// lines.
func (v *View) scrollTo(line, rows int) {
	if line < v.top {
		v.top = line
	}
	if line >= v.top+rows {
		v.top = line - rows + 1
	}
	if v.top < 0 {
		v.top = 0
	}
}

// ropeBuffer is the slice of the rope API the view reads.
type ropeBuffer interface {
	grapheme.Text
	LineCount() int
	LineStart(line int) int
	LineLen(line int) int
	Slice(start, end int) string
}
