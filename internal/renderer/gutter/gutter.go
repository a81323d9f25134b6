// Package gutter renders the column group beside the document as an
// ordered list of elements.
package gutter

import (
	"fmt"
	"strings"

	"github.com/lg2m/athena/internal/renderer"
)

// Element is one column group of the gutter.
type Element interface {
	// Width returns the columns the element occupies for a buffer of
	// lineCount lines.
	Width(lineCount int) int

	// RenderLine paints the element's cells for one screen row
	// starting at (x, y).
	RenderLine(out renderer.Output, x, y, line, currentLine, lineCount int)
}

// Spacer is a single blank column.
type Spacer struct {
	Style renderer.Style
}

func (s Spacer) Width(int) int { return 1 }

func (s Spacer) RenderLine(out renderer.Output, x, y, _, _, _ int) {
	out.SetCell(x, y, renderer.Cell{Content: " ", Width: 1, Style: s.Style})
}

// LineNumbers shows line numbers. Width grows with the line count but
// never drops below MinWidth.
type LineNumbers struct {
	// Relative shows distances from the current line instead of
	// absolute numbers; the current line keeps its absolute number.
	Relative bool

	// MinWidth is the least number of digit columns.
	MinWidth int

	Style        renderer.Style
	CurrentStyle renderer.Style
}

func (n *LineNumbers) Width(lineCount int) int {
	digits := len(fmt.Sprint(lineCount))
	if digits < n.MinWidth {
		digits = n.MinWidth
	}
	return digits
}

// Label formats the number shown for line. Lines past the buffer end
// get a blank label.
func (n *LineNumbers) Label(line, currentLine, lineCount int) string {
	width := n.Width(lineCount)
	if line >= lineCount {
		return strings.Repeat(" ", width)
	}
	num := line + 1
	if n.Relative && line != currentLine {
		num = line - currentLine
		if num < 0 {
			num = -num
		}
	}
	return fmt.Sprintf("%*d", width, num)
}

func (n *LineNumbers) RenderLine(out renderer.Output, x, y, line, currentLine, lineCount int) {
	style := n.Style
	if line == currentLine {
		style = n.CurrentStyle
	}
	for i, r := range n.Label(line, currentLine, lineCount) {
		out.SetCell(x+i, y, renderer.NewCell(string(r), style))
	}
}

// Gutter is the ordered element list painted left of the text.
type Gutter struct {
	elements []Element
}

// New creates a gutter from elements in display order.
func New(elements ...Element) *Gutter {
	return &Gutter{elements: elements}
}

// Width returns the total column count for lineCount lines.
func (g *Gutter) Width(lineCount int) int {
	w := 0
	for _, el := range g.elements {
		w += el.Width(lineCount)
	}
	return w
}

// RenderLine paints every element for one screen row starting at
// (x, y).
func (g *Gutter) RenderLine(out renderer.Output, x, y, line, currentLine, lineCount int) {
	for _, el := range g.elements {
		el.RenderLine(out, x, y, line, currentLine, lineCount)
		x += el.Width(lineCount)
	}
}
