package renderer

import "github.com/lg2m/athena/internal/engine/grapheme"

// Cell is a single terminal cell. Content holds one whole grapheme
// cluster; an empty Content on Width 0 marks the continuation cell of a
// wide cluster.
type Cell struct {
	Content string
	Width   int
	Style   Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Content: " ", Width: 1, Style: DefaultStyle()}
}

// NewCell builds a cell for one grapheme cluster, deriving its display
// width.
func NewCell(cluster string, style Style) Cell {
	return Cell{Content: cluster, Width: grapheme.Width(cluster), Style: style}
}

// ContinuationCell fills the second column of a wide cluster.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation reports whether this cell trails a wide cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Content == ""
}
