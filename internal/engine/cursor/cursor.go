// Package cursor provides the edit point and selection range over a
// grapheme-indexed buffer. All positions are character indices that land
// on grapheme cluster boundaries; movement operations clamp rather than
// fail at the buffer extremities.
package cursor

import (
	"github.com/lg2m/athena/internal/engine/grapheme"
)

// Buffer is the read surface movement operations need: grapheme queries
// plus line indexing. A rope satisfies it.
type Buffer interface {
	grapheme.Text

	// LineCount returns the number of lines.
	LineCount() int

	// LineOf returns the line containing a character index.
	LineOf(charIdx int) int

	// LineStart returns the character index of a line's first character.
	LineStart(line int) int

	// LineLen returns a line's length in characters, excluding the
	// terminator.
	LineLen(line int) int
}

// Cursor is the single edit point. It is created once per session and
// mutated by every movement and edit operation.
type Cursor struct {
	index int
}

// New returns a cursor at the start of the buffer.
func New() *Cursor {
	return &Cursor{}
}

// Index returns the cursor's character index.
func (c *Cursor) Index() int {
	return c.index
}

// SetIndex moves the cursor to the given index, clamped at 0. Callers are
// responsible for keeping the index within the buffer length.
func (c *Cursor) SetIndex(idx int) {
	if idx < 0 {
		idx = 0
	}
	c.index = idx
}

// MovePrevGrapheme moves to the previous grapheme cluster boundary.
func (c *Cursor) MovePrevGrapheme(b Buffer) {
	c.index = grapheme.PrevBoundary(b, c.index)
}

// MoveNextGrapheme moves to the next grapheme cluster boundary.
func (c *Cursor) MoveNextGrapheme(b Buffer) {
	c.index = grapheme.NextBoundary(b, c.index)
}

// MovePrevWord moves to the previous word boundary.
func (c *Cursor) MovePrevWord(b Buffer) {
	c.index = grapheme.PrevWordBoundary(b, c.index)
}

// MoveNextWord moves to the next word boundary.
func (c *Cursor) MoveNextWord(b Buffer) {
	c.index = grapheme.NextWordBoundary(b, c.index)
}

// MovePrevLine moves up one line, reclamping the column to the target
// line's length. On line 0 it is a no-op.
func (c *Cursor) MovePrevLine(b Buffer) {
	c.moveVertically(b, -1)
}

// MoveNextLine moves down one line, reclamping the column. On the last
// line the line stays clamped and only the column is re-resolved.
func (c *Cursor) MoveNextLine(b Buffer) {
	c.moveVertically(b, 1)
}

// moveVertically recomputes the index from the literal current column;
// no sticky column is carried across moves.
func (c *Cursor) moveVertically(b Buffer, delta int) {
	line, col := CoordsAtPos(b, c.index)
	target := line + delta
	if target < 0 {
		target = 0
	}
	if last := b.LineCount() - 1; target > last {
		target = last
	}
	if lineLen := b.LineLen(target); col > lineLen {
		col = lineLen
	}
	c.index = PosAtCoords(b, target, col)
}

// MoveToStartOfLine moves to the first character of the current line.
func (c *Cursor) MoveToStartOfLine(b Buffer) {
	c.index = b.LineStart(b.LineOf(c.index))
}

// MoveToEndOfLine moves past the last character of the current line,
// excluding the line terminator.
func (c *Cursor) MoveToEndOfLine(b Buffer) {
	line := b.LineOf(c.index)
	c.index = b.LineStart(line) + b.LineLen(line)
}

// CoordsAtPos converts a character index to (line, col), with col counted
// in characters from the line start.
func CoordsAtPos(b Buffer, idx int) (int, int) {
	line := b.LineOf(idx)
	return line, idx - b.LineStart(line)
}

// PosAtCoords converts (line, col) back to a character index, resolved to
// the nearest grapheme boundary at or after lineStart + col.
func PosAtCoords(b Buffer, line, col int) int {
	idx := b.LineStart(line) + col
	if idx > b.Len() {
		return b.Len()
	}
	if !grapheme.IsBoundary(b, idx) {
		idx = grapheme.NextBoundary(b, idx)
	}
	return idx
}
