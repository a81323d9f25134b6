package cursor

import (
	"github.com/lg2m/athena/internal/engine/grapheme"
)

// Scope is the unit a scoped selection covers.
type Scope int

const (
	// ScopeGrapheme selects one grapheme cluster.
	ScopeGrapheme Scope = iota

	// ScopeWord selects up to the next word boundary.
	ScopeWord

	// ScopeLine selects through the end of the current line.
	ScopeLine
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeGrapheme:
		return "grapheme"
	case ScopeWord:
		return "word"
	case ScopeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Selection is an anchored range of text. Start == End means inactive.
// The struct permits Start > End transiently; callers normalize through
// Range or keep Start <= End themselves.
type Selection struct {
	Start int
	End   int
}

// NewSelection returns an inactive selection.
func NewSelection() *Selection {
	return &Selection{}
}

// IsActive reports whether the selection covers any text.
func (s *Selection) IsActive() bool {
	return s.Start != s.End
}

// Clear resets the selection to inactive.
func (s *Selection) Clear() {
	s.Start = 0
	s.End = 0
}

// Set sets both endpoints.
func (s *Selection) Set(start, end int) {
	s.Start = start
	s.End = end
}

// Range returns the endpoints ordered low to high.
func (s *Selection) Range() (int, int) {
	if s.Start <= s.End {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// SelectToPrevWord anchors at the cursor and extends back to the previous
// word boundary.
func (s *Selection) SelectToPrevWord(c *Cursor, b Buffer) {
	s.Set(grapheme.PrevWordBoundary(b, c.Index()), c.Index())
}

// SelectToNextWord anchors at the cursor and extends to the next word
// boundary.
func (s *Selection) SelectToNextWord(c *Cursor, b Buffer) {
	s.Set(c.Index(), grapheme.NextWordBoundary(b, c.Index()))
}

// SelectToEndOfLine anchors at the cursor and extends to the next line's
// start, capped at the buffer length.
func (s *Selection) SelectToEndOfLine(c *Cursor, b Buffer) {
	line := b.LineOf(c.Index())
	end := b.Len()
	if line+1 < b.LineCount() {
		end = b.LineStart(line + 1)
	}
	s.Set(c.Index(), end)
}

// SelectScope selects exactly one unit of the given scope starting at the
// cursor, then snaps both endpoints onto grapheme boundaries.
func (s *Selection) SelectScope(c *Cursor, scope Scope, b Buffer) {
	switch scope {
	case ScopeGrapheme:
		s.Set(c.Index(), grapheme.NextBoundary(b, c.Index()))
	case ScopeWord:
		s.Set(c.Index(), grapheme.NextWordBoundary(b, c.Index()))
	case ScopeLine:
		s.SelectToEndOfLine(c, b)
	}
	s.EnsureGraphemeBoundaries(b)
}

// EnsureGraphemeBoundaries snaps Start back and End forward to the nearest
// cluster boundaries. Selections must never split a cluster.
func (s *Selection) EnsureGraphemeBoundaries(b Buffer) {
	if !grapheme.IsBoundary(b, s.Start) {
		s.Start = grapheme.PrevBoundary(b, s.Start)
	}
	if !grapheme.IsBoundary(b, s.End) {
		s.End = grapheme.NextBoundary(b, s.End)
	}
}
