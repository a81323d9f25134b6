package cursor

import (
	"testing"

	"github.com/lg2m/athena/internal/engine/grapheme"
	"github.com/lg2m/athena/internal/engine/rope"
)

func TestMoveGraphemes(t *testing.T) {
	b := rope.FromString("héy") // [h, e+combining acute, y]
	c := New()

	c.MoveNextGrapheme(b)
	if c.Index() != 1 {
		t.Fatalf("after first move: index = %d, want 1", c.Index())
	}
	c.MoveNextGrapheme(b)
	if c.Index() != 3 {
		t.Fatalf("cluster skip: index = %d, want 3", c.Index())
	}
	c.MovePrevGrapheme(b)
	if c.Index() != 1 {
		t.Fatalf("move back: index = %d, want 1", c.Index())
	}
}

func TestMoveGraphemeClamps(t *testing.T) {
	b := rope.FromString("ab")
	c := New()

	c.MovePrevGrapheme(b)
	if c.Index() != 0 {
		t.Errorf("backward at start: index = %d, want 0", c.Index())
	}

	c.SetIndex(2)
	c.MoveNextGrapheme(b)
	if c.Index() != 2 {
		t.Errorf("forward at end: index = %d, want 2", c.Index())
	}
}

func TestForwardBackwardRoundTrip(t *testing.T) {
	b := rope.FromString("héllo wörld")
	for start := 1; start < b.Len()-1; start++ {
		c := New()
		c.SetIndex(start)
		c.MoveNextGrapheme(b)
		c.MovePrevGrapheme(b)
		if c.Index() != start {
			t.Errorf("round trip from %d ended at %d", start, c.Index())
		}
	}
}

func TestMoveWords(t *testing.T) {
	b := rope.FromString("foo bar baz")
	c := New()

	c.MoveNextWord(b)
	if c.Index() != 3 {
		t.Fatalf("next word: index = %d, want 3", c.Index())
	}
	c.MoveNextWord(b)
	c.MoveNextWord(b)
	if c.Index() != 7 {
		t.Fatalf("after three next-word moves: index = %d, want 7", c.Index())
	}
	c.MovePrevWord(b)
	if c.Index() != 4 {
		t.Fatalf("prev word: index = %d, want 4", c.Index())
	}
}

func TestVerticalMovement(t *testing.T) {
	b := rope.FromString("alpha\nbe\ngamma")
	c := New()

	// Start on line 0 at column 4.
	c.SetIndex(4)

	// Down to the shorter line 1: column clamps to its length (2).
	c.MoveNextLine(b)
	if line, col := CoordsAtPos(b, c.Index()); line != 1 || col != 2 {
		t.Fatalf("down to short line: (%d,%d), want (1,2)", line, col)
	}

	// Down again: no sticky column, reclamps from the literal column 2.
	c.MoveNextLine(b)
	if line, col := CoordsAtPos(b, c.Index()); line != 2 || col != 2 {
		t.Fatalf("down to long line: (%d,%d), want (2,2)", line, col)
	}

	// Back up twice.
	c.MovePrevLine(b)
	c.MovePrevLine(b)
	if line, col := CoordsAtPos(b, c.Index()); line != 0 || col != 2 {
		t.Fatalf("back on line 0: (%d,%d), want (0,2)", line, col)
	}
}

func TestVerticalMovementAtExtremities(t *testing.T) {
	b := rope.FromString("one\ntwo\nthree\nfour\nfive")
	c := New()

	// Line 0, backward: no-op.
	c.SetIndex(2)
	c.MovePrevLine(b)
	if c.Index() != 2 {
		t.Errorf("up on line 0: index = %d, want 2", c.Index())
	}

	// Last line (4), forward: line stays clamped, column preserved.
	c.SetIndex(b.LineStart(4) + 2)
	c.MoveNextLine(b)
	if line, col := CoordsAtPos(b, c.Index()); line != 4 || col != 2 {
		t.Errorf("down on last line: (%d,%d), want (4,2)", line, col)
	}
}

func TestMoveToLineEdges(t *testing.T) {
	b := rope.FromString("foo\nbarbar\nz")
	c := New()
	c.SetIndex(6) // middle of "barbar"

	c.MoveToEndOfLine(b)
	if c.Index() != 10 {
		t.Errorf("end of line: index = %d, want 10", c.Index())
	}

	c.MoveToStartOfLine(b)
	if c.Index() != 4 {
		t.Errorf("start of line: index = %d, want 4", c.Index())
	}
}

func TestPosAtCoordsSnapsToBoundary(t *testing.T) {
	b := rope.FromString("éxy") // cluster [0,2), then x, y
	if got := PosAtCoords(b, 0, 1); got != 2 {
		t.Errorf("PosAtCoords mid-cluster = %d, want 2", got)
	}
	if got := PosAtCoords(b, 0, 2); got != 2 {
		t.Errorf("PosAtCoords on boundary = %d, want 2 (no overshoot)", got)
	}
	if got := PosAtCoords(b, 0, 99); got != b.Len() {
		t.Errorf("PosAtCoords past end = %d, want %d", got, b.Len())
	}
}

func TestSelectionBasics(t *testing.T) {
	s := NewSelection()
	if s.IsActive() {
		t.Error("new selection is active")
	}
	s.Set(2, 5)
	if !s.IsActive() {
		t.Error("selection with extent is inactive")
	}
	if lo, hi := s.Range(); lo != 2 || hi != 5 {
		t.Errorf("Range() = (%d,%d), want (2,5)", lo, hi)
	}
	s.Set(5, 2)
	if lo, hi := s.Range(); lo != 2 || hi != 5 {
		t.Errorf("reversed Range() = (%d,%d), want (2,5)", lo, hi)
	}
	s.Clear()
	if s.IsActive() {
		t.Error("cleared selection is active")
	}
}

func TestSelectScopeWord(t *testing.T) {
	b := rope.FromString("foo bar")
	c := New()
	s := NewSelection()

	s.SelectScope(c, ScopeWord, b)
	if s.Start != 0 || s.End != 3 {
		t.Errorf("word scope = (%d,%d), want (0,3)", s.Start, s.End)
	}
}

func TestSelectScopeInvariants(t *testing.T) {
	b := rope.FromString("héllo wörld\nnext")
	for _, scope := range []Scope{ScopeGrapheme, ScopeWord, ScopeLine} {
		for idx := 0; idx <= b.Len(); idx++ {
			c := New()
			c.SetIndex(idx)
			s := NewSelection()
			s.SelectScope(c, scope, b)
			if s.Start > s.End {
				t.Fatalf("scope %v at %d: start %d > end %d", scope, idx, s.Start, s.End)
			}
			if !grapheme.IsBoundary(b, s.Start) || !grapheme.IsBoundary(b, s.End) {
				t.Fatalf("scope %v at %d: endpoints (%d,%d) not on boundaries", scope, idx, s.Start, s.End)
			}
		}
	}
}

func TestSelectToEndOfLine(t *testing.T) {
	b := rope.FromString("foo\nbar")
	c := New()
	c.SetIndex(1)
	s := NewSelection()

	s.SelectToEndOfLine(c, b)
	if s.Start != 1 || s.End != 4 {
		t.Errorf("selection = (%d,%d), want (1,4) through the newline", s.Start, s.End)
	}

	// On the last line the end caps at the buffer length.
	c.SetIndex(5)
	s.SelectToEndOfLine(c, b)
	if s.Start != 5 || s.End != 7 {
		t.Errorf("last line selection = (%d,%d), want (5,7)", s.Start, s.End)
	}
}

func TestSelectToWords(t *testing.T) {
	b := rope.FromString("foo bar")
	c := New()
	c.SetIndex(4)
	s := NewSelection()

	s.SelectToPrevWord(c, b)
	if s.Start != 3 || s.End != 4 {
		t.Errorf("prev word selection = (%d,%d), want (3,4)", s.Start, s.End)
	}

	s.SelectToNextWord(c, b)
	if s.Start != 4 || s.End != 7 {
		t.Errorf("next word selection = (%d,%d), want (4,7)", s.Start, s.End)
	}
}

func TestEnsureGraphemeBoundaries(t *testing.T) {
	b := rope.FromString("xéy") // cluster [1,3)
	s := NewSelection()
	s.Set(2, 2)
	s.EnsureGraphemeBoundaries(b)
	if s.Start != 1 || s.End != 3 {
		t.Errorf("snapped selection = (%d,%d), want (1,3)", s.Start, s.End)
	}
}
