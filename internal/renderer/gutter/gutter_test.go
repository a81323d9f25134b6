package gutter

import (
	"testing"

	"github.com/lg2m/athena/internal/renderer"
	"github.com/lg2m/athena/internal/renderer/backend"
)

func numbers(relative bool) *LineNumbers {
	return &LineNumbers{
		Relative:     relative,
		MinWidth:     3,
		Style:        renderer.DefaultStyle(),
		CurrentStyle: renderer.DefaultStyle(),
	}
}

func TestLineNumbersWidthGrowsWithLineCount(t *testing.T) {
	n := numbers(false)

	tests := []struct {
		lines, want int
	}{
		{1, 3},    // MinWidth
		{999, 3},  // still within MinWidth
		{1000, 4}, // four digits
	}
	for _, tt := range tests {
		if got := n.Width(tt.lines); got != tt.want {
			t.Errorf("Width(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestAbsoluteLabels(t *testing.T) {
	n := numbers(false)

	if got := n.Label(0, 0, 10); got != "  1" {
		t.Errorf("Label(0) = %q, want %q", got, "  1")
	}
	if got := n.Label(9, 0, 10); got != " 10" {
		t.Errorf("Label(9) = %q, want %q", got, " 10")
	}
}

func TestRelativeLabels(t *testing.T) {
	n := numbers(true)

	// Current line keeps its absolute (one-based) number.
	if got := n.Label(4, 4, 10); got != "  5" {
		t.Errorf("current line label = %q, want %q", got, "  5")
	}
	if got := n.Label(2, 4, 10); got != "  2" {
		t.Errorf("two above = %q, want %q", got, "  2")
	}
	if got := n.Label(7, 4, 10); got != "  3" {
		t.Errorf("three below = %q, want %q", got, "  3")
	}
}

func TestLabelPastBufferEndIsBlank(t *testing.T) {
	n := numbers(false)
	if got := n.Label(10, 0, 5); got != "   " {
		t.Errorf("label past end = %q, want blanks", got)
	}
}

func TestGutterSumsElementWidths(t *testing.T) {
	g := New(numbers(false), Spacer{Style: renderer.DefaultStyle()})
	if got := g.Width(10); got != 4 {
		t.Errorf("Width = %d, want 4", got)
	}

	g = New(Spacer{}, numbers(false), Spacer{})
	if got := g.Width(10); got != 5 {
		t.Errorf("Width = %d, want 5", got)
	}
}

func TestGutterRendersElementsInOrder(t *testing.T) {
	out := backend.NewMemory(10, 2)
	g := New(numbers(false), Spacer{Style: renderer.DefaultStyle()})

	g.RenderLine(out, 0, 0, 0, 0, 10)

	if got := out.Row(0); got != "  1" {
		t.Errorf("row = %q, want %q", got, "  1")
	}
	if got := out.Cell(3, 0); got.Content != " " {
		t.Errorf("spacer cell = %+v, want blank", got)
	}
}
