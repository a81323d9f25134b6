package renderer

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color value, or the terminal's default color.
type Color struct {
	R, G, B uint8
	// Default marks the terminal's own foreground/background.
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// RGB builds a color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses a "#RRGGBB" color string.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("renderer: bad color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustHex is Hex for compile-time constants; it panics on bad input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsDefault reports whether this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Lighten blends the color toward white by amount in [0,1].
func (c Color) Lighten(amount float64) Color {
	return fromColorful(c.colorful().BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount))
}

// Darken blends the color toward black by amount in [0,1].
func (c Color) Darken(amount float64) Color {
	return fromColorful(c.colorful().BlendLab(colorful.Color{}, amount))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
