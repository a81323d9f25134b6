package renderer

// Theme groups the colors the built-in views draw with.
type Theme struct {
	Text       Style
	Selection  Style
	LineNumber Style
	StatusLine Style
}

// DefaultTheme returns a dark theme. Derived styles (selection, status
// line) are blends of the base colors so the palette stays coherent.
func DefaultTheme() Theme {
	fg := MustHex("#d8dee9")
	bg := MustHex("#2e3440")

	return Theme{
		Text: Style{Foreground: fg, Background: bg},
		Selection: Style{
			Foreground: fg,
			Background: bg.Lighten(0.25),
		},
		LineNumber: Style{
			Foreground: fg.Darken(0.45),
			Background: bg,
		},
		StatusLine: Style{
			Foreground: bg.Darken(0.2),
			Background: fg.Darken(0.1),
			Attributes: AttrBold,
		},
	}
}

// MonochromeTheme uses only the terminal's default colors. Useful when
// true color output is unavailable.
func MonochromeTheme() Theme {
	return Theme{
		Text:       DefaultStyle(),
		Selection:  DefaultStyle().WithAttributes(AttrReverse),
		LineNumber: DefaultStyle(),
		StatusLine: DefaultStyle().WithAttributes(AttrReverse),
	}
}
