package gravel

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Swatch is a named background color.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// Palette is the fixed set of backgrounds a sketch can use.
var Palette = [10]Swatch{
	{"plum", colornames.Plum},
	{"teal", colornames.Teal},
	{"violet", colornames.Violet},
	{"coral", colornames.Coral},
	{"gold", colornames.Gold},
	{"forestgreen", colornames.Forestgreen},
	{"slateblue", colornames.Slateblue},
	{"salmon", colornames.Salmon},
	{"turquoise", colornames.Turquoise},
	{"aquamarine", colornames.Aquamarine},
}

// StrokeColor is the outline color of every stone.
var StrokeColor = colornames.Black

// SwatchIndex returns the palette index for name, or -1.
func SwatchIndex(name string) int {
	for i, s := range Palette {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// InPalette reports whether c is one of the palette colors.
func InPalette(c color.RGBA) bool {
	for _, s := range Palette {
		if s.Color == c {
			return true
		}
	}
	return false
}
