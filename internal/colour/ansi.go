package colour

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const defaultSwatchWidth = 6

// IsTerminal reports whether f is attached to a terminal, which is when
// swatches are drawn by default.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Swatch returns a solid block of the colour, width cells wide, drawn with a
// 24-bit ANSI background. Alpha is ignored.
func Swatch(c Colour, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	r, g, b := c.Linear().Clamped().RGB255()
	bg := color.BgRGB(int(r), int(g), int(b))
	// The caller has already decided colour output is wanted.
	bg.EnableColor()

	return bg.Sprint(strings.Repeat(" ", width))
}
