package colour

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is a named RGBA constant. R, G and B are stored in linear space;
// A is stored exactly as given.
type Colour struct {
	Name string  `json:"name"`
	R    float64 `json:"r"`
	G    float64 `json:"g"`
	B    float64 `json:"b"`
	A    float64 `json:"a"`
}

// New creates an opaque colour from sRGB channel values.
func New(name string, r, g, b float64) Colour {
	return NewAlpha(name, r, g, b, 1.0)
}

// NewAlpha creates a colour from sRGB channel values and an alpha.
// The channels are linearised here and nowhere else.
func NewAlpha(name string, r, g, b, a float64) Colour {
	return Colour{
		Name: name,
		R:    GammaToLinear(r),
		G:    GammaToLinear(g),
		B:    GammaToLinear(b),
		A:    a,
	}
}

// Ident returns the C identifier of the constant for this colour.
func (c Colour) Ident(prefix string) string {
	return prefix + c.Name
}

// Linear returns the colour as a go-colorful value (which is sRGB encoded
// internally, so the linear channels are re-encoded on the way in).
func (c Colour) Linear() colorful.Color {
	return colorful.LinearRgb(c.R, c.G, c.B)
}

// Hex returns the sRGB hex code of the colour, ignoring alpha.
func (c Colour) Hex() string {
	return c.Linear().Clamped().Hex()
}

// String returns a short human-readable description.
func (c Colour) String() string {
	return fmt.Sprintf("%s %s a=%g", c.Name, c.Hex(), c.A)
}

// List is an ordered sequence of colours. Order defines emission order in the
// generated files and scan order of the lookup.
type List []Colour

// Lookup finds a colour by name, ignoring case. The first match wins, which
// mirrors the generated C lookup function.
func (l List) Lookup(name string) (Colour, bool) {
	for _, c := range l {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Colour{}, false
}

// Names returns the colour names in list order.
func (l List) Names() []string {
	names := make([]string, 0, len(l))
	for _, c := range l {
		names = append(names, c.Name)
	}
	return names
}
