package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Nearest returns the SVG 1.1 colour keyword closest to c, measured as
// Euclidean distance in CIE L*a*b*. Alpha is not considered.
func Nearest(c Colour) (name string, distance float64) {
	target := c.Linear()
	distance = math.Inf(1)

	// colornames.Names is sorted, so ties resolve to the same keyword every run.
	for _, n := range colornames.Names {
		ref, ok := colorful.MakeColor(colornames.Map[n])
		if !ok {
			continue
		}
		if d := target.DistanceLab(ref); d < distance {
			name, distance = n, d
		}
	}

	return name, distance
}
