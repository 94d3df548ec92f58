// Package colour holds the named colour table and the colour-space maths used
// when emitting it.
package colour

import "math"

// sRGB transfer function constants.
const (
	srgbThreshold = 0.04045
	srgbSlope     = 12.92
	srgbOffset    = 0.055
	srgbScale     = 1.055
	srgbExponent  = 2.4
)

// GammaToLinear converts a single sRGB-encoded channel in [0,1] to linear
// space using the piecewise inverse of the sRGB transfer function.
func GammaToLinear(x float64) float64 {
	if x <= srgbThreshold {
		return x / srgbSlope
	}
	return math.Pow((x+srgbOffset)/srgbScale, srgbExponent)
}
