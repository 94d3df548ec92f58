package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func floatNear(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGammaToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid grey", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GammaToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("GammaToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGammaToLinearEndpointsExact(t *testing.T) {
	if got := GammaToLinear(0); got != 0 {
		t.Errorf("GammaToLinear(0) = %v, want exactly 0", got)
	}
	if got := GammaToLinear(1); got != 1 {
		t.Errorf("GammaToLinear(1) = %v, want exactly 1", got)
	}
}

func TestGammaToLinearMonotonic(t *testing.T) {
	const steps = 10000
	prev := GammaToLinear(0)
	for i := 1; i <= steps; i++ {
		x := float64(i) / steps
		got := GammaToLinear(x)
		if got < prev {
			t.Fatalf("GammaToLinear not monotonic at %v: %v < %v", x, got, prev)
		}
		prev = got
	}
}

func TestGammaToLinearContinuousAtThreshold(t *testing.T) {
	below := GammaToLinear(0.04045)
	above := GammaToLinear(math.Nextafter(0.04045, 1))
	if !floatNear(below, above, 1e-7) {
		t.Errorf("discontinuity at threshold: %v vs %v", below, above)
	}
	if above < below {
		t.Errorf("power branch %v is below linear branch %v", above, below)
	}
}

func TestGammaToLinearMatchesColorful(t *testing.T) {
	for i := 0; i <= 255; i++ {
		x := float64(i) / 255
		want, _, _ := colorful.Color{R: x, G: x, B: x}.LinearRgb()
		if got := GammaToLinear(x); !floatNear(got, want, 1e-12) {
			t.Errorf("GammaToLinear(%v) = %v, go-colorful says %v", x, got, want)
		}
	}
}
