package drawable

import (
	"math"

	"github.com/go-drift/cardview/pkg/graphics"
)

// ShadowRampStops is the number of stops in a shadow fade.
const ShadowRampStops = 8

// ShadowRamp returns n stops fading from start to end over [0, 1].
//
// Each stop's alpha comes from interpolating, in linear light, the
// luminance of the colour composited over white. RGB channels are
// lerped directly, so the ramp suits near-black shadow colours.
func ShadowRamp(start, end graphics.Color, n int) []graphics.GradientStop {
	if n < 2 {
		n = 2
	}
	a0, a1 := start.Alpha(), end.Alpha()
	lin0 := srgbToLinear(1 - a0)
	lin1 := srgbToLinear(1 - a1)

	stops := make([]graphics.GradientStop, n)
	for i := range stops {
		t := float64(i) / float64(n-1)
		a := 1 - linearToSRGB(lin0+(lin1-lin0)*t)
		col := graphics.LerpColor(start, end, t).WithAlpha(a)
		stops[i] = graphics.GradientStop{Position: t, Color: col}
	}
	// Exact endpoints regardless of rounding in the round trip.
	stops[0].Color = start
	stops[n-1].Color = end
	return stops
}

// remapStops squeezes stops from [0, 1] into [from, 1].
func remapStops(stops []graphics.GradientStop, from float64) []graphics.GradientStop {
	out := make([]graphics.GradientStop, len(stops))
	for i, s := range stops {
		out[i] = graphics.GradientStop{Position: from + s.Position*(1-from), Color: s.Color}
	}
	return out
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}
