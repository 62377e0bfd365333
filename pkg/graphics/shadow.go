package graphics

import "fmt"

// BlurStyle controls how the blur mask is generated.
type BlurStyle int

const (
	// BlurStyleNormal blurs inside and outside the shape.
	BlurStyleNormal BlurStyle = iota
	// BlurStyleOuter draws nothing inside, blurs outside only.
	BlurStyleOuter
)

// String returns a human-readable representation of the blur style.
func (s BlurStyle) String() string {
	switch s {
	case BlurStyleNormal:
		return "normal"
	case BlurStyleOuter:
		return "outer"
	default:
		return fmt.Sprintf("BlurStyle(%d)", int(s))
	}
}

// BoxShadow defines a shadow to draw around a shape.
//
// Spread grows the shadow shape before blurring. BlurRadius controls
// softness; the Gaussian sigma is BlurRadius * 0.5.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
	Spread     float64
	BlurStyle  BlurStyle
}

// Sigma returns the blur sigma.
// Returns 0 if BlurRadius is zero or negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// Extent returns how far the shadow can reach past the shape on any side,
// ignoring Offset.
func (s BoxShadow) Extent() float64 {
	return s.Spread + 3*s.Sigma()
}

// elevationShadowColor is the key light color used for host elevation.
const elevationShadowColor = Color(0x3D000000)

// ElevationShadow returns the shadow a host with native elevation support
// casts for a surface raised by elevation pixels. The light sits above the
// surface, so the shadow drops by half the elevation.
func ElevationShadow(elevation float64) BoxShadow {
	if elevation <= 0 {
		return BoxShadow{}
	}
	return BoxShadow{
		Color:      elevationShadowColor,
		Offset:     Offset{X: 0, Y: elevation * 0.5},
		BlurRadius: elevation * 2,
		BlurStyle:  BlurStyleNormal,
	}
}
