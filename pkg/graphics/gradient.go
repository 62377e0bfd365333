package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// RadialGradient defines a gradient from a center point.
type RadialGradient struct {
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// Gradient describes a linear or radial gradient. Positions outside the
// gradient's span clamp to the first or last stop.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
	Radial RadialGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeRadial,
		Radial: RadialGradient{
			Center: center,
			Radius: radius,
			Stops:  cloneGradientStops(stops),
		},
	}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return g.Type == GradientTypeLinear || g.Type == GradientTypeRadial
}

// Translate returns a copy of the gradient moved by (dx, dy).
func (g *Gradient) Translate(dx, dy float64) *Gradient {
	if g == nil {
		return nil
	}
	out := *g
	switch g.Type {
	case GradientTypeLinear:
		out.Linear.Start = Offset{X: g.Linear.Start.X + dx, Y: g.Linear.Start.Y + dy}
		out.Linear.End = Offset{X: g.Linear.End.X + dx, Y: g.Linear.End.Y + dy}
	case GradientTypeRadial:
		out.Radial.Center = Offset{X: g.Radial.Center.X + dx, Y: g.Radial.Center.Y + dy}
	}
	return &out
}

// T returns the gradient parameter at point p, clamped to [0, 1].
func (g *Gradient) T(p Offset) float64 {
	switch g.Type {
	case GradientTypeLinear:
		s, e := g.Linear.Start, g.Linear.End
		dx, dy := e.X-s.X, e.Y-s.Y
		lenSq := dx*dx + dy*dy
		if lenSq <= 0 {
			return 0
		}
		return clamp01(((p.X-s.X)*dx + (p.Y-s.Y)*dy) / lenSq)
	case GradientTypeRadial:
		c := g.Radial.Center
		if g.Radial.Radius <= 0 {
			return 0
		}
		return clamp01(math.Hypot(p.X-c.X, p.Y-c.Y) / g.Radial.Radius)
	default:
		return 0
	}
}

// ColorAt returns the interpolated color at point p.
func (g *Gradient) ColorAt(p Offset) Color {
	return StopsColorAt(g.Stops(), g.T(p))
}

// StopsColorAt interpolates sorted stops at parameter t.
func StopsColorAt(stops []GradientStop, t float64) Color {
	if len(stops) == 0 {
		return ColorTransparent
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t <= next.Position {
			span := next.Position - prev.Position
			if span <= 0 {
				return next.Color
			}
			return LerpColor(prev.Color, next.Color, (t-prev.Position)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
