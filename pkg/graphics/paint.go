package graphics

// Paint describes how to fill a shape on the canvas.
//
// A zero-value Paint fills with transparent black, which draws nothing.
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color    Color
	Gradient *Gradient // If set, overrides Color for the fill
	Alpha    float64   // Overall opacity 0.0-1.0; negative defaults to 1.0
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color: ColorWhite,
		Alpha: 1.0,
	}
}

// FillPaint returns an opaque fill with the given color.
func FillPaint(c Color) Paint {
	p := DefaultPaint()
	p.Color = c
	return p
}

// GradientPaint returns a fill that shades with g.
func GradientPaint(g *Gradient) Paint {
	p := DefaultPaint()
	p.Color = ColorBlack
	p.Gradient = g
	return p
}

// EffectiveAlpha returns Alpha clamped to [0, 1]; invalid values yield 1.
func (p Paint) EffectiveAlpha() float64 {
	if !(p.Alpha >= 0 && p.Alpha <= 1) {
		return 1
	}
	return p.Alpha
}

// IsVisible reports whether drawing with p can change any pixel.
func (p Paint) IsVisible() bool {
	if p.EffectiveAlpha() == 0 {
		return false
	}
	if p.Gradient != nil {
		return p.Gradient.IsValid()
	}
	return p.Color.Alpha8() != 0
}
