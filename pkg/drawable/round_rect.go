// Package drawable contains the backgrounds a card draws behind its
// content: a plain rounded rectangle and a rounded rectangle that paints
// its own drop shadow with gradients.
package drawable

import (
	"math"

	"github.com/go-drift/cardview/pkg/graphics"
)

// RoundRect is a filled rounded rectangle with per-corner rounding.
// The zero value is not usable; create one with NewRoundRect.
type RoundRect struct {
	bounds  graphics.Rect
	insets  graphics.EdgeInsets
	radius  float64
	color   graphics.Color
	corners Corner
}

// NewRoundRect creates a rounded rectangle with every corner rounded.
func NewRoundRect(color graphics.Color, radius float64) *RoundRect {
	return &RoundRect{
		radius:  math.Max(radius, 0),
		color:   color,
		corners: CornersAll,
	}
}

// SetBounds sets the rectangle the drawable occupies.
func (r *RoundRect) SetBounds(bounds graphics.Rect) {
	r.bounds = bounds
}

// Bounds returns the drawable's bounds.
func (r *RoundRect) Bounds() graphics.Rect {
	return r.bounds
}

// SetInsets shrinks the filled shape inside the bounds.
func (r *RoundRect) SetInsets(insets graphics.EdgeInsets) {
	r.insets = insets
}

// Insets returns the insets set with SetInsets.
func (r *RoundRect) Insets() graphics.EdgeInsets {
	return r.insets
}

// ShapeRect returns the bounds deflated by the insets.
func (r *RoundRect) ShapeRect() graphics.Rect {
	return r.bounds.Deflate(r.insets)
}

// SetCornerRadius sets the requested radius. Negative values become 0.
func (r *RoundRect) SetCornerRadius(radius float64) {
	r.radius = math.Max(radius, 0)
}

// Radius returns the effective radius: the requested radius clamped to
// half the shorter side of the shape rect. While the shape rect is empty
// the requested radius is returned.
func (r *RoundRect) Radius() float64 {
	return effectiveRadius(r.radius, r.ShapeRect())
}

// SetColor sets the fill colour.
func (r *RoundRect) SetColor(color graphics.Color) {
	r.color = color
}

// Color returns the fill colour.
func (r *RoundRect) Color() graphics.Color {
	return r.color
}

// SetCorners selects which corners are rounded. The others are square.
func (r *RoundRect) SetCorners(corners Corner) {
	r.corners = corners & CornersAll
}

// Corners returns the rounded corners.
func (r *RoundRect) Corners() Corner {
	return r.corners
}

// RRect returns the filled shape.
func (r *RoundRect) RRect() graphics.RRect {
	return shapeRRect(r.ShapeRect(), r.Radius(), r.corners)
}

// Path returns the outline of the filled shape, clockwise from the end
// of the top-left arc.
func (r *RoundRect) Path() *graphics.Path {
	path := graphics.NewPath()
	if r.ShapeRect().IsEmpty() {
		return path
	}
	path.AddRRect(r.RRect())
	return path
}

// Draw fills the shape.
func (r *RoundRect) Draw(canvas graphics.Canvas) {
	if r.ShapeRect().IsEmpty() {
		return
	}
	canvas.DrawRRect(r.RRect(), graphics.FillPaint(r.color))
}

func effectiveRadius(requested float64, shape graphics.Rect) float64 {
	if shape.IsEmpty() {
		return requested
	}
	return math.Min(requested, shape.ShortestSide()/2)
}

func shapeRRect(shape graphics.Rect, radius float64, corners Corner) graphics.RRect {
	at := func(c Corner) graphics.Radius {
		if corners.Has(c) {
			return graphics.CircularRadius(radius)
		}
		return graphics.Radius{}
	}
	return graphics.RRect{
		Rect:        shape,
		TopLeft:     at(CornerTopLeft),
		TopRight:    at(CornerTopRight),
		BottomRight: at(CornerBottomRight),
		BottomLeft:  at(CornerBottomLeft),
	}
}

// cornerRadii returns the radius actually applied at each corner.
func cornerRadii(radius float64, corners Corner) (tl, tr, br, bl float64) {
	at := func(c Corner) float64 {
		if corners.Has(c) {
			return radius
		}
		return 0
	}
	return at(CornerTopLeft), at(CornerTopRight), at(CornerBottomRight), at(CornerBottomLeft)
}
