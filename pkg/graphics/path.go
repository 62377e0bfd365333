package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for filling arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, ArcTo and Close.
// Paths are filled with the nonzero winding rule.
type Path struct {
	Commands []PathCommand

	// open is true while a subpath has been started and not closed.
	open bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
	p.open = true
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// ArcTo appends an elliptical arc around center. Angles are in radians,
// measured clockwise from the positive x axis (y points down). The arc's
// start point is joined to the current point with a straight line, or
// starts a new subpath when none is open. Arcs are approximated with one
// cubic segment per quarter turn.
func (p *Path) ArcTo(center Offset, rx, ry, startAngle, sweepAngle float64) {
	rx, ry = math.Max(rx, 0), math.Max(ry, 0)
	p.LineTo(center.X+rx*math.Cos(startAngle), center.Y+ry*math.Sin(startAngle))
	if rx == 0 || ry == 0 || sweepAngle == 0 {
		return
	}

	segments := int(math.Ceil(math.Abs(sweepAngle)/(math.Pi/2) - epsilon))
	if segments < 1 {
		segments = 1
	}
	step := sweepAngle / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a0 := startAngle
	for i := 0; i < segments; i++ {
		a1 := a0 + step
		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		p.CubicTo(
			center.X+rx*(cos0-k*sin0), center.Y+ry*(sin0+k*cos0),
			center.X+rx*(cos1+k*sin1), center.Y+ry*(sin1-k*cos1),
			center.X+rx*cos1, center.Y+ry*sin1,
		)
		a0 = a1
	}
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
	p.open = false
}

// AddRect appends a closed clockwise rectangle.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddRRect appends a closed clockwise rounded rectangle. Square corners
// (zero radius) become right angles. Radii are clamped first so arcs
// never overlap.
func (p *Path) AddRRect(rr RRect) {
	rr = rr.Clamped()
	r := rr.Rect
	tl, tr, br, bl := rr.TopLeft, rr.TopRight, rr.BottomRight, rr.BottomLeft

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if !tr.IsZero() {
		p.ArcTo(Offset{X: r.Right - tr.X, Y: r.Top + tr.Y}, tr.X, tr.Y, -math.Pi/2, math.Pi/2)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if !br.IsZero() {
		p.ArcTo(Offset{X: r.Right - br.X, Y: r.Bottom - br.Y}, br.X, br.Y, 0, math.Pi/2)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if !bl.IsZero() {
		p.ArcTo(Offset{X: r.Left + bl.X, Y: r.Bottom - bl.Y}, bl.X, bl.Y, math.Pi/2, math.Pi/2)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if !tl.IsZero() {
		p.ArcTo(Offset{X: r.Left + tl.X, Y: r.Top + tl.Y}, tl.X, tl.Y, math.Pi, math.Pi/2)
	}
	p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
	p.open = false
}

// Bounds returns the bounding box of every point and control point in the
// path. Bezier curves lie inside their control hull, so the result always
// contains the filled area.
func (p *Path) Bounds() Rect {
	first := true
	var b Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				b = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
		}
	}
	return b
}
