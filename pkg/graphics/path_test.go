package graphics

import (
	"math"
	"testing"
)

func opsOf(p *Path) []PathOp {
	ops := make([]PathOp, len(p.Commands))
	for i, cmd := range p.Commands {
		ops[i] = cmd.Op
	}
	return ops
}

func equalOps(a, b []PathOp) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPathAddRect(t *testing.T) {
	p := NewPath()
	p.AddRect(RectFromLTWH(1, 2, 3, 4))
	want := []PathOp{PathOpMoveTo, PathOpLineTo, PathOpLineTo, PathOpLineTo, PathOpClose}
	if got := opsOf(p); !equalOps(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if b := p.Bounds(); b != (Rect{1, 2, 4, 6}) {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestPathLineToStartsSubpath(t *testing.T) {
	p := NewPath()
	p.LineTo(3, 4)
	if got := opsOf(p); !equalOps(got, []PathOp{PathOpMoveTo}) {
		t.Errorf("ops = %v, want a single move_to", got)
	}
	p.Close()
	p.LineTo(5, 6)
	if got := p.Commands[len(p.Commands)-1].Op; got != PathOpMoveTo {
		t.Errorf("LineTo after Close = %v, want move_to", got)
	}
}

func TestPathArcTo(t *testing.T) {
	tests := []struct {
		name   string
		sweep  float64
		rx     float64
		cubics int
	}{
		{"quarter", math.Pi / 2, 10, 1},
		{"half", math.Pi, 10, 2},
		{"full", 2 * math.Pi, 10, 4},
		{"small", 0.3, 10, 1},
		{"zero radius", math.Pi / 2, 0, 0},
		{"zero sweep", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.ArcTo(Offset{X: 50, Y: 50}, tt.rx, tt.rx, 0, tt.sweep)
			cubics := 0
			for _, cmd := range p.Commands {
				if cmd.Op == PathOpCubicTo {
					cubics++
				}
			}
			if cubics != tt.cubics {
				t.Errorf("cubic segments = %d, want %d", cubics, tt.cubics)
			}
			first := p.Commands[0].Args
			if math.Abs(first[0]-(50+tt.rx)) > 1e-9 || math.Abs(first[1]-50) > 1e-9 {
				t.Errorf("arc starts at (%v, %v)", first[0], first[1])
			}
		})
	}
}

func TestPathArcEndPoint(t *testing.T) {
	p := NewPath()
	p.ArcTo(Offset{X: 0, Y: 0}, 8, 8, math.Pi, math.Pi/2)
	last := p.Commands[len(p.Commands)-1].Args
	if math.Abs(last[4]) > 1e-9 || math.Abs(last[5]+8) > 1e-9 {
		t.Errorf("arc from 180 deg sweeping 90 deg ends at (%v, %v), want (0, -8)", last[4], last[5])
	}
}

func TestPathAddRRectStaysInBounds(t *testing.T) {
	rect := RectFromLTWH(10, 10, 60, 30)
	for _, radius := range []float64{0, 4, 15, 100} {
		p := NewPath()
		p.AddRRect(RRectFromRectAndRadius(rect, CircularRadius(radius)))
		b := p.Bounds()
		if b.Left < rect.Left || b.Top < rect.Top || b.Right > rect.Right || b.Bottom > rect.Bottom {
			t.Errorf("radius %v: bounds %+v leave %+v", radius, b, rect)
		}
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.AddRect(RectFromLTWH(0, 0, 1, 1))
	p.Clear()
	if !p.IsEmpty() {
		t.Error("Clear should empty the path")
	}
	if (p.Bounds() != Rect{}) {
		t.Errorf("empty path bounds = %+v", p.Bounds())
	}
}

func TestPathOpString(t *testing.T) {
	if PathOpCubicTo.String() != "cubic_to" || PathOp(9).String() != "PathOp(9)" {
		t.Errorf("unexpected names %q, %q", PathOpCubicTo, PathOp(9))
	}
}
