package drawable

import "strings"

// Corner is a set of rectangle corners.
type Corner uint8

const (
	CornerTopLeft Corner = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	// CornersNone is the empty set.
	CornersNone Corner = 0
	// CornersAll contains every corner.
	CornersAll = CornerTopLeft | CornerTopRight | CornerBottomLeft | CornerBottomRight
)

// Has reports whether every corner in x is in c.
func (c Corner) Has(x Corner) bool {
	return c&x == x
}

// With returns c with x added (on) or removed (off).
func (c Corner) With(x Corner, on bool) Corner {
	if on {
		return c | x
	}
	return c &^ x
}

// CornersOf builds a set from four flags.
func CornersOf(topLeft, topRight, bottomLeft, bottomRight bool) Corner {
	return CornersNone.
		With(CornerTopLeft, topLeft).
		With(CornerTopRight, topRight).
		With(CornerBottomLeft, bottomLeft).
		With(CornerBottomRight, bottomRight)
}

func (c Corner) String() string {
	if c == CornersNone {
		return "none"
	}
	var parts []string
	for _, n := range []struct {
		c    Corner
		name string
	}{
		{CornerTopLeft, "top_left"},
		{CornerTopRight, "top_right"},
		{CornerBottomLeft, "bottom_left"},
		{CornerBottomRight, "bottom_right"},
	} {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Edge is a set of rectangle edges.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	// EdgesNone is the empty set.
	EdgesNone Edge = 0
	// EdgesAll contains every edge.
	EdgesAll = EdgeLeft | EdgeTop | EdgeRight | EdgeBottom
)

// Has reports whether every edge in x is in e.
func (e Edge) Has(x Edge) bool {
	return e&x == x
}

// With returns e with x added (on) or removed (off).
func (e Edge) With(x Edge, on bool) Edge {
	if on {
		return e | x
	}
	return e &^ x
}

// EdgesOf builds a set from four flags.
func EdgesOf(left, top, right, bottom bool) Edge {
	return EdgesNone.
		With(EdgeLeft, left).
		With(EdgeTop, top).
		With(EdgeRight, right).
		With(EdgeBottom, bottom)
}

func (e Edge) String() string {
	if e == EdgesNone {
		return "none"
	}
	var parts []string
	for _, n := range []struct {
		e    Edge
		name string
	}{
		{EdgeLeft, "left"},
		{EdgeTop, "top"},
		{EdgeRight, "right"},
		{EdgeBottom, "bottom"},
	} {
		if e.Has(n.e) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
