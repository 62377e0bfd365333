package drawable

import (
	"log"
	"math"

	"github.com/go-drift/cardview/pkg/graphics"
)

const (
	// ShadowMultiplier scales elevation into shadow extent.
	ShadowMultiplier = 1.5
	// InsetShadow is the extent added to any non-zero shadow, in pixels.
	InsetShadow = 1.0
)

// Default shadow colours: the fade starts at ShadowStartColor next to the
// shape and ends at ShadowEndColor at the outer edge.
const (
	ShadowStartColor graphics.Color = 0x37000000
	ShadowEndColor   graphics.Color = 0x03000000
)

var cos45 = math.Cos(math.Pi / 4)

// ShadowSizeFor returns the shadow extent for an elevation.
func ShadowSizeFor(elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}
	return elevation*ShadowMultiplier + InsetShadow
}

// CornerOverlapInset returns the smallest inset at which a square child
// corner stays inside an arc of the given radius.
func CornerOverlapInset(radius float64) float64 {
	return (1 - cos45) * math.Max(radius, 0)
}

// ShadowOrder selects which shadow layers are painted first.
type ShadowOrder int

const (
	// ShadowOrderCornersFirst paints corner shadows, then edge shadows.
	ShadowOrderCornersFirst ShadowOrder = iota
	// ShadowOrderEdgesFirst paints edge shadows, then corner shadows.
	ShadowOrderEdgesFirst
)

func (o ShadowOrder) String() string {
	switch o {
	case ShadowOrderCornersFirst:
		return "corners_first"
	case ShadowOrderEdgesFirst:
		return "edges_first"
	default:
		return "unknown"
	}
}

// RoundRectWithShadow is a rounded rectangle that paints its own drop
// shadow with gradients, for hosts without a native shadow primitive.
//
// The shadow surrounds the shape evenly: each corner gets a quarter
// annulus with a radial fade and each edge a strip with a linear fade
// perpendicular to it. The fill is painted last with the process-wide
// RoundRectHelper. Gradients are cached and rebuilt only when the radius,
// elevation or shadow colours change.
type RoundRectWithShadow struct {
	bounds  graphics.Rect
	color   graphics.Color
	radius  float64
	corners Corner

	elevation    float64
	maxElevation float64
	edgeShadows  Edge
	cornerShadow Corner
	startColor   graphics.Color
	endColor     graphics.Color
	order        ShadowOrder

	addPaddingForCorners bool

	layers *shadowLayers
	// rebuilds counts gradient rebuilds; tests read it to check caching.
	rebuilds int

	shadow    *graphics.DisplayList
	shadowKey shadowKey

	clipWarned bool
}

// shadowKey is everything the recorded shadow layers depend on.
type shadowKey struct {
	layers       *shadowLayers
	shape        graphics.Rect
	corners      Corner
	cornerShadow Corner
	edgeShadows  Edge
	order        ShadowOrder
}

// NewRoundRectWithShadow creates a drawable with every corner rounded
// and every edge and corner shadow shown. Corner padding starts enabled.
func NewRoundRectWithShadow(color graphics.Color, radius, elevation, maxElevation float64) *RoundRectWithShadow {
	d := &RoundRectWithShadow{
		color:                color,
		radius:               math.Max(radius, 0),
		corners:              CornersAll,
		edgeShadows:          EdgesAll,
		cornerShadow:         CornersAll,
		startColor:           ShadowStartColor,
		endColor:             ShadowEndColor,
		addPaddingForCorners: true,
	}
	d.SetShadowSize(elevation, maxElevation)
	return d
}

// SetBounds sets the rectangle the drawable, shadow included, occupies.
func (d *RoundRectWithShadow) SetBounds(bounds graphics.Rect) {
	d.bounds = bounds
}

// Bounds returns the drawable's bounds.
func (d *RoundRectWithShadow) Bounds() graphics.Rect {
	return d.bounds
}

// SetRadius sets the requested corner radius. Negative values become 0.
func (d *RoundRectWithShadow) SetRadius(radius float64) {
	radius = math.Max(radius, 0)
	if radius == d.radius {
		return
	}
	d.radius = radius
	d.layers = nil
}

// Radius returns the effective corner radius, clamped to half the
// shorter side of the shape rect.
func (d *RoundRectWithShadow) Radius() float64 {
	return effectiveRadius(d.radius, d.ShapeRect())
}

// SetColor sets the fill colour.
func (d *RoundRectWithShadow) SetColor(color graphics.Color) {
	d.color = color
}

// Color returns the fill colour.
func (d *RoundRectWithShadow) Color() graphics.Color {
	return d.color
}

// SetCorners selects which corners of the fill are rounded.
func (d *RoundRectWithShadow) SetCorners(corners Corner) {
	d.corners = corners & CornersAll
}

// Corners returns the rounded corners.
func (d *RoundRectWithShadow) Corners() Corner {
	return d.corners
}

// SetShadowSize sets elevation and max elevation together. Negative
// values become 0 and an elevation above max is clamped to max.
func (d *RoundRectWithShadow) SetShadowSize(elevation, maxElevation float64) {
	elevation = math.Max(elevation, 0)
	maxElevation = math.Max(maxElevation, 0)
	if elevation > maxElevation {
		if !d.clipWarned {
			log.Printf("drawable: elevation %.1f exceeds max elevation %.1f, clamping", elevation, maxElevation)
			d.clipWarned = true
		}
		elevation = maxElevation
	}
	if elevation == d.elevation && maxElevation == d.maxElevation {
		return
	}
	d.elevation = elevation
	d.maxElevation = maxElevation
	d.layers = nil
}

// SetElevation sets the elevation, keeping max elevation.
func (d *RoundRectWithShadow) SetElevation(elevation float64) {
	d.SetShadowSize(elevation, d.maxElevation)
}

// SetMaxElevation sets max elevation, keeping the elevation if it fits.
func (d *RoundRectWithShadow) SetMaxElevation(maxElevation float64) {
	d.SetShadowSize(d.elevation, maxElevation)
}

// Elevation returns the current elevation.
func (d *RoundRectWithShadow) Elevation() float64 {
	return d.elevation
}

// MaxElevation returns the elevation padding is reserved for.
func (d *RoundRectWithShadow) MaxElevation() float64 {
	return d.maxElevation
}

// ShadowSize returns the drawn shadow extent.
func (d *RoundRectWithShadow) ShadowSize() float64 {
	return ShadowSizeFor(d.elevation)
}

// MaxShadowSize returns the shadow extent padding is reserved for.
func (d *RoundRectWithShadow) MaxShadowSize() float64 {
	return ShadowSizeFor(d.maxElevation)
}

// SetShadowColors replaces the colours the fade starts and ends with.
func (d *RoundRectWithShadow) SetShadowColors(start, end graphics.Color) {
	if start == d.startColor && end == d.endColor {
		return
	}
	d.startColor, d.endColor = start, end
	d.layers = nil
}

// SetEdgeShadows selects which edges draw a shadow. An edge without a
// shadow reserves no shadow padding and its side of the shape is flush
// with the bounds.
func (d *RoundRectWithShadow) SetEdgeShadows(edges Edge) {
	d.edgeShadows = edges & EdgesAll
}

// EdgeShadows returns the edges that draw a shadow.
func (d *RoundRectWithShadow) EdgeShadows() Edge {
	return d.edgeShadows
}

// SetCornerShadows selects which corners draw a shadow.
func (d *RoundRectWithShadow) SetCornerShadows(corners Corner) {
	d.cornerShadow = corners & CornersAll
}

// CornerShadows returns the corners that draw a shadow.
func (d *RoundRectWithShadow) CornerShadows() Corner {
	return d.cornerShadow
}

// SetAddPaddingForCorners adds CornerOverlapInset to every side of
// Padding so square content clears the arcs.
func (d *RoundRectWithShadow) SetAddPaddingForCorners(add bool) {
	d.addPaddingForCorners = add
}

// AddPaddingForCorners reports whether corner padding is added.
func (d *RoundRectWithShadow) AddPaddingForCorners() bool {
	return d.addPaddingForCorners
}

// SetShadowOrder sets which shadow layers are painted first.
func (d *RoundRectWithShadow) SetShadowOrder(order ShadowOrder) {
	d.order = order
}

// ShadowOrder returns the shadow paint order.
func (d *RoundRectWithShadow) ShadowOrder() ShadowOrder {
	return d.order
}

// ShapeRect returns the filled shape: the bounds deflated by the shadow
// padding of every edge that shows a shadow.
func (d *RoundRectWithShadow) ShapeRect() graphics.Rect {
	return d.bounds.Deflate(d.shadowInsets())
}

// Padding returns the space a container must keep between the bounds
// and its content on each side.
func (d *RoundRectWithShadow) Padding() graphics.EdgeInsets {
	return d.paddingFor(d.Radius())
}

// MinWidth returns the narrowest bounds that fit both corners and the
// padding.
func (d *RoundRectWithShadow) MinWidth() float64 {
	return 2*d.radius + d.paddingFor(d.radius).Horizontal()
}

// MinHeight returns the shortest bounds that fit both corners and the
// padding.
func (d *RoundRectWithShadow) MinHeight() float64 {
	return 2*d.radius + d.paddingFor(d.radius).Vertical()
}

func (d *RoundRectWithShadow) shadowInsets() graphics.EdgeInsets {
	s := math.Ceil(d.MaxShadowSize())
	side := func(e Edge) float64 {
		if d.edgeShadows.Has(e) {
			return s
		}
		return 0
	}
	return graphics.EdgeInsetsLTRB(side(EdgeLeft), side(EdgeTop), side(EdgeRight), side(EdgeBottom))
}

func (d *RoundRectWithShadow) paddingFor(radius float64) graphics.EdgeInsets {
	insets := d.shadowInsets()
	if d.addPaddingForCorners {
		insets = insets.Add(graphics.EdgeInsetsAll(math.Ceil(CornerOverlapInset(radius))))
	}
	return insets
}

// Draw paints the shadow layers, then the fill, clipped to the bounds.
func (d *RoundRectWithShadow) Draw(canvas graphics.Canvas) {
	shape := d.ShapeRect()
	if d.bounds.IsEmpty() || shape.IsEmpty() {
		return
	}
	radius := d.Radius()

	canvas.Save()
	canvas.ClipRect(d.bounds)
	if extent := d.ShadowSize(); extent > 0 {
		d.shadowList(shape, radius, extent).Paint(canvas)
	}
	CurrentRoundRectHelper()(canvas, shapeRRect(shape, radius, d.corners), graphics.FillPaint(d.color))
	canvas.Restore()
}

// shadowList returns the recorded shadow layers for shape, recording
// them again only when the gradients, the shape or a mask changed.
func (d *RoundRectWithShadow) shadowList(shape graphics.Rect, radius, extent float64) *graphics.DisplayList {
	key := shadowKey{
		layers:       d.shadowLayers(radius, extent),
		shape:        shape,
		corners:      d.corners,
		cornerShadow: d.cornerShadow,
		edgeShadows:  d.edgeShadows,
		order:        d.order,
	}
	if d.shadow != nil && d.shadowKey == key {
		return d.shadow
	}

	var rec graphics.PictureRecorder
	canvas := rec.BeginRecording(d.bounds.Size())
	if d.order == ShadowOrderEdgesFirst {
		d.drawEdgeShadows(canvas, key.layers, shape, radius)
		d.drawCornerShadows(canvas, key.layers, shape, radius)
	} else {
		d.drawCornerShadows(canvas, key.layers, shape, radius)
		d.drawEdgeShadows(canvas, key.layers, shape, radius)
	}
	d.shadow = rec.EndRecording()
	d.shadowKey = key
	return d.shadow
}

func (d *RoundRectWithShadow) drawCornerShadows(canvas graphics.Canvas, layers *shadowLayers, shape graphics.Rect, radius float64) {
	tl, tr, br, bl := cornerRadii(radius, d.corners)
	pieces := [...]struct {
		corner Corner
		q      quadrant
		r      float64
		center graphics.Offset
	}{
		{CornerTopLeft, quadrantTopLeft, tl, graphics.Offset{X: shape.Left + tl, Y: shape.Top + tl}},
		{CornerTopRight, quadrantTopRight, tr, graphics.Offset{X: shape.Right - tr, Y: shape.Top + tr}},
		{CornerBottomRight, quadrantBottomRight, br, graphics.Offset{X: shape.Right - br, Y: shape.Bottom - br}},
		{CornerBottomLeft, quadrantBottomLeft, bl, graphics.Offset{X: shape.Left + bl, Y: shape.Bottom - bl}},
	}
	for _, p := range pieces {
		if !d.cornerShadow.Has(p.corner) {
			continue
		}
		v := square
		if p.r > 0 {
			v = rounded
		}
		canvas.Save()
		canvas.Translate(p.center.X, p.center.Y)
		canvas.DrawPath(layers.cornerPaths[p.q][v], layers.cornerPaints[v])
		canvas.Restore()
	}
}

func (d *RoundRectWithShadow) drawEdgeShadows(canvas graphics.Canvas, layers *shadowLayers, shape graphics.Rect, radius float64) {
	tl, tr, br, bl := cornerRadii(radius, d.corners)
	s := layers.extent
	pieces := [...]struct {
		edge   Edge
		origin graphics.Offset
		rect   graphics.Rect
	}{
		{EdgeTop, graphics.Offset{X: shape.Left + tl, Y: shape.Top},
			graphics.Rect{Top: -s, Right: shape.Width() - tl - tr}},
		{EdgeRight, graphics.Offset{X: shape.Right, Y: shape.Top + tr},
			graphics.Rect{Right: s, Bottom: shape.Height() - tr - br}},
		{EdgeBottom, graphics.Offset{X: shape.Left + bl, Y: shape.Bottom},
			graphics.Rect{Right: shape.Width() - bl - br, Bottom: s}},
		{EdgeLeft, graphics.Offset{X: shape.Left, Y: shape.Top + tl},
			graphics.Rect{Left: -s, Bottom: shape.Height() - tl - bl}},
	}
	for _, p := range pieces {
		if !d.edgeShadows.Has(p.edge) || p.rect.IsEmpty() {
			continue
		}
		canvas.Save()
		canvas.Translate(p.origin.X, p.origin.Y)
		canvas.DrawRect(p.rect, layers.edgePaints[edgeIndex(p.edge)])
		canvas.Restore()
	}
}

// shadowLayers returns the cached layers, rebuilding them when the
// effective radius or extent no longer match.
func (d *RoundRectWithShadow) shadowLayers(radius, extent float64) *shadowLayers {
	if d.layers != nil && d.layers.radius == radius && d.layers.extent == extent {
		return d.layers
	}
	d.layers = buildShadowLayers(radius, extent, d.startColor, d.endColor)
	d.rebuilds++
	return d.layers
}

type quadrant int

const (
	quadrantTopLeft quadrant = iota
	quadrantTopRight
	quadrantBottomRight
	quadrantBottomLeft
)

// startAngle is where the quadrant's arc begins, sweeping clockwise.
func (q quadrant) startAngle() float64 {
	switch q {
	case quadrantTopLeft:
		return math.Pi
	case quadrantTopRight:
		return -math.Pi / 2
	case quadrantBottomRight:
		return 0
	default:
		return math.Pi / 2
	}
}

// Corner piece variants.
const (
	square  = 0
	rounded = 1
)

// shadowLayers holds every gradient piece in a local frame. Corner
// pieces are centred on the arc centre and edge pieces start at the
// shape's edge, so drawing only needs a translation.
type shadowLayers struct {
	radius, extent float64
	cornerPaints   [2]graphics.Paint
	cornerPaths    [4][2]*graphics.Path
	edgePaints     [4]graphics.Paint
}

func buildShadowLayers(radius, extent float64, start, end graphics.Color) *shadowLayers {
	ramp := ShadowRamp(start, end, ShadowRampStops)
	l := &shadowLayers{radius: radius, extent: extent}

	origin := graphics.Offset{}
	l.cornerPaints[square] = graphics.GradientPaint(graphics.NewRadialGradient(origin, extent, ramp))
	outer := radius + extent
	ratio := radius / outer
	stops := append([]graphics.GradientStop{{Position: 0, Color: start}}, remapStops(ramp, ratio)...)
	l.cornerPaints[rounded] = graphics.GradientPaint(graphics.NewRadialGradient(origin, outer, stops))

	for q := quadrantTopLeft; q <= quadrantBottomLeft; q++ {
		l.cornerPaths[q][square] = cornerPiece(q, 0, extent)
		l.cornerPaths[q][rounded] = cornerPiece(q, radius, outer)
	}

	for _, e := range []Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom} {
		var dir graphics.Offset
		switch e {
		case EdgeLeft:
			dir.X = -extent
		case EdgeTop:
			dir.Y = -extent
		case EdgeRight:
			dir.X = extent
		case EdgeBottom:
			dir.Y = extent
		}
		l.edgePaints[edgeIndex(e)] = graphics.GradientPaint(graphics.NewLinearGradient(origin, dir, ramp))
	}
	return l
}

// cornerPiece builds the quarter annulus between inner and outer around
// the origin for quadrant q. A zero inner radius gives a quarter disc.
func cornerPiece(q quadrant, inner, outer float64) *graphics.Path {
	a := q.startAngle()
	origin := graphics.Offset{}
	p := graphics.NewPath()
	p.ArcTo(origin, outer, outer, a, math.Pi/2)
	if inner > 0 {
		p.ArcTo(origin, inner, inner, a+math.Pi/2, -math.Pi/2)
	} else {
		p.LineTo(0, 0)
	}
	p.Close()
	return p
}

func edgeIndex(e Edge) int {
	switch e {
	case EdgeLeft:
		return 0
	case EdgeTop:
		return 1
	case EdgeRight:
		return 2
	default:
		return 3
	}
}
