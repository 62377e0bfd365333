package card

import (
	"math"

	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/graphics"
)

// View is a card container. It draws its background and shadow and keeps
// the padding its content must respect up to date.
//
// A View is not safe for concurrent use.
type View struct {
	impl strategy
	bg   background

	bounds         graphics.Rect
	useCompat      bool
	preventOverlap bool
	contentPadding graphics.EdgeInsets
	shadowPadding  graphics.EdgeInsets

	corners       drawable.Corner
	edgeShadows   drawable.Edge
	cornerShadows drawable.Corner

	onInvalidate func()
}

// New creates a View using the process-wide strategy, selecting it with
// DefaultPlatform if Init was never called.
func New(attrs Attributes) *View {
	Init(DefaultPlatform())
	return newView(active, attrs)
}

func newView(impl strategy, attrs Attributes) *View {
	attrs = attrs.normalized()
	v := &View{
		impl:           impl,
		useCompat:      attrs.UseCompatPadding,
		preventOverlap: attrs.PreventCornerOverlap,
		contentPadding: attrs.ResolvedContentPadding(),
		corners:        attrs.Corners & drawable.CornersAll,
		edgeShadows:    attrs.EdgeShadows & drawable.EdgesAll,
		cornerShadows:  attrs.CornerShadows & drawable.CornersAll,
	}
	impl.initialize(v, attrs)
	return v
}

// Tier returns the tier the view draws with.
func (v *View) Tier() Tier {
	return v.impl.tier()
}

// OnInvalidate registers fn to be called whenever the view needs to be
// redrawn. Passing nil removes the callback.
func (v *View) OnInvalidate(fn func()) {
	v.onInvalidate = fn
}

func (v *View) invalidate() {
	if v.onInvalidate != nil {
		v.onInvalidate()
	}
}

// SetBounds places the view, shadow included.
func (v *View) SetBounds(bounds graphics.Rect) {
	if bounds == v.bounds {
		return
	}
	v.bounds = bounds
	v.bg.SetBounds(bounds)
	// The effective radius depends on the bounds.
	v.impl.updatePadding(v)
	v.invalidate()
}

// Layout places the view at the origin with the given size.
func (v *View) Layout(width, height float64) {
	v.SetBounds(graphics.RectFromLTWH(0, 0, width, height))
}

// Bounds returns the view's bounds.
func (v *View) Bounds() graphics.Rect {
	return v.bounds
}

// SetRadius sets the corner radius. Negative values become 0.
func (v *View) SetRadius(radius float64) {
	v.impl.setRadius(v, radius)
	v.invalidate()
}

// Radius returns the effective corner radius.
func (v *View) Radius() float64 {
	return v.impl.radius(v)
}

// SetCardElevation sets the elevation. It is clamped to the max elevation.
func (v *View) SetCardElevation(elevation float64) {
	v.impl.setElevation(v, elevation)
	v.invalidate()
}

// CardElevation returns the elevation.
func (v *View) CardElevation() float64 {
	return v.impl.elevation(v)
}

// SetMaxCardElevation sets the elevation shadow padding is reserved for.
func (v *View) SetMaxCardElevation(maxElevation float64) {
	v.impl.setMaxElevation(v, maxElevation)
	v.invalidate()
}

// MaxCardElevation returns the max elevation.
func (v *View) MaxCardElevation() float64 {
	return v.impl.maxElevation(v)
}

// SetCardBackgroundColor sets the fill colour.
func (v *View) SetCardBackgroundColor(color graphics.Color) {
	v.impl.setBackgroundColor(v, color)
	v.invalidate()
}

// SetContentPadding sets the padding between the card's inner edge and
// its content.
func (v *View) SetContentPadding(left, top, right, bottom float64) {
	v.contentPadding = graphics.EdgeInsetsLTRB(left, top, right, bottom)
	v.impl.updatePadding(v)
	v.invalidate()
}

// ContentPadding returns the padding set with SetContentPadding.
func (v *View) ContentPadding() graphics.EdgeInsets {
	return v.contentPadding
}

// ShadowPadding returns the padding reserved for the shadow and corners.
func (v *View) ShadowPadding() graphics.EdgeInsets {
	return v.shadowPadding
}

// Padding returns content padding plus shadow padding.
func (v *View) Padding() graphics.EdgeInsets {
	return v.contentPadding.Add(v.shadowPadding)
}

// ContentRect returns the bounds deflated by Padding.
func (v *View) ContentRect() graphics.Rect {
	return v.bounds.Deflate(v.Padding())
}

// SetUseCompatPadding reserves shadow padding on native tiers too.
func (v *View) SetUseCompatPadding(use bool) {
	if v.useCompat == use {
		return
	}
	v.useCompat = use
	v.impl.onCompatPaddingChanged(v)
	v.invalidate()
}

// UseCompatPadding reports whether compat padding is on.
func (v *View) UseCompatPadding() bool {
	return v.useCompat
}

// SetPreventCornerOverlap pads content so square children clear the
// rounded corners.
func (v *View) SetPreventCornerOverlap(prevent bool) {
	if v.preventOverlap == prevent {
		return
	}
	v.preventOverlap = prevent
	v.impl.onPreventCornerOverlapChanged(v)
	v.invalidate()
}

// PreventCornerOverlap reports whether corner overlap prevention is on.
func (v *View) PreventCornerOverlap() bool {
	return v.preventOverlap
}

// ShowCorners selects which corners are rounded.
func (v *View) ShowCorners(corners drawable.Corner) {
	v.corners = corners & drawable.CornersAll
	v.impl.setCorners(v, v.corners)
	v.invalidate()
}

// ShowCorner rounds or squares one corner.
func (v *View) ShowCorner(corner drawable.Corner, show bool) {
	v.ShowCorners(v.corners.With(corner, show))
}

// Corners returns the rounded corners.
func (v *View) Corners() drawable.Corner {
	return v.corners
}

// ShowEdgeShadows selects which edges draw a shadow. Hosts that draw
// shadows natively ignore it.
func (v *View) ShowEdgeShadows(edges drawable.Edge) {
	v.edgeShadows = edges & drawable.EdgesAll
	v.impl.setEdgeShadows(v, v.edgeShadows)
	v.invalidate()
}

// ShowEdgeShadow shows or hides one edge's shadow.
func (v *View) ShowEdgeShadow(edge drawable.Edge, show bool) {
	v.ShowEdgeShadows(v.edgeShadows.With(edge, show))
}

// EdgeShadows returns the edges that draw a shadow.
func (v *View) EdgeShadows() drawable.Edge {
	return v.edgeShadows
}

// ShowCornerShadows selects which corners draw a shadow. Hosts that draw
// shadows natively ignore it.
func (v *View) ShowCornerShadows(corners drawable.Corner) {
	v.cornerShadows = corners & drawable.CornersAll
	v.impl.setCornerShadows(v, v.cornerShadows)
	v.invalidate()
}

// ShowCornerShadow shows or hides one corner's shadow.
func (v *View) ShowCornerShadow(corner drawable.Corner, show bool) {
	v.ShowCornerShadows(v.cornerShadows.With(corner, show))
}

// CornerShadows returns the corners that draw a shadow.
func (v *View) CornerShadows() drawable.Corner {
	return v.cornerShadows
}

// MinSize returns the smallest size that fits the corners and padding.
func (v *View) MinSize() graphics.Size {
	return graphics.Size{
		Width:  math.Ceil(v.impl.minWidth(v)),
		Height: math.Ceil(v.impl.minHeight(v)),
	}
}

// Measure returns the size the view wants for a requested size. Tiers
// that draw their own shadow never go below MinSize.
func (v *View) Measure(width, height float64) graphics.Size {
	w, h := v.impl.measure(v, width, height)
	return graphics.Size{Width: w, Height: h}
}

// Draw paints the background and shadow.
func (v *View) Draw(canvas graphics.Canvas) {
	v.bg.Draw(canvas)
}

// delegate implementation

func (v *View) cardBackground() background {
	return v.bg
}

func (v *View) setCardBackground(bg background) {
	v.bg = bg
	bg.SetBounds(v.bounds)
}

func (v *View) compatPadding() bool {
	return v.useCompat
}

func (v *View) cornerOverlapPrevented() bool {
	return v.preventOverlap
}

func (v *View) setShadowPadding(insets graphics.EdgeInsets) {
	v.shadowPadding = insets
}
