package card

import (
	"math"

	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/graphics"
)

// nativeBackground is a rounded rectangle with a host elevation shadow.
type nativeBackground struct {
	shape        *drawable.RoundRect
	elevation    float64
	maxElevation float64
	insetShadow  bool
}

func (b *nativeBackground) SetBounds(bounds graphics.Rect) {
	b.shape.SetBounds(bounds)
}

// setShadowSize follows the same clamping as the manual drawable.
func (b *nativeBackground) setShadowSize(elevation, maxElevation float64) {
	b.maxElevation = math.Max(maxElevation, 0)
	b.elevation = math.Min(math.Max(elevation, 0), b.maxElevation)
	b.updateInsets()
}

// setInsetShadow keeps the shadow inside the bounds by shrinking the shape.
func (b *nativeBackground) setInsetShadow(inset bool) {
	b.insetShadow = inset
	b.updateInsets()
}

func (b *nativeBackground) updateInsets() {
	var insets graphics.EdgeInsets
	if b.insetShadow {
		insets = graphics.EdgeInsetsAll(math.Ceil(drawable.ShadowSizeFor(b.maxElevation)))
	}
	b.shape.SetInsets(insets)
}

func (b *nativeBackground) Draw(canvas graphics.Canvas) {
	if b.shape.ShapeRect().IsEmpty() {
		return
	}
	if b.elevation > 0 {
		canvas.DrawRRectShadow(b.shape.RRect(), graphics.ElevationShadow(b.elevation))
	}
	b.shape.Draw(canvas)
}

// nativeStrategy lets the host draw the shadow. Shadow padding is only
// reserved with compat padding; edge and corner shadow masks do not apply
// because the host shadow cannot be split.
type nativeStrategy struct{}

func (nativeStrategy) tier() Tier { return TierNative }

func (nativeStrategy) initStatic() {}

func (s nativeStrategy) initialize(v delegate, attrs Attributes) {
	bg := &nativeBackground{shape: drawable.NewRoundRect(attrs.BackgroundColor, attrs.CornerRadius)}
	bg.shape.SetCorners(attrs.Corners)
	bg.setShadowSize(attrs.Elevation, attrs.MaxElevation)
	bg.setInsetShadow(v.compatPadding())
	v.setCardBackground(bg)
	s.updatePadding(v)
}

func (nativeStrategy) background(v delegate) *nativeBackground {
	return v.cardBackground().(*nativeBackground)
}

func (s nativeStrategy) setRadius(v delegate, radius float64) {
	s.background(v).shape.SetCornerRadius(radius)
	s.updatePadding(v)
}

func (s nativeStrategy) radius(v delegate) float64 {
	return s.background(v).shape.Radius()
}

func (s nativeStrategy) setElevation(v delegate, elevation float64) {
	bg := s.background(v)
	bg.setShadowSize(elevation, bg.maxElevation)
}

func (s nativeStrategy) elevation(v delegate) float64 {
	return s.background(v).elevation
}

func (s nativeStrategy) setMaxElevation(v delegate, maxElevation float64) {
	bg := s.background(v)
	bg.setShadowSize(bg.elevation, maxElevation)
	s.updatePadding(v)
}

func (s nativeStrategy) maxElevation(v delegate) float64 {
	return s.background(v).maxElevation
}

func (s nativeStrategy) minWidth(v delegate) float64 {
	return s.radius(v) * 2
}

func (s nativeStrategy) minHeight(v delegate) float64 {
	return s.radius(v) * 2
}

func (nativeStrategy) measure(_ delegate, width, height float64) (float64, float64) {
	return width, height
}

func (s nativeStrategy) updatePadding(v delegate) {
	bg := s.background(v)
	var pad float64
	if v.compatPadding() {
		pad += math.Ceil(drawable.ShadowSizeFor(bg.maxElevation))
	}
	if v.cornerOverlapPrevented() {
		pad += math.Ceil(drawable.CornerOverlapInset(bg.shape.Radius()))
	}
	v.setShadowPadding(graphics.EdgeInsetsAll(pad))
}

func (s nativeStrategy) onCompatPaddingChanged(v delegate) {
	s.background(v).setInsetShadow(v.compatPadding())
	s.updatePadding(v)
}

func (s nativeStrategy) onPreventCornerOverlapChanged(v delegate) {
	s.updatePadding(v)
}

func (s nativeStrategy) setBackgroundColor(v delegate, color graphics.Color) {
	s.background(v).shape.SetColor(color)
}

func (s nativeStrategy) setCorners(v delegate, corners drawable.Corner) {
	s.background(v).shape.SetCorners(corners)
}

func (nativeStrategy) setEdgeShadows(delegate, drawable.Edge) {}

func (nativeStrategy) setCornerShadows(delegate, drawable.Corner) {}
