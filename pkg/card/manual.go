package card

import (
	"math"

	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/graphics"
)

// manualStrategy paints gradient shadows with drawable.RoundRectWithShadow.
// Shadow padding is always reserved, so compat padding changes nothing.
// The two manual tiers differ only in the fill helper they install.
type manualStrategy struct {
	t      Tier
	helper drawable.RoundRectHelper
}

func (m *manualStrategy) tier() Tier { return m.t }

func (m *manualStrategy) initStatic() {
	drawable.InstallRoundRectHelper(m.helper)
}

func (m *manualStrategy) initialize(v delegate, attrs Attributes) {
	bg := drawable.NewRoundRectWithShadow(attrs.BackgroundColor, attrs.CornerRadius, attrs.Elevation, attrs.MaxElevation)
	bg.SetCorners(attrs.Corners)
	bg.SetEdgeShadows(attrs.EdgeShadows)
	bg.SetCornerShadows(attrs.CornerShadows)
	bg.SetAddPaddingForCorners(v.cornerOverlapPrevented())
	v.setCardBackground(bg)
	m.updatePadding(v)
}

func (m *manualStrategy) background(v delegate) *drawable.RoundRectWithShadow {
	return v.cardBackground().(*drawable.RoundRectWithShadow)
}

func (m *manualStrategy) setRadius(v delegate, radius float64) {
	m.background(v).SetRadius(radius)
	m.updatePadding(v)
}

func (m *manualStrategy) radius(v delegate) float64 {
	return m.background(v).Radius()
}

func (m *manualStrategy) setElevation(v delegate, elevation float64) {
	m.background(v).SetElevation(elevation)
}

func (m *manualStrategy) elevation(v delegate) float64 {
	return m.background(v).Elevation()
}

func (m *manualStrategy) setMaxElevation(v delegate, maxElevation float64) {
	m.background(v).SetMaxElevation(maxElevation)
	m.updatePadding(v)
}

func (m *manualStrategy) maxElevation(v delegate) float64 {
	return m.background(v).MaxElevation()
}

func (m *manualStrategy) minWidth(v delegate) float64 {
	return m.background(v).MinWidth()
}

func (m *manualStrategy) minHeight(v delegate) float64 {
	return m.background(v).MinHeight()
}

func (m *manualStrategy) measure(v delegate, width, height float64) (float64, float64) {
	return math.Max(width, math.Ceil(m.minWidth(v))), math.Max(height, math.Ceil(m.minHeight(v)))
}

func (m *manualStrategy) updatePadding(v delegate) {
	v.setShadowPadding(m.background(v).Padding())
}

func (m *manualStrategy) onCompatPaddingChanged(delegate) {}

func (m *manualStrategy) onPreventCornerOverlapChanged(v delegate) {
	m.background(v).SetAddPaddingForCorners(v.cornerOverlapPrevented())
	m.updatePadding(v)
}

func (m *manualStrategy) setBackgroundColor(v delegate, color graphics.Color) {
	m.background(v).SetColor(color)
}

func (m *manualStrategy) setCorners(v delegate, corners drawable.Corner) {
	m.background(v).SetCorners(corners)
}

func (m *manualStrategy) setEdgeShadows(v delegate, edges drawable.Edge) {
	m.background(v).SetEdgeShadows(edges)
	m.updatePadding(v)
}

func (m *manualStrategy) setCornerShadows(v delegate, corners drawable.Corner) {
	m.background(v).SetCornerShadows(corners)
}
