package card

import (
	"sync"

	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/graphics"
)

// background is the drawable a strategy installs on a view.
type background interface {
	SetBounds(bounds graphics.Rect)
	Draw(canvas graphics.Canvas)
}

// delegate is the view as seen by a strategy.
type delegate interface {
	cardBackground() background
	setCardBackground(bg background)
	compatPadding() bool
	cornerOverlapPrevented() bool
	setShadowPadding(insets graphics.EdgeInsets)
}

// strategy is one tier's implementation of the card operations. A view
// forwards every call to the strategy it was created with.
type strategy interface {
	tier() Tier
	initStatic()

	initialize(v delegate, attrs Attributes)
	setRadius(v delegate, radius float64)
	radius(v delegate) float64
	setElevation(v delegate, elevation float64)
	elevation(v delegate) float64
	setMaxElevation(v delegate, maxElevation float64)
	maxElevation(v delegate) float64
	minWidth(v delegate) float64
	minHeight(v delegate) float64
	measure(v delegate, width, height float64) (float64, float64)
	updatePadding(v delegate)
	onCompatPaddingChanged(v delegate)
	onPreventCornerOverlapChanged(v delegate)
	setBackgroundColor(v delegate, color graphics.Color)

	setCorners(v delegate, corners drawable.Corner)
	setEdgeShadows(v delegate, edges drawable.Edge)
	setCornerShadows(v delegate, corners drawable.Corner)
}

var (
	selectOnce sync.Once
	active     strategy
)

// Init selects the strategy for p and installs its shared drawing
// helper. Only the first call has an effect; later calls return the tier
// already chosen.
func Init(p Platform) Tier {
	selectOnce.Do(func() {
		active = strategyFor(TierFor(p))
		active.initStatic()
	})
	return active.tier()
}

// ActiveTier returns the selected tier, initializing with
// DefaultPlatform if Init was never called.
func ActiveTier() Tier {
	return Init(DefaultPlatform())
}

func strategyFor(t Tier) strategy {
	switch t {
	case TierJellybeanMR1:
		return &manualStrategy{t: TierJellybeanMR1, helper: drawable.HostRoundRectHelper}
	case TierLegacy:
		return &manualStrategy{t: TierLegacy, helper: drawable.PathRoundRectHelper}
	default:
		return nativeStrategy{}
	}
}
