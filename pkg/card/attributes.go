package card

import (
	"math"

	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/graphics"
)

// Attributes is the configuration a View is created from.
type Attributes struct {
	BackgroundColor graphics.Color
	CornerRadius    float64
	Elevation       float64
	// MaxElevation is the elevation padding is reserved for. It is raised
	// to Elevation when lower.
	MaxElevation float64

	// UseCompatPadding reserves shadow padding on hosts that draw shadows
	// natively, so a card lays out the same on every tier.
	UseCompatPadding bool
	// PreventCornerOverlap pads content so square children clear the
	// rounded corners.
	PreventCornerOverlap bool

	// ContentPadding applies to every side without a per-side override.
	ContentPadding float64
	// Per-side overrides; nil uses ContentPadding.
	ContentPaddingLeft   *float64
	ContentPaddingTop    *float64
	ContentPaddingRight  *float64
	ContentPaddingBottom *float64

	Corners       drawable.Corner
	EdgeShadows   drawable.Edge
	CornerShadows drawable.Corner
}

// DefaultAttributes returns a white card with every corner rounded,
// every shadow shown and corner overlap prevention on.
func DefaultAttributes() Attributes {
	return Attributes{
		BackgroundColor:      graphics.ColorWhite,
		PreventCornerOverlap: true,
		Corners:              drawable.CornersAll,
		EdgeShadows:          drawable.EdgesAll,
		CornerShadows:        drawable.CornersAll,
	}
}

// ResolvedContentPadding returns the content padding with per-side
// overrides applied.
func (a Attributes) ResolvedContentPadding() graphics.EdgeInsets {
	side := func(override *float64) float64 {
		if override != nil {
			return *override
		}
		return a.ContentPadding
	}
	return graphics.EdgeInsetsLTRB(
		side(a.ContentPaddingLeft),
		side(a.ContentPaddingTop),
		side(a.ContentPaddingRight),
		side(a.ContentPaddingBottom),
	)
}

// normalized clamps negative sizes and raises MaxElevation to Elevation.
func (a Attributes) normalized() Attributes {
	a.CornerRadius = math.Max(a.CornerRadius, 0)
	a.Elevation = math.Max(a.Elevation, 0)
	a.MaxElevation = math.Max(a.MaxElevation, a.Elevation)
	return a
}
