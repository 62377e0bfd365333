package card

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/graphics"
	cardtest "github.com/go-drift/cardview/pkg/testing"
)

var allTiers = []Tier{TierNative, TierJellybeanMR1, TierLegacy}
var manualTiers = []Tier{TierJellybeanMR1, TierLegacy}

func testAttributes(radius, elevation, maxElevation float64) Attributes {
	attrs := DefaultAttributes()
	attrs.CornerRadius = radius
	attrs.Elevation = elevation
	attrs.MaxElevation = maxElevation
	attrs.PreventCornerOverlap = false
	return attrs
}

func newTestView(tier Tier, attrs Attributes) *View {
	v := newView(strategyFor(tier), attrs)
	v.Layout(200, 100)
	return v
}

func TestView_ShadowPaddingScenario(t *testing.T) {
	for _, tier := range manualTiers {
		t.Run(tier.String(), func(t *testing.T) {
			v := newTestView(tier, testAttributes(8, 4, 4))
			if got, want := v.ShadowPadding(), graphics.EdgeInsetsAll(7); got != want {
				t.Fatalf("ShadowPadding() = %+v, want %+v", got, want)
			}

			v.ShowEdgeShadow(drawable.EdgeLeft, false)
			v.ShowEdgeShadow(drawable.EdgeTop, false)
			if got, want := v.ShadowPadding(), graphics.EdgeInsetsLTRB(0, 0, 7, 7); got != want {
				t.Errorf("ShadowPadding() without left/top = %+v, want %+v", got, want)
			}
			if got := v.EdgeShadows(); got != drawable.EdgeRight|drawable.EdgeBottom {
				t.Errorf("EdgeShadows() = %v", got)
			}
		})
	}
}

func TestView_PreventCornerOverlap(t *testing.T) {
	for _, tier := range allTiers {
		t.Run(tier.String(), func(t *testing.T) {
			attrs := testAttributes(16, 4, 4)
			attrs.UseCompatPadding = true
			v := newTestView(tier, attrs)
			base := v.Padding()

			v.SetPreventCornerOverlap(true)
			after := v.Padding()
			diff := graphics.EdgeInsetsLTRB(
				after.Left-base.Left, after.Top-base.Top,
				after.Right-base.Right, after.Bottom-base.Bottom)
			if diff != graphics.EdgeInsetsAll(5) {
				t.Errorf("padding grew by %+v, want 5 per side", diff)
			}

			v.SetPreventCornerOverlap(false)
			if got := v.Padding(); got != base {
				t.Errorf("toggling back gave %+v, want %+v", got, base)
			}
		})
	}
}

func TestView_NativeCompatPadding(t *testing.T) {
	v := newTestView(TierNative, testAttributes(8, 4, 4))
	if got := v.ShadowPadding(); got != (graphics.EdgeInsets{}) {
		t.Errorf("without compat padding ShadowPadding() = %+v, want zero", got)
	}

	v.SetUseCompatPadding(true)
	if got, want := v.ShadowPadding(), graphics.EdgeInsetsAll(7); got != want {
		t.Errorf("with compat padding ShadowPadding() = %+v, want %+v", got, want)
	}

	ops := cardtest.Record(graphics.Size{Width: 200, Height: 100}, v)
	shadows := cardtest.Filter(ops, "drawRRectShadow")
	if len(shadows) != 1 {
		t.Fatalf("ops = %v, want one drawRRectShadow", ops)
	}
	rect := shadows[0].Params["rect"].(map[string]any)
	if rect["left"] != 7.0 || rect["bottom"] != 93.0 {
		t.Errorf("shadow rect = %v, want inset by 7", rect)
	}
}

func TestView_ManualIgnoresCompatPadding(t *testing.T) {
	for _, tier := range manualTiers {
		v := newTestView(tier, testAttributes(8, 4, 4))
		before := v.ShadowPadding()
		v.SetUseCompatPadding(true)
		if got := v.ShadowPadding(); got != before {
			t.Errorf("%v: compat padding changed padding %+v -> %+v", tier, before, got)
		}
		if !v.UseCompatPadding() {
			t.Errorf("%v: UseCompatPadding() should report the setting", tier)
		}
	}
}

func TestView_PaddingAddsContentPadding(t *testing.T) {
	for _, tier := range manualTiers {
		attrs := testAttributes(8, 4, 4)
		attrs.ContentPadding = 4
		right := 10.0
		attrs.ContentPaddingRight = &right
		v := newTestView(tier, attrs)

		if got, want := v.ContentPadding(), graphics.EdgeInsetsLTRB(4, 4, 10, 4); got != want {
			t.Errorf("ContentPadding() = %+v, want %+v", got, want)
		}
		if got, want := v.Padding(), graphics.EdgeInsetsLTRB(11, 11, 17, 11); got != want {
			t.Errorf("Padding() = %+v, want %+v", got, want)
		}
		if got, want := v.ContentRect(), (graphics.Rect{Left: 11, Top: 11, Right: 183, Bottom: 89}); got != want {
			t.Errorf("ContentRect() = %+v, want %+v", got, want)
		}

		v.SetContentPadding(0, 0, 0, 0)
		if got := v.Padding(); got != v.ShadowPadding() {
			t.Errorf("Padding() = %+v, want shadow padding only", got)
		}
	}
}

func TestView_ElevationAttributes(t *testing.T) {
	for _, tier := range allTiers {
		t.Run(tier.String(), func(t *testing.T) {
			v := newTestView(tier, testAttributes(8, 6, 2))
			if v.MaxCardElevation() != 6 {
				t.Errorf("MaxCardElevation() = %v, want 6 (raised to elevation)", v.MaxCardElevation())
			}
			v.SetCardElevation(3)
			if v.CardElevation() != 3 {
				t.Errorf("CardElevation() = %v, want 3", v.CardElevation())
			}
			v.SetMaxCardElevation(2)
			if v.CardElevation() != 2 || v.MaxCardElevation() != 2 {
				t.Errorf("after lowering max: %v/%v, want 2/2", v.CardElevation(), v.MaxCardElevation())
			}
		})
	}
}

func TestView_RadiusRoundTrip(t *testing.T) {
	for _, tier := range allTiers {
		t.Run(tier.String(), func(t *testing.T) {
			v := newTestView(tier, testAttributes(0, 4, 4))
			maxRadius := shapeRect(v).ShortestSide() / 2
			for _, r := range []float64{0, 1, 8, maxRadius / 2, maxRadius} {
				v.SetRadius(r)
				if got := v.Radius(); got != r {
					t.Errorf("SetRadius(%v); Radius() = %v", r, got)
				}
			}
			v.SetRadius(maxRadius + 50)
			if got := v.Radius(); got != maxRadius {
				t.Errorf("oversized radius gave %v, want %v", got, maxRadius)
			}
		})
	}
}

func shapeRect(v *View) graphics.Rect {
	switch bg := v.bg.(type) {
	case *nativeBackground:
		return bg.shape.ShapeRect()
	case *drawable.RoundRectWithShadow:
		return bg.ShapeRect()
	default:
		panic(fmt.Sprintf("unexpected background %T", bg))
	}
}

func TestView_Measure(t *testing.T) {
	attrs := testAttributes(8, 4, 4)
	attrs.PreventCornerOverlap = true

	native := newTestView(TierNative, attrs)
	if got := native.Measure(10, 5); got != (graphics.Size{Width: 10, Height: 5}) {
		t.Errorf("native Measure = %+v, want request unchanged", got)
	}
	if got := native.MinSize(); got != (graphics.Size{Width: 16, Height: 16}) {
		t.Errorf("native MinSize = %+v, want 16x16", got)
	}

	for _, tier := range manualTiers {
		v := newTestView(tier, attrs)
		// 2*8 + 2*(7 + 3)
		if got := v.Measure(10, 5); got != (graphics.Size{Width: 36, Height: 36}) {
			t.Errorf("%v Measure = %+v, want 36x36", tier, got)
		}
		if got := v.Measure(300, 120); got != (graphics.Size{Width: 300, Height: 120}) {
			t.Errorf("%v Measure = %+v, want request kept", tier, got)
		}
	}
}

func TestView_Invalidate(t *testing.T) {
	v := newTestView(TierLegacy, testAttributes(8, 4, 4))
	calls := 0
	v.OnInvalidate(func() { calls++ })

	v.SetRadius(10)
	v.SetCardBackgroundColor(graphics.ColorRed)
	v.ShowCorner(drawable.CornerTopLeft, false)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	v.SetUseCompatPadding(false)
	v.SetPreventCornerOverlap(false)
	v.Layout(200, 100)
	if calls != 3 {
		t.Errorf("no-op setters invalidated: calls = %d, want 3", calls)
	}

	v.OnInvalidate(nil)
	v.SetRadius(4)
}

func TestView_DrawPerTier(t *testing.T) {
	size := graphics.Size{Width: 200, Height: 100}

	native := newTestView(TierNative, testAttributes(8, 4, 4))
	if got, want := cardtest.OpNames(cardtest.Record(size, native)), []string{"drawRRectShadow", "drawRRect"}; !reflect.DeepEqual(got, want) {
		t.Errorf("native ops = %v, want %v", got, want)
	}

	for _, tier := range manualTiers {
		v := newTestView(tier, testAttributes(8, 4, 4))
		ops := cardtest.Record(size, v)
		if len(cardtest.Filter(ops, "drawRRectShadow")) != 0 {
			t.Errorf("%v: manual tier used the host shadow", tier)
		}
		if got := len(shadowLayers(ops, "drawPath")); got != 4 {
			t.Errorf("%v: drew %d corner shadows, want 4", tier, got)
		}
	}
}

func TestView_ElevationRoundTripRedraws(t *testing.T) {
	size := graphics.Size{Width: 200, Height: 100}
	capture := func(v *View) *cardtest.Snapshot {
		return cardtest.CaptureSnapshot(size, v).
			WithMetric("padding", v.Padding()).
			WithMetric("content", v.ContentRect())
	}
	for _, tier := range allTiers {
		t.Run(tier.String(), func(t *testing.T) {
			v := newTestView(tier, testAttributes(8, 4, 6))
			before := capture(v)

			v.SetCardElevation(2)
			lowered := capture(v)
			if lowered.Diff(before) == "" {
				t.Error("lowering the elevation should change the shadow")
			}
			if lowered.Metrics["padding"] == nil || fmt.Sprint(lowered.Metrics["padding"]) != fmt.Sprint(before.Metrics["padding"]) {
				t.Errorf("padding moved with elevation: %v -> %v", before.Metrics["padding"], lowered.Metrics["padding"])
			}

			v.SetCardElevation(4)
			if diff := capture(v).Diff(before); diff != "" {
				t.Errorf("restoring the elevation should restore the drawing:\n%s", diff)
			}
		})
	}
}

func TestView_NativeIgnoresShadowMasks(t *testing.T) {
	size := graphics.Size{Width: 200, Height: 100}
	v := newTestView(TierNative, testAttributes(8, 4, 4))
	before := cardtest.Record(size, v)

	v.ShowEdgeShadows(drawable.EdgeTop)
	v.ShowCornerShadows(drawable.CornersNone)
	after := cardtest.Record(size, v)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("shadow masks changed native drawing:\n%v\n%v", before, after)
	}

	v.ShowCorners(drawable.CornerTopLeft)
	ops := cardtest.Filter(cardtest.Record(size, v), "drawRRect")
	radius := ops[0].Params["radius"].(map[string]any)
	if _, perCorner := radius["topRight"]; !perCorner {
		t.Errorf("corner mask should square corners on native, got radius %v", radius)
	}
}

func TestView_CornerShadowMask(t *testing.T) {
	size := graphics.Size{Width: 200, Height: 100}
	v := newTestView(TierJellybeanMR1, testAttributes(8, 4, 4))
	v.ShowCornerShadow(drawable.CornerBottomRight, false)
	if got := len(shadowLayers(cardtest.Record(size, v), "drawPath")); got != 3 {
		t.Errorf("drew %d corner shadows, want 3", got)
	}
	if v.CornerShadows().Has(drawable.CornerBottomRight) {
		t.Error("CornerShadows() should not contain bottom right")
	}
}

func TestView_ZeroElevationNoShadow(t *testing.T) {
	size := graphics.Size{Width: 200, Height: 100}
	for _, tier := range allTiers {
		v := newTestView(tier, testAttributes(8, 0, 0))
		ops := cardtest.Record(size, v)
		n := len(cardtest.Filter(ops, "drawRRectShadow")) +
			len(shadowLayers(ops, "drawRect")) + len(shadowLayers(ops, "drawPath"))
		if n != 0 {
			t.Errorf("%v: zero elevation drew shadows: %v", tier, ops)
		}
		if v.ShadowPadding() != (graphics.EdgeInsets{}) {
			t.Errorf("%v: ShadowPadding() = %+v, want zero", tier, v.ShadowPadding())
		}
	}
}

// shadowLayers returns the ops named name that paint with a gradient. The
// fill may also be a path, depending on the installed helper.
func shadowLayers(ops []cardtest.DisplayOp, name string) []cardtest.DisplayOp {
	var out []cardtest.DisplayOp
	for _, op := range cardtest.Filter(ops, name) {
		if _, ok := op.Params["gradient"]; ok {
			out = append(out, op)
		}
	}
	return out
}
