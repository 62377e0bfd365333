// Package card provides View, a container that draws a rounded background
// with a drop shadow and reports the padding its content must respect.
//
// # Tiers
//
// How the shadow is drawn depends on the host. Init picks one tier for the
// whole process from a Platform description:
//
//   - TierNative: the host draws elevation shadows itself. The background
//     is a plain rounded rectangle and the shadow is a single
//     DrawRRectShadow call.
//   - TierJellybeanMR1: no native shadows. The background paints gradient
//     shadows and fills with the canvas's rounded-rect primitive.
//   - TierLegacy: as TierJellybeanMR1, but the fill is built from arcs and
//     lines because the host's rounded-rect primitive is unreliable.
//
// New initializes with DefaultPlatform when Init was never called.
//
// # Padding
//
// A View owns its padding. Padding returns the configured content padding
// plus the shadow padding computed by the active tier; there is no setter
// for the total. ContentRect is the area left for children:
//
//	view := card.New(card.DefaultAttributes())
//	view.Layout(200, 100)
//	content := view.ContentRect()
package card
