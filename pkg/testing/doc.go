// Package testing provides helpers for testing card drawables.
//
// # Recording
//
// Record draws a Painter onto a canvas that serializes every call into a
// DisplayOp, so tests can assert on draw order and parameters:
//
//	ops := cardtest.Record(graphics.Size{Width: 200, Height: 100}, view)
//	if got := cardtest.OpNames(ops); got[len(got)-1] != "drawRRect" {
//	    t.Errorf("fill should be drawn last, got %v", got)
//	}
//
// # Pixels
//
// Rasterize renders a Painter with graphics.RasterCanvas; AlphaAt and
// DiffPixels compare the results.
//
// # Snapshot Testing
//
// Capture and compare display-op snapshots:
//
//	snapshot := cardtest.CaptureSnapshot(size, view).WithMetric("padding", view.Padding())
//	snapshot.MatchesFile(t, "testdata/login_card.snapshot.json")
//
// Update snapshots with:
//
//	CARDVIEW_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import cardtest "github.com/go-drift/cardview/pkg/testing"
package testing
