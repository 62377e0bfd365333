package drawable

import (
	"sync"
	"sync/atomic"

	"github.com/go-drift/cardview/pkg/graphics"
)

// RoundRectHelper fills a rounded rectangle on a canvas. Hosts differ in
// whether they offer a rounded-rect primitive, so the fill behind a
// manual shadow goes through a process-wide helper.
type RoundRectHelper func(canvas graphics.Canvas, rrect graphics.RRect, paint graphics.Paint)

var (
	helperOnce      sync.Once
	installedHelper atomic.Pointer[RoundRectHelper]
)

// InstallRoundRectHelper sets the process-wide helper. Only the first
// call has an effect; it reports whether h was installed.
func InstallRoundRectHelper(h RoundRectHelper) bool {
	if h == nil {
		return false
	}
	installed := false
	helperOnce.Do(func() {
		installedHelper.Store(&h)
		installed = true
	})
	return installed
}

// CurrentRoundRectHelper returns the installed helper, or
// HostRoundRectHelper when none was installed.
func CurrentRoundRectHelper() RoundRectHelper {
	if h := installedHelper.Load(); h != nil {
		return *h
	}
	return HostRoundRectHelper
}

// HostRoundRectHelper fills with the canvas's own rounded-rect primitive.
func HostRoundRectHelper(canvas graphics.Canvas, rrect graphics.RRect, paint graphics.Paint) {
	canvas.DrawRRect(rrect, paint)
}

// PathRoundRectHelper builds the outline from arcs and lines and fills
// it as a path, for hosts whose rounded-rect primitive is missing or
// unreliable.
func PathRoundRectHelper(canvas graphics.Canvas, rrect graphics.RRect, paint graphics.Paint) {
	if rrect.Rect.IsEmpty() {
		return
	}
	path := graphics.NewPath()
	path.AddRRect(rrect)
	canvas.DrawPath(path, paint)
}
