package drawable

import (
	"reflect"
	"sync"
	"testing"

	"github.com/go-drift/cardview/pkg/graphics"
	cardtest "github.com/go-drift/cardview/pkg/testing"
)

func resetRoundRectHelper(t *testing.T) {
	t.Helper()
	reset := func() {
		helperOnce = sync.Once{}
		installedHelper.Store(nil)
	}
	reset()
	t.Cleanup(reset)
}

func TestInstallRoundRectHelper_FirstWins(t *testing.T) {
	resetRoundRectHelper(t)

	if InstallRoundRectHelper(nil) {
		t.Error("installing nil should be refused")
	}
	if !InstallRoundRectHelper(PathRoundRectHelper) {
		t.Fatal("first install should succeed")
	}
	if InstallRoundRectHelper(HostRoundRectHelper) {
		t.Error("second install should be ignored")
	}

	d := newShadowed(8, 0, 0)
	ops := cardtest.Record(cardBounds.Size(), d)
	if got, want := cardtest.OpNames(ops), []string{"save", "clipRect", "drawPath", "restore"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
}

func TestCurrentRoundRectHelper_Default(t *testing.T) {
	resetRoundRectHelper(t)

	rr := graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 10, 10), graphics.CircularRadius(2))
	ops := cardtest.Record(graphics.Size{}, painterFunc(func(c graphics.Canvas) {
		CurrentRoundRectHelper()(c, rr, graphics.FillPaint(graphics.ColorWhite))
	}))
	if len(ops) != 1 || ops[0].Op != "drawRRect" {
		t.Errorf("default helper ops = %v, want one drawRRect", ops)
	}
}

func TestHelpers_RenderAlike(t *testing.T) {
	rr := graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(3, 3, 50, 30), graphics.CircularRadius(9))
	paint := graphics.FillPaint(graphics.RGB(10, 120, 200))
	host := cardtest.Rasterize(60, 40, painterFunc(func(c graphics.Canvas) { HostRoundRectHelper(c, rr, paint) }))
	path := cardtest.Rasterize(60, 40, painterFunc(func(c graphics.Canvas) { PathRoundRectHelper(c, rr, paint) }))
	if n, region := cardtest.DiffPixels(host, path, 0); n != 0 {
		t.Errorf("helpers differ in %d pixels within %v", n, region)
	}
}

func TestPathRoundRectHelper_Empty(t *testing.T) {
	ops := cardtest.Record(graphics.Size{}, painterFunc(func(c graphics.Canvas) {
		PathRoundRectHelper(c, graphics.RRect{}, graphics.FillPaint(graphics.ColorWhite))
	}))
	if len(ops) != 0 {
		t.Errorf("empty rrect drew %v", ops)
	}
}

type painterFunc func(canvas graphics.Canvas)

func (f painterFunc) Draw(canvas graphics.Canvas) { f(canvas) }
