package cmd

import (
	"bytes"
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/cardview/cmd/cardshot/internal/config"
	"github.com/go-drift/cardview/pkg/card"
	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

// testResolved describes a red card on a grey canvas. Every test uses the
// default platform so the process-wide tier stays native.
func testResolved(scale float64) *config.Resolved {
	attrs := card.DefaultAttributes()
	attrs.BackgroundColor = graphics.ColorRed
	attrs.CornerRadius = 8
	attrs.Elevation = 4
	attrs.MaxElevation = 4
	return &config.Resolved{
		Path:       "card.yaml",
		Width:      120,
		Height:     80,
		Scale:      scale,
		Background: graphics.Color(0xFFEEEEEE),
		Platform:   card.DefaultPlatform(),
		Attributes: attrs,
	}
}

func TestParseFileArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantFile string
		wantOut  string
		wantErr  bool
	}{
		{"default output", []string{"cards/a.yaml"}, "cards/a.yaml", "cards/a.png", false},
		{"short flag", []string{"a.toml", "-o", "b.png"}, "a.toml", "b.png", false},
		{"flag first", []string{"--output", "b.png", "a.yaml"}, "a.yaml", "b.png", false},
		{"equals form", []string{"a.yaml", "--output=c.png"}, "a.yaml", "c.png", false},
		{"no file", nil, "", "", true},
		{"missing value", []string{"a.yaml", "-o"}, "", "", true},
		{"two files", []string{"a.yaml", "b.yaml"}, "", "", true},
		{"unknown flag", []string{"a.yaml", "--scale"}, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, out, err := parseFileArgs("render", tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got file=%q out=%q", file, out)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if file != tt.wantFile || out != tt.wantOut {
				t.Errorf("got (%q, %q), want (%q, %q)", file, out, tt.wantFile, tt.wantOut)
			}
		})
	}
}

func TestRenderCard(t *testing.T) {
	img, view := renderCard(testResolved(1))
	if view.Tier() != card.TierNative {
		t.Fatalf("tier = %v, want native", view.Tier())
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("image size = %v, want 120x80", b)
	}
	if got := img.RGBAAt(60, 40); got.R != 0xFF || got.G != 0 || got.B != 0 {
		t.Errorf("centre pixel = %v, want the card colour", got)
	}
}

func TestRenderCardScales(t *testing.T) {
	img, _ := renderCard(testResolved(2))
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 160 {
		t.Fatalf("image size = %v, want 240x160", b)
	}
	if got := img.RGBAAt(120, 80); got.R < 0xF0 || got.G > 0x10 || got.B > 0x10 {
		t.Errorf("centre pixel = %v, want close to the card colour", got)
	}
}

func TestRenderCardLabel(t *testing.T) {
	plain, _ := renderCard(testResolved(1))
	res := testResolved(1)
	res.Label = "Hello"
	labelled, view := renderCard(res)

	content := view.ContentRect()
	changed := 0
	for i := range plain.Pix {
		if plain.Pix[i] != labelled.Pix[i] {
			changed++
			px := (i % plain.Stride) / 4
			py := i / plain.Stride
			if float64(px) < content.Left || float64(px) >= content.Right || float64(py) < content.Top || float64(py) >= content.Bottom {
				t.Fatalf("label touched pixel (%d,%d) outside content %+v", px, py, content)
			}
		}
	}
	if changed == 0 {
		t.Error("label should change some pixels")
	}
}

func TestRenderToWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "card.png")
	if err := renderTo(testResolved(1), out); err != nil {
		t.Fatalf("renderTo: %v", err)
	}
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("written size = %v, want 120x80", b)
	}
}

func TestRenderToUnsupportedFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "card.webp")
	err := renderTo(testResolved(1), out)
	var ce *errors.CardError
	if !stderrors.As(err, &ce) || ce.Kind != errors.KindRender {
		t.Fatalf("renderTo(.webp) = %v, want a render CardError", err)
	}
	if ce.Path != out || ce.Op != "cardshot.render" {
		t.Errorf("op = %q, path = %q, want cardshot.render on %q", ce.Op, ce.Path, out)
	}
}

func TestWriteInspect(t *testing.T) {
	res := testResolved(1)
	card.Init(res.Platform)
	view := card.New(res.Attributes)
	view.Layout(120, 80)

	var buf bytes.Buffer
	writeInspect(&buf, res, view)
	out := buf.String()
	for _, want := range []string{
		"Tier:          native",
		"Radius:        8 (requested 8)",
		"Shadow pad:    left=3 top=3 right=3 bottom=3",
		"Content:       (3,3)-(117,77)",
		"Min size:      16x16",
		"Measured:      120x80",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestWatchLoopCoalescesChanges(t *testing.T) {
	target := filepath.Join("cards", "a.yaml")
	events := make(chan fsnotify.Event, 4)
	errs := make(chan error)
	events <- fsnotify.Event{Name: filepath.Join("cards", "b.yaml"), Op: fsnotify.Write}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Create}

	ctx, cancel := context.WithCancel(context.Background())
	rendered := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, events, errs, target, 20*time.Millisecond, func() { rendered <- struct{}{} })
	}()

	select {
	case <-rendered:
	case <-time.After(2 * time.Second):
		t.Fatal("no render after a write to the watched file")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watchLoop: %v", err)
	}
	if n := len(rendered); n != 0 {
		t.Errorf("got %d extra renders, want one render per burst", n)
	}
}

func TestWatchLoopStopsWhenEventsClose(t *testing.T) {
	events := make(chan fsnotify.Event)
	close(events)
	err := watchLoop(context.Background(), events, nil, "a.yaml", time.Millisecond, func() {
		t.Error("render should not be called")
	})
	if err != nil {
		t.Fatalf("watchLoop: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run([]string{"paint"}); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"render", "watch", "inspect"} {
		if commands[name] == nil {
			t.Errorf("command %q not registered", name)
		}
	}
}
