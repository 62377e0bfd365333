package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/cardview/pkg/card"
	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

const yamlCard = `
canvas: {width: 200, height: 100, background: "#FF336699", scale: 2}
platform: {api_level: 19}
label: "Hello"
card:
  background: "#FF0000"
  radius: 8
  elevation: 4
  max_elevation: 6
  use_compat_padding: true
  prevent_corner_overlap: false
  content_padding: 8
  content_padding_top: 2
  corners: {top_left: false}
  edges: {left: false, top: true}
`

const tomlCard = `
label = "Hello"

[canvas]
width = 200
height = 100
scale = 2.0

[platform]
version = "4.4"

[card]
radius = 8.0
elevation = 4.0

[card.edges]
bottom = false

[card.corner_shadows]
bottom_right = false
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveYAML(t *testing.T) {
	res, err := Resolve(writeFile(t, "card.yaml", yamlCard))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Width != 200 || res.Height != 100 || res.Scale != 2 {
		t.Errorf("canvas = %dx%d@%v, want 200x100@2", res.Width, res.Height, res.Scale)
	}
	if res.Background != graphics.Color(0xFF336699) {
		t.Errorf("background = %v", res.Background)
	}
	if res.Label != "Hello" {
		t.Errorf("label = %q", res.Label)
	}
	if res.Platform != (card.Platform{APILevel: 19}) {
		t.Errorf("platform = %v", res.Platform)
	}

	a := res.Attributes
	if a.BackgroundColor != graphics.Color(0xFFFF0000) {
		t.Errorf("card background = %v", a.BackgroundColor)
	}
	if a.CornerRadius != 8 || a.Elevation != 4 || a.MaxElevation != 6 {
		t.Errorf("radius/elevation/max = %v/%v/%v", a.CornerRadius, a.Elevation, a.MaxElevation)
	}
	if !a.UseCompatPadding || a.PreventCornerOverlap {
		t.Errorf("compat = %v, prevent = %v", a.UseCompatPadding, a.PreventCornerOverlap)
	}
	if got, want := a.ResolvedContentPadding(), graphics.EdgeInsetsLTRB(8, 2, 8, 8); got != want {
		t.Errorf("content padding = %+v, want %+v", got, want)
	}
	if want := drawable.CornersAll &^ drawable.CornerTopLeft; a.Corners != want {
		t.Errorf("corners = %v, want %v", a.Corners, want)
	}
	if want := drawable.EdgesAll &^ drawable.EdgeLeft; a.EdgeShadows != want {
		t.Errorf("edges = %v, want %v", a.EdgeShadows, want)
	}
	if a.CornerShadows != drawable.CornersAll {
		t.Errorf("corner shadows = %v, want all", a.CornerShadows)
	}
}

func TestResolveTOML(t *testing.T) {
	res, err := Resolve(writeFile(t, "card.toml", tomlCard))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Width != 200 || res.Height != 100 || res.Scale != 2 {
		t.Errorf("canvas = %dx%d@%v, want 200x100@2", res.Width, res.Height, res.Scale)
	}
	if res.Platform.Version != "4.4" || card.TierFor(res.Platform) != card.TierJellybeanMR1 {
		t.Errorf("platform = %v", res.Platform)
	}
	a := res.Attributes
	if a.CornerRadius != 8 || a.Elevation != 4 {
		t.Errorf("radius/elevation = %v/%v", a.CornerRadius, a.Elevation)
	}
	if !a.PreventCornerOverlap {
		t.Error("prevent_corner_overlap should default to true")
	}
	if want := drawable.EdgesAll &^ drawable.EdgeBottom; a.EdgeShadows != want {
		t.Errorf("edges = %v, want %v", a.EdgeShadows, want)
	}
	if want := drawable.CornersAll &^ drawable.CornerBottomRight; a.CornerShadows != want {
		t.Errorf("corner shadows = %v, want %v", a.CornerShadows, want)
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Decode(nil, ".yaml")
	if err != nil {
		t.Fatalf("Decode(empty): %v", err)
	}
	res, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Width != DefaultWidth || res.Height != DefaultHeight || res.Scale != DefaultScale {
		t.Errorf("canvas = %dx%d@%v", res.Width, res.Height, res.Scale)
	}
	if res.Background.String() != DefaultBackground {
		t.Errorf("background = %v, want %s", res.Background, DefaultBackground)
	}
	if res.Platform != card.DefaultPlatform() {
		t.Errorf("platform = %v, want default", res.Platform)
	}
	if res.Attributes != card.DefaultAttributes() {
		t.Errorf("attributes = %+v, want defaults", res.Attributes)
	}
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"negative width", "a.yaml", "canvas: {width: -1}", "canvas size"},
		{"negative scale", "a.yaml", "canvas: {scale: -2}", "canvas scale"},
		{"bad background", "a.yaml", `canvas: {background: "blue"}`, "canvas.background"},
		{"bad card color", "a.yaml", `card: {background: "#12345"}`, "card.background"},
		{"negative radius", "a.yaml", "card: {radius: -3}", "card.radius"},
		{"negative api level", "a.yaml", "platform: {api_level: -1}", "api_level"},
		{"unknown yaml key", "a.yaml", "card: {shadow: 3}", "failed to parse yaml"},
		{"malformed yaml", "a.yml", "card: [", "failed to parse yaml"},
		{"unknown toml key", "a.toml", "[card]\nshadow = 3.0\n", "failed to parse toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Resolve(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			var ce *errors.CardError
			if !stderrors.As(err, &ce) {
				t.Fatalf("error %T is not a *CardError", err)
			}
			if ce.Kind != errors.KindConfig || ce.Path != path {
				t.Errorf("kind = %v, path = %q", ce.Kind, ce.Path)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) = %v, want ErrNotExist", err)
	}
}
