// Package config loads cardshot card files.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/cardview/pkg/card"
	"github.com/go-drift/cardview/pkg/drawable"
	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

// Defaults applied when a file leaves a key out.
const (
	DefaultWidth      = 240
	DefaultHeight     = 140
	DefaultScale      = 1.0
	DefaultBackground = "#FFEEEEEE"
)

// Config is the on-disk card description.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas" toml:"canvas"`
	Platform PlatformConfig `yaml:"platform" toml:"platform"`
	Label    string         `yaml:"label,omitempty" toml:"label,omitempty"`
	Card     CardConfig     `yaml:"card" toml:"card"`
}

// CanvasConfig describes the output image.
type CanvasConfig struct {
	Width      int     `yaml:"width,omitempty" toml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty" toml:"height,omitempty"`
	Background string  `yaml:"background,omitempty" toml:"background,omitempty"`
	Scale      float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// PlatformConfig selects the host the card is drawn for.
type PlatformConfig struct {
	APILevel int    `yaml:"api_level,omitempty" toml:"api_level,omitempty"`
	Version  string `yaml:"version,omitempty" toml:"version,omitempty"`
}

// CardConfig mirrors card.Attributes. Pointer fields are optional.
type CardConfig struct {
	Background           string   `yaml:"background,omitempty" toml:"background,omitempty"`
	Radius               float64  `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Elevation            float64  `yaml:"elevation,omitempty" toml:"elevation,omitempty"`
	MaxElevation         float64  `yaml:"max_elevation,omitempty" toml:"max_elevation,omitempty"`
	UseCompatPadding     bool     `yaml:"use_compat_padding,omitempty" toml:"use_compat_padding,omitempty"`
	PreventCornerOverlap *bool    `yaml:"prevent_corner_overlap,omitempty" toml:"prevent_corner_overlap,omitempty"`
	ContentPadding       float64  `yaml:"content_padding,omitempty" toml:"content_padding,omitempty"`
	ContentPaddingLeft   *float64 `yaml:"content_padding_left,omitempty" toml:"content_padding_left,omitempty"`
	ContentPaddingTop    *float64 `yaml:"content_padding_top,omitempty" toml:"content_padding_top,omitempty"`
	ContentPaddingRight  *float64 `yaml:"content_padding_right,omitempty" toml:"content_padding_right,omitempty"`
	ContentPaddingBottom *float64 `yaml:"content_padding_bottom,omitempty" toml:"content_padding_bottom,omitempty"`

	Corners       CornerSet `yaml:"corners" toml:"corners"`
	Edges         EdgeSet   `yaml:"edges" toml:"edges"`
	CornerShadows CornerSet `yaml:"corner_shadows" toml:"corner_shadows"`
}

// CornerSet toggles individual corners. Missing keys are on.
type CornerSet struct {
	TopLeft     *bool `yaml:"top_left,omitempty" toml:"top_left,omitempty"`
	TopRight    *bool `yaml:"top_right,omitempty" toml:"top_right,omitempty"`
	BottomLeft  *bool `yaml:"bottom_left,omitempty" toml:"bottom_left,omitempty"`
	BottomRight *bool `yaml:"bottom_right,omitempty" toml:"bottom_right,omitempty"`
}

// EdgeSet toggles individual edges. Missing keys are on.
type EdgeSet struct {
	Left   *bool `yaml:"left,omitempty" toml:"left,omitempty"`
	Top    *bool `yaml:"top,omitempty" toml:"top,omitempty"`
	Right  *bool `yaml:"right,omitempty" toml:"right,omitempty"`
	Bottom *bool `yaml:"bottom,omitempty" toml:"bottom,omitempty"`
}

// Resolved contains validated values ready to draw.
type Resolved struct {
	Path       string
	Width      int
	Height     int
	Scale      float64
	Background graphics.Color
	Label      string
	Platform   card.Platform
	Attributes card.Attributes
}

// Load reads and decodes the card file at path. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig, path, err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext (".toml", or YAML for
// anything else).
func Decode(data []byte, ext string) (*Config, error) {
	var cfg Config
	if strings.EqualFold(ext, ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		return &cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads the file at path and applies defaults and validation.
func Resolve(path string) (*Resolved, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	res, err := cfg.Resolve()
	if err != nil {
		return nil, errors.Wrap("config.Resolve", errors.KindConfig, path, err)
	}
	res.Path = path
	return res, nil
}

// Resolve applies defaults to cfg and validates it.
func (cfg *Config) Resolve() (*Resolved, error) {
	width := cfg.Canvas.Width
	if width == 0 {
		width = DefaultWidth
	}
	height := cfg.Canvas.Height
	if height == 0 {
		height = DefaultHeight
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", width, height)
	}
	scale := cfg.Canvas.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 {
		return nil, fmt.Errorf("canvas scale must be positive, got %v", scale)
	}

	bgText := strings.TrimSpace(cfg.Canvas.Background)
	if bgText == "" {
		bgText = DefaultBackground
	}
	background, err := graphics.ParseColor(bgText)
	if err != nil {
		return nil, fmt.Errorf("canvas.background: %w", err)
	}

	attrs, err := cfg.Card.attributes()
	if err != nil {
		return nil, err
	}

	platform := card.Platform{
		APILevel: cfg.Platform.APILevel,
		Version:  strings.TrimSpace(cfg.Platform.Version),
	}
	if platform.APILevel < 0 {
		return nil, fmt.Errorf("platform.api_level must not be negative, got %d", platform.APILevel)
	}
	if platform.APILevel == 0 && platform.Version == "" {
		platform = card.DefaultPlatform()
	}

	return &Resolved{
		Width:      width,
		Height:     height,
		Scale:      scale,
		Background: background,
		Label:      cfg.Label,
		Platform:   platform,
		Attributes: attrs,
	}, nil
}

func (c CardConfig) attributes() (card.Attributes, error) {
	attrs := card.DefaultAttributes()
	if text := strings.TrimSpace(c.Background); text != "" {
		col, err := graphics.ParseColor(text)
		if err != nil {
			return attrs, fmt.Errorf("card.background: %w", err)
		}
		attrs.BackgroundColor = col
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"radius", c.Radius},
		{"elevation", c.Elevation},
		{"max_elevation", c.MaxElevation},
		{"content_padding", c.ContentPadding},
	} {
		if f.value < 0 {
			return attrs, fmt.Errorf("card.%s must not be negative, got %v", f.name, f.value)
		}
	}

	attrs.CornerRadius = c.Radius
	attrs.Elevation = c.Elevation
	attrs.MaxElevation = c.MaxElevation
	attrs.UseCompatPadding = c.UseCompatPadding
	if c.PreventCornerOverlap != nil {
		attrs.PreventCornerOverlap = *c.PreventCornerOverlap
	}
	attrs.ContentPadding = c.ContentPadding
	attrs.ContentPaddingLeft = c.ContentPaddingLeft
	attrs.ContentPaddingTop = c.ContentPaddingTop
	attrs.ContentPaddingRight = c.ContentPaddingRight
	attrs.ContentPaddingBottom = c.ContentPaddingBottom
	attrs.Corners = c.Corners.mask()
	attrs.EdgeShadows = c.Edges.mask()
	attrs.CornerShadows = c.CornerShadows.mask()
	return attrs, nil
}

func (s CornerSet) mask() drawable.Corner {
	return drawable.CornersOf(enabled(s.TopLeft), enabled(s.TopRight), enabled(s.BottomLeft), enabled(s.BottomRight))
}

func (s EdgeSet) mask() drawable.Edge {
	return drawable.EdgesOf(enabled(s.Left), enabled(s.Top), enabled(s.Right), enabled(s.Bottom))
}

func enabled(b *bool) bool {
	return b == nil || *b
}
