// Package config holds the demo's fixed settings. The values live in an
// embedded YAML document and are decoded once into an immutable Config that
// is handed to the components that need it.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window Window `yaml:"window"`
	TPS    int    `yaml:"tps"`
	Colors Colors `yaml:"colors"`
	Menu   Menu   `yaml:"menu"`
	Orbs   Orbs   `yaml:"orbs"`
	Sparks Sparks `yaml:"sparks"`
	Image  Image  `yaml:"image"`
	Sound  Sound  `yaml:"sound"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Colors struct {
	Background  Color `yaml:"background"`
	Orb         Color `yaml:"orb"`
	Text        Color `yaml:"text"`
	Button      Color `yaml:"button"`
	ButtonHover Color `yaml:"button_hover"`
	Flash       Color `yaml:"flash"`
}

// Menu describes the start screen.
type Menu struct {
	Title        string  `yaml:"title"`
	TitleGap     int     `yaml:"title_gap"`
	Label        string  `yaml:"label"`
	FontSize     float64 `yaml:"font_size"`
	ButtonWidth  int     `yaml:"button_width"`
	ButtonHeight int     `yaml:"button_height"`
	ButtonRadius float32 `yaml:"button_radius"`
}

// Orbs tunes the spin and implode phases.
type Orbs struct {
	Count          int           `yaml:"count"`
	Distance       float64       `yaml:"distance"`
	MinRadius      int           `yaml:"min_radius"`
	MaxRadius      int           `yaml:"max_radius"`
	Speed          float64       `yaml:"speed"`
	PulseRate      float64       `yaml:"pulse_rate"` // per millisecond
	PulseAmplitude float64       `yaml:"pulse_amplitude"`
	ImplodeSpin    float64       `yaml:"implode_spin"` // speed multiplier while collapsing
	ImplodeStep    float64       `yaml:"implode_step"` // pixels per tick
	Arrival        float64       `yaml:"arrival"`
	SpinDuration   time.Duration `yaml:"spin_duration"`
}

// Sparks tunes the explosion burst.
type Sparks struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Life     int     `yaml:"life"`
	Fade     int     `yaml:"fade"`
	MinSize  int     `yaml:"min_size"`
	MaxSize  int     `yaml:"max_size"`
	Palette  []Color `yaml:"palette"`
}

type Image struct {
	URL              string        `yaml:"url"`
	UserAgent        string        `yaml:"user_agent"`
	Height           int           `yaml:"height"`
	Timeout          time.Duration `yaml:"timeout"`
	MaxBytes         int64         `yaml:"max_bytes"`
	PlaceholderSize  int           `yaml:"placeholder_size"`
	PlaceholderColor Color         `yaml:"placeholder_color"`
}

type Sound struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sample_rate"`
	Duration   time.Duration `yaml:"duration"`
	Volume     float64       `yaml:"volume"` // base-2 exponent, 0 is unchanged
}

// Load decodes the embedded defaults.
func Load() (Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that would leave the demo unable to run.
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"window size", c.Window.Width > 0 && c.Window.Height > 0},
		{"tps", c.TPS > 0},
		{"menu font size", c.Menu.FontSize > 0},
		{"menu button size", c.Menu.ButtonWidth > 0 && c.Menu.ButtonHeight > 0},
		{"orbs count", c.Orbs.Count > 0},
		{"orbs radius range", c.Orbs.MinRadius > 0 && c.Orbs.MinRadius <= c.Orbs.MaxRadius},
		{"orbs implode step", c.Orbs.ImplodeStep > 0},
		{"orbs arrival", c.Orbs.Arrival >= 0},
		{"sparks count", c.Sparks.Count > 0},
		{"sparks speed range", c.Sparks.MinSpeed <= c.Sparks.MaxSpeed},
		{"sparks fade", c.Sparks.Fade > 0},
		{"sparks size range", c.Sparks.MinSize > 0 && c.Sparks.MinSize <= c.Sparks.MaxSize},
		{"sparks palette", len(c.Sparks.Palette) > 0},
		{"image height", c.Image.Height > 0},
		{"image placeholder size", c.Image.PlaceholderSize > 0},
		{"sound sample rate", !c.Sound.Enabled || c.Sound.SampleRate > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}
	return nil
}

// Center returns the middle of the window.
func (c Config) Center() (float64, float64) {
	return float64(c.Window.Width / 2), float64(c.Window.Height / 2)
}

// Color is an opaque RGB colour written as "#rrggbb".
type Color struct {
	R, G, B uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// WithAlpha returns the colour with a straight (non-premultiplied) alpha.
func (c Color) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// ParseColor accepts "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
