package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// TestLoadDefaults checks the embedded document decodes to the demo constants.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d, expected 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.TPS != 60 {
		t.Errorf("tps = %d, expected 60", cfg.TPS)
	}
	if cfg.Orbs.Count != 12 {
		t.Errorf("orbs.count = %d, expected 12", cfg.Orbs.Count)
	}
	if cfg.Orbs.SpinDuration != 2500*time.Millisecond {
		t.Errorf("orbs.spin_duration = %v, expected 2.5s", cfg.Orbs.SpinDuration)
	}
	if cfg.Orbs.Arrival != 2 {
		t.Errorf("orbs.arrival = %v, expected 2", cfg.Orbs.Arrival)
	}
	if cfg.Sparks.Count != 80 || cfg.Sparks.Life != 255 || cfg.Sparks.Fade != 6 {
		t.Errorf("sparks = %+v", cfg.Sparks)
	}
	if len(cfg.Sparks.Palette) != 3 {
		t.Errorf("sparks.palette has %d colours, expected 3", len(cfg.Sparks.Palette))
	}
	if cfg.Image.Height != 300 || cfg.Image.PlaceholderSize != 200 {
		t.Errorf("image = %+v", cfg.Image)
	}
	if cfg.Image.MaxBytes != 32<<20 {
		t.Errorf("image.max_bytes = %d, expected 32MiB", cfg.Image.MaxBytes)
	}
	if got := cfg.Image.PlaceholderColor; got != (Color{R: 200, G: 50, B: 50}) {
		t.Errorf("placeholder colour = %v, expected #c83232", got)
	}
	if got := cfg.Colors.Background; got != (Color{R: 10, G: 10, B: 10}) {
		t.Errorf("background = %v, expected #0a0a0a", got)
	}

	cx, cy := cfg.Center()
	if cx != 400 || cy != 300 {
		t.Errorf("Center() = (%v, %v), expected (400, 300)", cx, cy)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#ffc832", Color{R: 255, G: 200, B: 50}, false},
		{"without hash", "ff6400", Color{R: 255, G: 100, B: 0}, false},
		{"upper case", "#0A0A0A", Color{R: 10, G: 10, B: 10}, false},
		{"too short", "#fff", Color{}, true},
		{"not hex", "#gggggg", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{R: 255, G: 200, B: 50}
	got := c.WithAlpha(128)
	if got.R != 255 || got.G != 200 || got.B != 50 || got.A != 128 {
		t.Errorf("WithAlpha(128) = %+v", got)
	}
	if c.String() != "#ffc832" {
		t.Errorf("String() = %q, expected #ffc832", c.String())
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	src := strings.Replace(string(defaultsYAML), `background: "#0a0a0a"`, `background: "nope"`, 1)
	if _, err := Parse([]byte(src)); err == nil {
		t.Fatal("Parse() accepted a malformed colour")
	}
}

func TestValidate(t *testing.T) {
	base, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"no orbs", func(c *Config) { c.Orbs.Count = 0 }},
		{"inverted orb radius", func(c *Config) { c.Orbs.MinRadius, c.Orbs.MaxRadius = 6, 3 }},
		{"zero fade", func(c *Config) { c.Sparks.Fade = 0 }},
		{"empty palette", func(c *Config) { c.Sparks.Palette = nil }},
		{"zero image height", func(c *Config) { c.Image.Height = 0 }},
		{"enabled sound without rate", func(c *Config) { c.Sound.SampleRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Sparks.Palette = append([]Color(nil), base.Sparks.Palette...)
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("defaults Validate() = %v", err)
	}
}
