package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Control.Controllable || cfg.Control.SpeedFactor != 1.0 {
		t.Errorf("control defaults = %+v", cfg.Control)
	}
	if cfg.GlyphRune() != '@' {
		t.Errorf("glyph = %q", cfg.GlyphRune())
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "steer.toml", `
[control]
controllable = false
speed_factor = 3.5

[loop]
frame_interval = "20ms"

[input]
initial_hold = "550ms"
hold_timeout = "150ms"

[logging]
level = "debug"
format = "console"

[entity]
glyph = "▲"
start = [1.0, -2.0, 0.0]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Control.Controllable || cfg.Control.SpeedFactor != 3.5 {
		t.Errorf("control = %+v", cfg.Control)
	}
	if cfg.Loop.FrameInterval != 20*time.Millisecond {
		t.Errorf("frame_interval = %v", cfg.Loop.FrameInterval)
	}
	// Unset keys keep defaults
	if cfg.Loop.MaxDelta != 100*time.Millisecond {
		t.Errorf("max_delta = %v", cfg.Loop.MaxDelta)
	}
	if cfg.Input.InitialHold != 550*time.Millisecond {
		t.Errorf("initial_hold = %v", cfg.Input.InitialHold)
	}
	if cfg.Input.HoldTimeout != 150*time.Millisecond {
		t.Errorf("hold_timeout = %v", cfg.Input.HoldTimeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.GlyphRune() != '▲' {
		t.Errorf("glyph = %q", cfg.GlyphRune())
	}
	if cfg.Entity.Start != [3]float64{1, -2, 0} {
		t.Errorf("start = %v", cfg.Entity.Start)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "steer.yaml", `
control:
  controllable: true
  speed_factor: 0
loop:
  max_delta: 50ms
audio:
  enabled: false
entity:
  name: scout
  start: [0.5, 0.5, 0.0]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Control.Controllable || cfg.Control.SpeedFactor != 0 {
		t.Errorf("control = %+v", cfg.Control)
	}
	if cfg.Loop.MaxDelta != 50*time.Millisecond {
		t.Errorf("max_delta = %v", cfg.Loop.MaxDelta)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
	if cfg.Entity.Name != "scout" || cfg.Entity.Start != [3]float64{0.5, 0.5, 0} {
		t.Errorf("entity = %+v", cfg.Entity)
	}
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Control != Default().Control {
		t.Errorf("control = %+v", cfg.Control)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"toml", "bad.toml", "[control]\nspeed = 2.0\n"},
		{"yaml", "bad.yaml", "control:\n  speed: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error for unknown key")
			}
			if !strings.Contains(err.Error(), "speed") {
				t.Errorf("error %q does not name the key", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	_, err := Load(writeFile(t, "steer.json", "{}"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := Load(writeFile(t, "broken.toml", "[control\n")); err == nil {
		t.Error("expected parse error")
	}

	if _, err := Load(writeFile(t, "invalid.toml", "[loop]\nframe_interval = \"0s\"\n")); err == nil {
		t.Error("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"nan speed", func(c *Config) { c.Control.SpeedFactor = math.NaN() }},
		{"inf speed", func(c *Config) { c.Control.SpeedFactor = math.Inf(1) }},
		{"zero frame interval", func(c *Config) { c.Loop.FrameInterval = 0 }},
		{"negative max delta", func(c *Config) { c.Loop.MaxDelta = -time.Millisecond }},
		{"zero initial hold", func(c *Config) { c.Input.InitialHold = 0 }},
		{"zero hold timeout", func(c *Config) { c.Input.HoldTimeout = 0 }},
		{"empty glyph", func(c *Config) { c.Entity.Glyph = "" }},
		{"long glyph", func(c *Config) { c.Entity.Glyph = "@@" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Zero and negative speeds are legal
	cfg := Default()
	cfg.Control.SpeedFactor = -2
	if err := cfg.Validate(); err != nil {
		t.Errorf("negative speed rejected: %v", err)
	}
}
