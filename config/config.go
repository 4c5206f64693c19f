package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/steer/parameter"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Control ControlConfig `toml:"control" yaml:"control"`
	Loop    LoopConfig    `toml:"loop" yaml:"loop"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Entity  EntityConfig  `toml:"entity" yaml:"entity"`
}

// ControlConfig holds the two editable fields of the controllable behavior
type ControlConfig struct {
	Controllable bool    `toml:"controllable" yaml:"controllable"`
	SpeedFactor  float64 `toml:"speed_factor" yaml:"speed_factor"`
}

type LoopConfig struct {
	FrameInterval time.Duration `toml:"frame_interval" yaml:"frame_interval"`
	MaxDelta      time.Duration `toml:"max_delta" yaml:"max_delta"` // clamp for a single frame after a stall
}

type InputConfig struct {
	InitialHold time.Duration `toml:"initial_hold" yaml:"initial_hold"` // bridges the autorepeat delay
	HoldTimeout time.Duration `toml:"hold_timeout" yaml:"hold_timeout"` // window between repeats
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Level   string `toml:"level" yaml:"level"`
	Format  string `toml:"format" yaml:"format"` // "json" or "console"
	File    string `toml:"file" yaml:"file"`
	MaxSize int64  `toml:"max_size" yaml:"max_size"` // bytes before the file is rotated aside
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"` // base-2 exponent, 0 = unity
}

type EntityConfig struct {
	Name  string     `toml:"name" yaml:"name"`
	Glyph string     `toml:"glyph" yaml:"glyph"`
	Start [3]float64 `toml:"start" yaml:"start"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Control: ControlConfig{
			Controllable: true,
			SpeedFactor:  parameter.PlayerSpeedFactor,
		},
		Loop: LoopConfig{
			FrameInterval: parameter.FrameUpdateInterval,
			MaxDelta:      parameter.MaxFrameDelta,
		},
		Input: InputConfig{
			InitialHold: parameter.KeyInitialHold,
			HoldTimeout: parameter.KeyHoldTimeout,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "json",
			File:    filepath.Join("logs", "steer.log"),
			MaxSize: 10 * 1024 * 1024,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Entity: EntityConfig{
			Name:  parameter.PlayerName,
			Glyph: string(parameter.PlayerGlyph),
		},
	}
}

// Load reads a TOML or YAML file over the defaults, chosen by extension
// Unknown keys are rejected in both formats
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(data, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks values that would break the frame loop or the chain math
func (c *Config) Validate() error {
	if math.IsNaN(c.Control.SpeedFactor) || math.IsInf(c.Control.SpeedFactor, 0) {
		return fmt.Errorf("control.speed_factor must be finite, got %v", c.Control.SpeedFactor)
	}
	if c.Loop.FrameInterval <= 0 {
		return fmt.Errorf("loop.frame_interval must be positive, got %v", c.Loop.FrameInterval)
	}
	if c.Loop.MaxDelta <= 0 {
		return fmt.Errorf("loop.max_delta must be positive, got %v", c.Loop.MaxDelta)
	}
	if c.Input.InitialHold <= 0 {
		return fmt.Errorf("input.initial_hold must be positive, got %v", c.Input.InitialHold)
	}
	if c.Input.HoldTimeout <= 0 {
		return fmt.Errorf("input.hold_timeout must be positive, got %v", c.Input.HoldTimeout)
	}
	if utf8.RuneCountInString(c.Entity.Glyph) != 1 {
		return fmt.Errorf("entity.glyph must be a single character, got %q", c.Entity.Glyph)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// GlyphRune returns the entity glyph as a rune, valid after Validate
func (c *Config) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Entity.Glyph)
	return r
}
