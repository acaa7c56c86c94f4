package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/physics"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds reverb session configuration.
type Config struct {
	Session SessionConfig `toml:"session"`
	Canvas  CanvasConfig  `toml:"canvas"`
	Audio   AudioConfig   `toml:"audio"`
	Timing  TimingConfig  `toml:"timing"`
}

// SessionConfig is fixed for the lifetime of a scene.
type SessionConfig struct {
	LinkColor   string  `toml:"link_color"` // tcell color name or #rrggbb
	MaxNodeSize float64 `toml:"max_node_size"`
}

// CanvasConfig sets the simulation area in canvas units.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// AudioConfig controls the speaker.
type AudioConfig struct {
	Muted      bool `toml:"muted"`
	SampleRate int  `toml:"sample_rate"`
}

// TimingConfig controls the main loop rates.
type TimingConfig struct {
	TickMs  int `toml:"tick_ms"`
	FrameMs int `toml:"frame_ms"`
}

const (
	defaultTickMs  = int(constant.TickInterval / time.Millisecond)
	defaultFrameMs = int(constant.FrameUpdateInterval / time.Millisecond)
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Session: SessionConfig{LinkColor: "black", MaxNodeSize: 30},
		Canvas:  CanvasConfig{Width: 600, Height: 600},
		Audio:   AudioConfig{Muted: false, SampleRate: constant.AudioSampleRate},
		Timing:  TimingConfig{TickMs: defaultTickMs, FrameMs: defaultFrameMs},
	}
}

// DefaultPath returns the config file location under the user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "reverb", "config.toml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// ApplyEnv overrides audio settings from REVERB_MUTED and REVERB_SAMPLE_RATE.
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if muted := os.Getenv("REVERB_MUTED"); muted != "" {
		if val, err := strconv.ParseBool(muted); err == nil {
			c.Audio.Muted = val
		}
	}
	if rate := os.Getenv("REVERB_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}
}

// Validate checks every field, wrapping ErrInvalidConfig
func (c *Config) Validate() error {
	if _, err := c.LinkRGB(); err != nil {
		return err
	}
	if c.Session.MaxNodeSize <= 0 {
		return fmt.Errorf("%w: max_node_size must be positive, got %g", ErrInvalidConfig, c.Session.MaxNodeSize)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %gx%g", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	if c.Timing.TickMs <= 0 || c.Timing.FrameMs <= 0 {
		return fmt.Errorf("%w: tick_ms and frame_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// LinkRGB resolves link_color
func (c *Config) LinkRGB() (core.RGB, error) {
	col := tcell.GetColor(c.Session.LinkColor)
	if col == tcell.ColorDefault {
		return core.RGB{}, fmt.Errorf("%w: unknown link_color %q", ErrInvalidConfig, c.Session.LinkColor)
	}
	r, g, b := col.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Bounds returns the canvas as physics bounds
func (c *Config) Bounds() physics.Bounds {
	return physics.Bounds{Width: c.Canvas.Width, Height: c.Canvas.Height}
}

// TickInterval returns the fixed simulation step
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// FrameInterval returns the render period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Timing.FrameMs) * time.Millisecond
}
