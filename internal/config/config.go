package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/piverse/internal/compose"
	"github.com/iburimskiy/piverse/internal/view"
)

// EnvLogLevel overrides Logging.Level when set.
const EnvLogLevel = "PIVERSE_LOG_LEVEL"

// Config holds everything a session starts from. Nothing is written back
// during a session; every start resets to these values.
type Config struct {
	// View opened first: radial, cloud, pattern or art.
	View string `yaml:"view"`

	Window  WindowConfig    `yaml:"window"`
	Digits  DigitsConfig    `yaml:"digits"`
	Pattern view.Parameters `yaml:"pattern"`
	Art     ArtConfig       `yaml:"art"`
	Audio   AudioConfig     `yaml:"audio"`
	Logging LoggingConfig   `yaml:"logging"`
}

type WindowConfig struct {
	Title string `yaml:"title"`
	// Scale multiplies the canvas size for the window.
	Scale float64 `yaml:"scale"`
	TPS   int     `yaml:"tps"`
}

type DigitsConfig struct {
	// Count of π digits to generate. Zero keeps the fixed sequence.
	Count int `yaml:"count"`
}

type ArtConfig struct {
	ToolRadius float64 `yaml:"tool_radius"`
	Tool       string  `yaml:"tool"`
}

type AudioConfig struct {
	SampleRate int    `yaml:"sample_rate"`
	Note       string `yaml:"note"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		View: view.NamePattern,
		Window: WindowConfig{
			Title: "PiVerse",
			Scale: 1,
			TPS:   60,
		},
		Pattern: view.DefaultParameters(),
		Art: ArtConfig{
			ToolRadius: 100,
			Tool:       "circle",
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Note:       "250ms",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
}

// Validate rejects values no view can start from.
func (c *Config) Validate() error {
	known := false
	for _, n := range view.Names {
		known = known || n == c.View
	}
	if !known {
		return fmt.Errorf("config: unknown view %q", c.View)
	}
	if c.Pattern.Radius < view.MinRadius {
		return fmt.Errorf("config: pattern radius %v below %d", c.Pattern.Radius, view.MinRadius)
	}
	if c.Pattern.Segments < view.MinSegments {
		return fmt.Errorf("config: pattern segments %d below %d", c.Pattern.Segments, view.MinSegments)
	}
	if c.Pattern.Speed < view.MinSpeed {
		return fmt.Errorf("config: pattern speed %v below %v", c.Pattern.Speed, view.MinSpeed)
	}
	if _, ok := compose.ParseKind(c.Art.Tool); !ok {
		return fmt.Errorf("config: unknown art tool %q", c.Art.Tool)
	}
	if c.Art.ToolRadius < compose.MinRadius {
		return fmt.Errorf("config: art tool radius %v below %d", c.Art.ToolRadius, compose.MinRadius)
	}
	if c.Digits.Count < 0 {
		return fmt.Errorf("config: negative digit count %d", c.Digits.Count)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("config: window scale must be positive")
	}
	if _, err := c.NoteDuration(); err != nil {
		return err
	}
	return nil
}

// NoteDuration parses Audio.Note.
func (c *Config) NoteDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Audio.Note)
	if err != nil {
		return 0, fmt.Errorf("config: audio note: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: audio note must be positive")
	}
	return d, nil
}
