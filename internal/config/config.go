// Package config holds viewer settings, loaded from an optional YAML file
// and overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the viewer's settings file, with flag overrides applied on top.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// ResizeQuietMs is the resize debounce period in milliseconds.
	ResizeQuietMs int     `yaml:"resizeQuietMs"`
	DragDeadZone  float64 `yaml:"dragDeadZone"`
	Zoom          float64 `yaml:"zoom"`
	// FocusSeconds enables focus pans toward each annotation's anchor.
	FocusSeconds float64 `yaml:"focusSeconds"`

	ShowFPS     bool `yaml:"showFPS"`
	ShowRegions bool `yaml:"showRegions"`
	Watch       bool `yaml:"watch"`
	Debug       bool `yaml:"debug"`

	LogDir        string `yaml:"logDir"`
	LogLevel      string `yaml:"logLevel"`
	ScreenshotDir string `yaml:"screenshotDir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:         "vista",
		Width:         1280,
		Height:        720,
		ResizeQuietMs: 50,
		DragDeadZone:  4,
		Zoom:          1,
		LogDir:        "debug",
		LogLevel:      "info",
		ScreenshotDir: "screenshots",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("config: zoom %v must be positive", c.Zoom)
	}
	if c.ResizeQuietMs < 0 {
		return fmt.Errorf("config: resizeQuietMs %d must not be negative", c.ResizeQuietMs)
	}
	return nil
}

// ResizeQuiet returns the debounce period as a duration. Zero is mapped to
// an immediate (negative) period so it is not mistaken for "use default".
func (c Config) ResizeQuiet() time.Duration {
	if c.ResizeQuietMs == 0 {
		return -1
	}
	return time.Duration(c.ResizeQuietMs) * time.Millisecond
}
