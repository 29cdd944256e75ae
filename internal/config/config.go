// Package config loads the view engine's configuration from TOML and
// fans out change notifications through the notify subpackage.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/glintedit/glint/internal/geom"
	"github.com/glintedit/glint/internal/span"
)

// Config holds the engine settings.
type Config struct {
	// Theme is the name of the active theme.
	Theme string `toml:"theme"`

	// ThemeDir is a directory of theme files to load and watch.
	// Empty disables theme watching.
	ThemeDir string `toml:"theme_dir"`

	// ScrollAxis is "vertical" or "horizontal".
	ScrollAxis string `toml:"scroll_axis"`

	// Padding overrides the viewport's fixed prefetch margin in
	// offsets. Zero keeps the viewport default.
	Padding int64 `toml:"padding"`

	// MinimapEnabled shows the minimap.
	MinimapEnabled bool `toml:"minimap_enabled"`

	// MinimapScale is the number of document lines per minimap row.
	MinimapScale int `toml:"minimap_scale"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Theme:          "Default Dark",
		ScrollAxis:     "vertical",
		MinimapEnabled: true,
		MinimapScale:   8,
		LogLevel:       "info",
	}
}

// Load reads configuration from a TOML file, filling unset fields from
// the defaults. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.ScrollAxis {
	case "vertical", "horizontal":
	default:
		return fmt.Errorf("scroll_axis %q: %w", c.ScrollAxis, ErrInvalidValue)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidValue)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding %d: %w", c.Padding, ErrInvalidValue)
	}
	if c.MinimapScale < 1 {
		return fmt.Errorf("minimap_scale %d: %w", c.MinimapScale, ErrInvalidValue)
	}
	return nil
}

// Axis returns the configured scroll axis.
func (c Config) Axis() geom.Axis {
	if c.ScrollAxis == "horizontal" {
		return geom.Horizontal
	}
	return geom.Vertical
}

// PaddingOffset returns the padding override as an offset, or a negative
// value when unset.
func (c Config) PaddingOffset() span.Offset {
	if c.Padding == 0 {
		return -1
	}
	return span.Offset(c.Padding)
}
