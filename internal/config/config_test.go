package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/glintedit/glint/internal/geom"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glint.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
theme = "Monokai"
padding = 512
minimap_enabled = false
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "Monokai" || cfg.Padding != 512 || cfg.MinimapEnabled || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.ScrollAxis != "vertical" || cfg.MinimapScale != 8 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, `theme = [broken`)

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad axis", func(c *Config) { c.ScrollAxis = "diagonal" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative padding", func(c *Config) { c.Padding = -1 }},
		{"zero minimap scale", func(c *Config) { c.MinimapScale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("err = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestAxisMapping(t *testing.T) {
	cfg := Default()
	if cfg.Axis() != geom.Vertical {
		t.Errorf("default axis = %s", cfg.Axis())
	}
	cfg.ScrollAxis = "horizontal"
	if cfg.Axis() != geom.Horizontal {
		t.Errorf("axis = %s, want horizontal", cfg.Axis())
	}
}

func TestPaddingOffsetUnset(t *testing.T) {
	cfg := Default()
	if got := cfg.PaddingOffset(); got >= 0 {
		t.Errorf("unset padding = %d, want negative", got)
	}
	cfg.Padding = 128
	if got := cfg.PaddingOffset(); got != 128 {
		t.Errorf("padding = %d, want 128", got)
	}
}
