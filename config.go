package sprig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the desktop host started by Run.
type RunConfig struct {
	Title     string `yaml:"title,omitempty"`
	Width     int    `yaml:"width,omitempty"`
	Height    int    `yaml:"height,omitempty"`
	Resizable bool   `yaml:"resizable,omitempty"`
	// ShowFPS draws the FPS/TPS overlay in the top-left corner.
	ShowFPS bool `yaml:"show_fps,omitempty"`
	// ClearColor is a theme name or color literal; empty keeps the app's.
	ClearColor string `yaml:"clear_color,omitempty"`
	// ThemeFile is an optional TOML theme (see ParseTheme).
	ThemeFile     string `yaml:"theme_file,omitempty"`
	ScreenshotDir string `yaml:"screenshot_dir,omitempty"`
	// TestScript is an optional JSON test script (see LoadTestScript).
	TestScript string `yaml:"test_script,omitempty"`
	Debug      bool   `yaml:"debug,omitempty"`
}

// DefaultRunConfig returns the configuration Run uses for unset fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "sprig",
		Width:         800,
		Height:        600,
		Resizable:     true,
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig reads a YAML run configuration if present. A missing file
// yields the defaults; fields absent from the file keep their default.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// withDefaults fills zero-valued fields from DefaultRunConfig.
func (c *RunConfig) withDefaults() {
	def := DefaultRunConfig()
	if strings.TrimSpace(c.Title) == "" {
		c.Title = def.Title
	}
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = def.ScreenshotDir
	}
}

// Validate reports configuration values Run cannot use.
func (c RunConfig) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window size %dx%d: must not be negative", c.Width, c.Height)
	}
	// Custom theme names are only known once the theme file is loaded.
	if c.ClearColor != "" && c.ThemeFile == "" {
		if _, ok := NewTheme().Lookup(c.ClearColor); !ok {
			return fmt.Errorf("clear_color %q: %w", c.ClearColor, ErrBadColor)
		}
	}
	return nil
}
