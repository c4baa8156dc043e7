// Package config holds the defaults xcsvplot applies when a flag is not
// given, optionally read from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/paul-breen/xcsv-plot/src/logging"
)

// Config is the on-disk configuration.
type Config struct {
	DPI             float64   `yaml:"dpi"`
	FigSize         []float64 `yaml:"figsize"`
	LabelKey        string    `yaml:"label_key"`
	TitleKey        string    `yaml:"title_key"`
	CaptionKey      string    `yaml:"caption_key"`
	LogLevel        string    `yaml:"log_level"`
	BackgroundAlpha float64   `yaml:"background_alpha"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DPI:             100,
		FigSize:         []float64{8, 6},
		TitleKey:        "title",
		CaptionKey:      "citation",
		LogLevel:        "info",
		BackgroundAlpha: 0.5,
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath is $XDG_CONFIG_HOME/xcsvplot/config.yaml, falling back to
// ~/.config. It is empty when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "xcsvplot", "config.yaml")
}

// LoadOrDefault loads path if given. Otherwise it loads the file at
// DefaultPath when one exists, and returns the defaults when it does not.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	def := DefaultPath()
	if def == "" {
		return Default(), nil
	}
	if _, err := os.Stat(def); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	logging.Debugf("using config %s", def)
	return Load(def)
}

// Validate reports values no plot could be drawn with.
func (c *Config) Validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %v", c.DPI)
	}
	if len(c.FigSize) != 2 || c.FigSize[0] <= 0 || c.FigSize[1] <= 0 {
		return fmt.Errorf("figsize must be two positive numbers, got %v", c.FigSize)
	}
	if c.BackgroundAlpha <= 0 || c.BackgroundAlpha > 1 {
		return fmt.Errorf("background_alpha must be within (0,1], got %v", c.BackgroundAlpha)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
