// Package config loads the optional YAML application configuration: the
// window geometry, title, default font, log level and a minimum toolkit
// version constraint. Hosts may equally construct windows directly; the
// config path exists so demos and tools stay declarative.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/TomekTTX/sdlw/pkg/graphics"
)

// Default window parameters applied when a field is absent.
const (
	defaultWidth    = 800
	defaultHeight   = 600
	defaultTitle    = "sdlw"
	defaultFont     = "mono"
	defaultFontSize = 14
)

// Config is the root of a configuration file.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Log    LogConfig    `yaml:"log"`
	// Requires is an optional minimum toolkit version (e.g. "v0.1.0").
	Requires string `yaml:"requires,omitempty"`
}

// WindowConfig describes the window to construct.
type WindowConfig struct {
	Width  int        `yaml:"width" validate:"gt=0,lte=16384"`
	Height int        `yaml:"height" validate:"gt=0,lte=16384"`
	Title  string     `yaml:"title"`
	Font   FontConfig `yaml:"font"`
}

// FontConfig selects the window's default typeface.
type FontConfig struct {
	Family string  `yaml:"family" validate:"oneof=sans sans-bold italic mono mono-bold smallcaps"`
	Size   float64 `yaml:"size" validate:"gt=0,lte=256"`
}

// LogConfig controls run-loop logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  defaultWidth,
			Height: defaultHeight,
			Title:  defaultTitle,
			Font:   FontConfig{Family: defaultFont, Size: defaultFontSize},
		},
	}
}

// Load reads and validates a configuration file. A missing path yields
// the defaults rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes configuration bytes, fills defaults and validates.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = defaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = defaultHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = defaultTitle
	}
	if c.Window.Font.Family == "" {
		c.Window.Font.Family = defaultFont
	}
	if c.Window.Font.Size == 0 {
		c.Window.Font.Size = defaultFontSize
	}
}

// Validate checks field constraints and the version requirement syntax.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Requires != "" && !semver.IsValid(c.Requires) {
		return fmt.Errorf("invalid config: requires %q is not a semantic version", c.Requires)
	}
	return nil
}

// CheckRequires verifies the running toolkit version satisfies the
// config's minimum version constraint.
func (c *Config) CheckRequires(version string) error {
	if c.Requires == "" {
		return nil
	}
	if semver.Compare(version, c.Requires) < 0 {
		return fmt.Errorf("config requires toolkit %s, running %s", c.Requires, version)
	}
	return nil
}

// FontFamily resolves the configured family name.
func (c *Config) FontFamily() graphics.FontFamily {
	family, ok := graphics.FamilyByName(c.Window.Font.Family)
	if !ok {
		family = graphics.FamilyMono
	}
	return family
}
