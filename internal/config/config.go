// Package config loads demo settings from config/demo.yaml, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"shapes-demo/internal/easing"
	"shapes-demo/internal/geometry"
	"shapes-demo/internal/logger"
)

// DefaultPath is the config file location relative to the working directory.
const DefaultPath = "config/demo.yaml"

// Window holds window/device settings.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Shape places one shape on the XY plane.
type Shape struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Z      float32 `yaml:"z,omitempty"`
	Radius float32 `yaml:"radius,omitempty"`
}

// Debug toggles the overlay lines that are off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// Config is the whole demo configuration.
type Config struct {
	Window      Window           `yaml:"window"`
	Animation   easing.Animation `yaml:"animation"`
	PaletteSize int              `yaml:"palette_size"`
	Seed        uint64           `yaml:"seed"`
	Star        Shape            `yaml:"star"`
	Circle      Shape            `yaml:"circle"`
	Font        string           `yaml:"font,omitempty"`
	LogPath     string           `yaml:"log_path"`
	Debug       Debug            `yaml:"debug"`
}

// Default returns the settings of the original demo: 800x600, 30 palette colours,
// star at (-1,0), unit circle at (1.5,0).
func Default() Config {
	return Config{
		Window: Window{
			Title:     "Shapes Demo Window",
			Width:     800,
			Height:    600,
			TargetFPS: 60,
		},
		Animation:   easing.DefaultAnimation(),
		PaletteSize: 30,
		Seed:        1,
		Star:        Shape{X: -1, Y: 0},
		Circle:      Shape{X: 1.5, Y: 0, Z: 1, Radius: 1},
		LogPath:     logger.DefaultPath,
	}
}

// Load reads path over Default(). A missing file is not an error. A malformed file
// returns Default() together with the decode error so the caller can report it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Environment variables that override the file.
const (
	EnvPath       = "SHAPES_CONFIG"
	EnvSeed       = "SHAPES_SEED"
	EnvFullscreen = "SHAPES_FULLSCREEN"
	EnvShowFPS    = "SHAPES_SHOW_FPS"
)

// ApplyEnv overrides fields from the environment via getenv (os.Getenv in main).
// Unparseable values are reported and leave the field unchanged.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	var errs []error
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Seed = seed
		}
	}
	for name, dst := range map[string]*bool{
		EnvFullscreen: &c.Window.Fullscreen,
		EnvShowFPS:    &c.Debug.ShowFPS,
	} {
		v := getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		*dst = b
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate rejects settings the demo cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.PaletteSize < 1:
		return fmt.Errorf("config: palette_size %d must be at least 1", c.PaletteSize)
	case c.Animation.MinSides < geometry.MinSides:
		return fmt.Errorf("config: animation.min_sides %d is below %d", c.Animation.MinSides, geometry.MinSides)
	case c.Animation.Duration <= 0:
		return fmt.Errorf("config: animation.duration %v must be positive", c.Animation.Duration)
	case c.Circle.Radius <= 0:
		return fmt.Errorf("config: circle.radius %v must be positive", c.Circle.Radius)
	}
	return nil
}
