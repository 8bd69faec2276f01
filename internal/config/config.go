// Package config loads the example host configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/shapes"
)

// Config is the host window and scene configuration.
type Config struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Title   string   `toml:"title"`
	VSync   bool     `toml:"vsync"`
	Verbose bool     `toml:"verbose"`
	Strict  bool     `toml:"strict"`
	Shapes  []string `toml:"shapes"`
	Polygon Polygon  `toml:"polygon"`
}

// Polygon configures the regular polygon shape.
type Polygon struct {
	Sides   int     `toml:"sides"`
	Radius  float32 `toml:"radius"`
	Indexed bool    `toml:"indexed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "shapes",
		VSync:  true,
		Shapes: []string{"triangle", "square", "pentagon", "cube"},
		Polygon: Polygon{
			Sides:  5,
			Radius: 1,
		},
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
	return Parse(data, cfg)
}

// Parse decodes TOML data over base and validates the result. Unknown keys
// are rejected.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	cfg.Shapes = nil
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return base, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Shapes == nil {
		cfg.Shapes = append([]string(nil), base.Shapes...)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks sizes and shape names.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Polygon.Sides < 3 {
		return fmt.Errorf("polygon needs at least 3 sides, got %d", c.Polygon.Sides)
	}
	if c.Polygon.Indexed && c.Polygon.Sides > shapes.MaxIndexedVertices {
		return fmt.Errorf("indexed polygon allows at most %d sides, got %d", shapes.MaxIndexedVertices, c.Polygon.Sides)
	}
	if c.Polygon.Radius <= 0 {
		return fmt.Errorf("polygon radius must be positive, got %g", c.Polygon.Radius)
	}
	for _, name := range c.Shapes {
		if _, err := shapes.ParseKind(name); err != nil {
			return err
		}
	}
	return nil
}

// Options returns the renderable options for a shape kind.
func (c Config) Options(kind shapes.Kind) []shapes.Option {
	opts := []shapes.Option{shapes.WithStrict(c.Strict)}
	if kind == shapes.KindPolygon {
		opts = append(opts,
			shapes.WithSides(c.Polygon.Sides),
			shapes.WithRadius(c.Polygon.Radius),
			shapes.WithIndexedDraw(c.Polygon.Indexed),
		)
	}
	return opts
}
