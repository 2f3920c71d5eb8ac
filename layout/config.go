// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexlath/hex"
)

// Config is the serializable form of a Layout:
//
//	orientation: flat
//	origin: [120, 80]
//	size: [32, 28]
//	invert_y: true
type Config struct {
	Orientation hex.Orientation `yaml:"orientation"`
	Origin      [2]float64      `yaml:"origin"`
	Size        [2]float64      `yaml:"size"`
	InvertX     bool            `yaml:"invert_x"`
	InvertY     bool            `yaml:"invert_y"`
}

// ConfigOf returns the Config describing l.
func ConfigOf(l Layout) Config {
	return Config{
		Orientation: l.Orientation,
		Origin:      [2]float64{l.Origin.X, l.Origin.Y},
		Size:        [2]float64{l.Size.X, l.Size.Y},
		InvertX:     l.InvertX,
		InvertY:     l.InvertY,
	}
}

// Layout validates c and builds the Layout it describes.
// Returns ErrInvalidSize when a size component is not finite and positive.
func (c Config) Layout() (Layout, error) {
	size := r2.Vec{X: c.Size[0], Y: c.Size[1]}
	if !validSize(size) {
		return Layout{}, fmt.Errorf("%w: %v", ErrInvalidSize, c.Size)
	}
	return New(
		WithOrientation(c.Orientation),
		WithOrigin(r2.Vec{X: c.Origin[0], Y: c.Origin[1]}),
		WithSize(size),
		WithInvertX(c.InvertX),
		WithInvertY(c.InvertY),
	), nil
}

// ParseConfig decodes a YAML document into a Config. An omitted size
// defaults to [1, 1]; everything else defaults to its zero value.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("layout: failed to parse config: %w", err)
	}
	if cfg.Size == [2]float64{} {
		cfg.Size = [2]float64{1, 1}
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML file, see ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("layout: failed to read config file: %w", err)
	}
	return ParseConfig(data)
}
