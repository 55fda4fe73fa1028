// Package config loads fxrender render descriptions from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ggfx"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config describes one rendered filter graph.
//
// Example:
//
//	width = 256
//	height = 256
//	scale = 2
//	background = "#102030"
//
//	[turbulence]
//	seed = 7
//	octaves = 4
//	base_frequency = [0.02, 0.03]
//	fractal = true
//
//	[blur]
//	std_deviation = [1.5]
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Scale      float64 `toml:"scale"`
	ColorSpace string  `toml:"color_space"`
	Background string  `toml:"background"`
	Output     string  `toml:"output"`

	// Blend composites the chain onto the background with a blend mode
	// instead of plain source-over.
	Blend string `toml:"blend"`

	Turbulence  Turbulence   `toml:"turbulence"`
	ColorMatrix *ColorMatrix `toml:"color_matrix"`
	Blur        *Blur        `toml:"blur"`
}

// Turbulence configures the noise source.
type Turbulence struct {
	Seed          int32     `toml:"seed"`
	Octaves       int       `toml:"octaves"`
	BaseFrequency []float64 `toml:"base_frequency"`
	Stitch        bool      `toml:"stitch"`
	Fractal       bool      `toml:"fractal"`
}

// ColorMatrix configures an optional colour matrix stage.
// Type is one of matrix, saturate, hueRotate or luminanceToAlpha.
type ColorMatrix struct {
	Type   string    `toml:"type"`
	Values []float64 `toml:"values"`
}

// Blur configures an optional Gaussian blur stage.
type Blur struct {
	StdDeviation []float64 `toml:"std_deviation"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Width:      256,
		Height:     256,
		Scale:      1,
		ColorSpace: "linearRGB",
		Background: "transparent",
		Output:     "turbulence.png",
		Turbulence: Turbulence{
			Octaves:       2,
			BaseFrequency: []float64{0.05},
		},
	}
}

// Load reads and validates a TOML file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Decode reads and validates TOML from r.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	if _, err := toml.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Validate checks the configuration for values no graph can be built from.
// Turbulence parameters are not checked: degenerate values render flat.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalid, c.Scale)
	}
	if _, err := ggfx.ParseColorSpace(c.ColorSpace); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	if c.Blend != "" {
		if _, err := ggfx.ParseBlendMode(c.Blend); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if n := len(c.Turbulence.BaseFrequency); n != 1 && n != 2 {
		return fmt.Errorf("%w: base_frequency needs 1 or 2 values, got %d", ErrInvalid, n)
	}
	if cm := c.ColorMatrix; cm != nil {
		if err := cm.validate(); err != nil {
			return err
		}
	}
	if b := c.Blur; b != nil {
		if n := len(b.StdDeviation); n != 1 && n != 2 {
			return fmt.Errorf("%w: std_deviation needs 1 or 2 values, got %d", ErrInvalid, n)
		}
	}
	return nil
}

func (cm *ColorMatrix) validate() error {
	want := map[string]int{
		"matrix":           20,
		"saturate":         1,
		"hueRotate":        1,
		"luminanceToAlpha": 0,
	}
	n, ok := want[cm.Type]
	if !ok {
		return fmt.Errorf("%w: unknown color_matrix type %q", ErrInvalid, cm.Type)
	}
	if cm.Type == "matrix" && len(cm.Values) == 0 {
		// An empty matrix is the identity.
		return nil
	}
	if len(cm.Values) != n {
		return fmt.Errorf("%w: color_matrix %s needs %d values, got %d", ErrInvalid, cm.Type, n, len(cm.Values))
	}
	return nil
}

// pair expands a one or two element list to two values.
func pair(v []float64) (float64, float64) {
	if len(v) == 1 {
		return v[0], v[0]
	}
	return v[0], v[1]
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "transparent") {
		return color.NRGBA{}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("color %q must start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q has wrong length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
