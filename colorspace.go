package ggfx

import (
	"fmt"
	"strings"
)

// ColorSpace identifies the working colour space of a raster or node.
type ColorSpace uint8

const (
	// ColorSpaceLinearRGB is linear-light RGB, the default working space
	// of filter effects.
	ColorSpaceLinearRGB ColorSpace = iota

	// ColorSpaceSRGB is the device sRGB space used for presentation.
	ColorSpaceSRGB
)

// String returns the SVG keyword for the colour space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceLinearRGB:
		return "linearRGB"
	case ColorSpaceSRGB:
		return "sRGB"
	default:
		return fmt.Sprintf("ColorSpace(%d)", uint8(cs))
	}
}

// ParseColorSpace parses "linearRGB" or "sRGB" (case-insensitive).
func ParseColorSpace(s string) (ColorSpace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linearrgb", "linear":
		return ColorSpaceLinearRGB, nil
	case "srgb":
		return ColorSpaceSRGB, nil
	}
	return 0, fmt.Errorf("ggfx: unknown color space %q", s)
}
