// Package color converts pixel data between the sRGB and linearRGB working
// spaces used by filter nodes.
//
// All buffers handled here are premultiplied RGBA bytes. Conversion
// un-premultiplies, applies the transfer curve to the colour channels and
// re-premultiplies; alpha is always linear and never touched.
package color

import "math"

// ToLinear applies the sRGB EOTF to a straight component in [0,1].
func ToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ToSRGB applies the sRGB OETF to a straight linear component in [0,1].
func ToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Quantize maps v in [0,1] to a byte with rounding, clamping out-of-range
// input.
func Quantize(v float64) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
