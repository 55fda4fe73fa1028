package filter

import (
	"image"
	"math"
)

// ColorMatrix is a 4x5 colour transformation in row-major order:
//
//	[R']   [m00 m01 m02 m03 m04]   [R]
//	[G'] = [m10 m11 m12 m13 m14] * [G]
//	[B']   [m20 m21 m22 m23 m24]   [B]
//	[A']   [m30 m31 m32 m33 m34]   [A]
//	                               [1]
//
// Components are straight (non-premultiplied) values in [0,1]; the fifth
// column is an offset in the same unit.
type ColorMatrix [20]float64

// Identity returns the pass-through matrix.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Saturate returns the SVG saturate matrix. s=0 is grayscale, s=1 identity.
func Saturate(s float64) ColorMatrix {
	return ColorMatrix{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotate returns the SVG hueRotate matrix for an angle in degrees.
func HueRotate(degrees float64) ColorMatrix {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return ColorMatrix{
		0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928, 0, 0,
		0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283, 0, 0,
		0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// LuminanceToAlpha returns the SVG luminanceToAlpha matrix.
func LuminanceToAlpha() ColorMatrix {
	return ColorMatrix{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0.2125, 0.7154, 0.0721, 0, 0,
	}
}

// Apply transforms every pixel of dst from the pixel at the same device
// coordinate in src. Pixels outside src are treated as transparent black,
// which matters for matrices with a non-zero offset column.
func (m *ColorMatrix) Apply(dst, src *image.RGBA) {
	d := dst.Rect
	for y := d.Min.Y; y < d.Max.Y; y++ {
		for x := d.Min.X; x < d.Max.X; x++ {
			var r, g, b, a float64
			if (image.Point{X: x, Y: y}).In(src.Rect) {
				i := src.PixOffset(x, y)
				p := src.Pix[i : i+4 : i+4]
				a = float64(p[3]) / 255
				if a > 0 {
					r = float64(p[0]) / 255 / a
					g = float64(p[1]) / 255 / a
					b = float64(p[2]) / 255 / a
				}
			}

			nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
			ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
			nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
			na := clamp01(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])

			i := dst.PixOffset(x, y)
			p := dst.Pix[i : i+4 : i+4]
			p[0] = unit8(clamp01(nr) * na)
			p[1] = unit8(clamp01(ng) * na)
			p[2] = unit8(clamp01(nb) * na)
			p[3] = unit8(na)
		}
	}
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func unit8(v float64) uint8 {
	return uint8(v*255 + 0.5)
}
