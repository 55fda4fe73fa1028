package filter

import (
	"image"
)

// GaussianBlur writes the blur of src into every pixel of dst.
//
// sigmaX and sigmaY are device-space standard deviations. The filter is
// separable: a horizontal pass into a float buffer covering dst's columns
// and the rows the vertical kernel reaches, then a vertical pass into dst.
// Pixels outside src are transparent (SVG edgeMode="none").
func GaussianBlur(dst, src *image.RGBA, sigmaX, sigmaY float64) {
	d := dst.Rect
	if d.Empty() {
		return
	}
	kx := CachedGaussianKernel(sigmaX)
	ky := CachedGaussianKernel(sigmaY)
	hx := len(kx) / 2
	hy := len(ky) / 2

	w := d.Dx()
	th := d.Dy() + 2*hy
	top := d.Min.Y - hy
	temp := make([]float32, w*th*4)

	// Horizontal pass over rows [top, top+th).
	s := src.Rect
	for ty := 0; ty < th; ty++ {
		y := top + ty
		if y < s.Min.Y || y >= s.Max.Y {
			continue
		}
		for tx := 0; tx < w; tx++ {
			x := d.Min.X + tx
			var r, g, b, a float32
			for k, wgt := range kx {
				sx := x + k - hx
				if sx < s.Min.X || sx >= s.Max.X {
					continue
				}
				i := src.PixOffset(sx, y)
				p := src.Pix[i : i+4 : i+4]
				r += float32(p[0]) * wgt
				g += float32(p[1]) * wgt
				b += float32(p[2]) * wgt
				a += float32(p[3]) * wgt
			}
			j := (ty*w + tx) * 4
			temp[j+0] = r
			temp[j+1] = g
			temp[j+2] = b
			temp[j+3] = a
		}
	}

	// Vertical pass into dst.
	for y := d.Min.Y; y < d.Max.Y; y++ {
		ty0 := y - top - hy
		for tx := 0; tx < w; tx++ {
			var r, g, b, a float32
			for k, wgt := range ky {
				j := ((ty0+k)*w + tx) * 4
				r += temp[j+0] * wgt
				g += temp[j+1] * wgt
				b += temp[j+2] * wgt
				a += temp[j+3] * wgt
			}
			i := dst.PixOffset(d.Min.X+tx, y)
			p := dst.Pix[i : i+4 : i+4]
			p[3] = clampUint8(a)
			p[0] = minUint8(clampUint8(r), p[3])
			p[1] = minUint8(clampUint8(g), p[3])
			p[2] = minUint8(clampUint8(b), p[3])
		}
	}
}

// clampUint8 rounds v to the nearest byte in [0, 255].
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// minUint8 keeps premultiplied colour from exceeding alpha after rounding.
func minUint8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
