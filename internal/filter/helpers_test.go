package filter

import (
	"image"
	"image/color"
)

// solid returns a buffer over r filled with the premultiplied colour c.
func solid(r image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// near compares two colours channel by channel.
func near(a, b color.RGBA, tol int) bool {
	return absInt(int(a.R)-int(b.R)) <= tol &&
		absInt(int(a.G)-int(b.G)) <= tol &&
		absInt(int(a.B)-int(b.B)) <= tol &&
		absInt(int(a.A)-int(b.A)) <= tol
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
