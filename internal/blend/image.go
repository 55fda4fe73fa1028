package blend

import "image"

// Draw blends top over bottom into every pixel of dst. Pixels outside the
// bounds of either input are transparent for that input.
func Draw(dst, top, bottom *image.RGBA, mode Mode) {
	d := dst.Rect
	for y := d.Min.Y; y < d.Max.Y; y++ {
		for x := d.Min.X; x < d.Max.X; x++ {
			p := image.Point{X: x, Y: y}
			out := Pixel(mode, at(top, p), at(bottom, p))
			i := dst.PixOffset(x, y)
			copy(dst.Pix[i:i+4], out[:])
		}
	}
}

func at(img *image.RGBA, p image.Point) [4]uint8 {
	if img == nil || !p.In(img.Rect) {
		return [4]uint8{}
	}
	i := img.PixOffset(p.X, p.Y)
	return [4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}
