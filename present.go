package ggfx

import (
	"golang.org/x/image/draw"
)

// Present composites r over dst at the raster's device origin, converting
// it to sRGB first. A nil raster paints nothing.
func Present(dst draw.Image, r *Raster) {
	if r == nil {
		return
	}
	src := r.Convert(ColorSpaceSRGB)
	draw.Draw(dst, src.Bounds(), src.img, src.Bounds().Min, draw.Over)
}
