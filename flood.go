package ggfx

import (
	"image"
	"image/color"

	gcolor "github.com/gogpu/ggfx/internal/color"
)

// Flood is a source node filling a region with one colour.
type Flood struct {
	nodeBase
	region Rect
	color  color.NRGBA
}

// NewFlood creates a flood of c over region. c is interpreted as sRGB;
// nil is transparent.
func NewFlood(region Rect, c color.Color, opts ...NodeOption) *Flood {
	return &Flood{
		nodeBase: newNodeBase("flood", opts),
		region:   region,
		color:    toNRGBA(c),
	}
}

// Bounds returns the flood region.
func (f *Flood) Bounds() Rect {
	return f.region
}

// Color returns the flood colour as straight sRGB.
func (f *Flood) Color() color.NRGBA {
	return f.color
}

// SetColor changes the flood colour.
func (f *Flood) SetColor(c color.Color) {
	f.color = toNRGBA(c)
	f.touch()
}

// SetRegion changes the flood region.
func (f *Flood) SetRegion(r Rect) {
	f.region = r
	f.touch()
}

// Render fills the device pixels covering the area of interest.
func (f *Flood) Render(rc RenderContext) *Raster {
	aoi, ok := rc.clip(f.region)
	if !ok {
		return nil
	}
	dev := rc.pixels(aoi)
	if dev.Empty() {
		return nil
	}
	out := NewRaster(dev, f.space)
	px := floodPixel(f.color, f.space)
	if px.A == 0 {
		return out
	}
	fillRGBA(out.img, px)
	return out
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// floodPixel returns the premultiplied value of c in space.
func floodPixel(c color.NRGBA, space ColorSpace) color.RGBA {
	r, g, b := c.R, c.G, c.B
	if space == ColorSpaceLinearRGB {
		r = gcolor.LinearFromSRGB(r)
		g = gcolor.LinearFromSRGB(g)
		b = gcolor.LinearFromSRGB(b)
	}
	return color.RGBA{
		R: gcolor.Premultiply(r, c.A),
		G: gcolor.Premultiply(g, c.A),
		B: gcolor.Premultiply(b, c.A),
		A: c.A,
	}
}

func fillRGBA(img *image.RGBA, px color.RGBA) {
	r := img.Rect
	w := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):][:w]
		for i := 0; i < w; i += 4 {
			row[i+0] = px.R
			row[i+1] = px.G
			row[i+2] = px.B
			row[i+3] = px.A
		}
	}
}
