package ggfx

import (
	"image"

	"github.com/gogpu/ggfx/internal/filter"
)

// ColorMatrix applies a 4x5 colour matrix to its input.
//
// The matrix operates on straight (non-premultiplied) components in [0,1]
// in the node colour space; the fifth column is an additive offset.
type ColorMatrix struct {
	nodeBase
	in Node
	m  filter.ColorMatrix
}

// NewColorMatrix creates a node applying the row-major 4x5 matrix values.
func NewColorMatrix(in Node, values [20]float64, opts ...NodeOption) *ColorMatrix {
	return &ColorMatrix{
		nodeBase: newNodeBase("color-matrix", opts),
		in:       in,
		m:        filter.ColorMatrix(values),
	}
}

// IdentityColorMatrix returns the matrix that leaves colours unchanged.
func IdentityColorMatrix() [20]float64 {
	return filter.Identity()
}

// NewSaturate creates a saturate colour matrix. s=0 is grayscale, s=1
// leaves the input unchanged.
func NewSaturate(in Node, s float64, opts ...NodeOption) *ColorMatrix {
	return NewColorMatrix(in, filter.Saturate(s), opts...)
}

// NewHueRotate creates a hue rotation by degrees.
func NewHueRotate(in Node, degrees float64, opts ...NodeOption) *ColorMatrix {
	return NewColorMatrix(in, filter.HueRotate(degrees), opts...)
}

// NewLuminanceToAlpha creates a node that moves luminance into alpha.
func NewLuminanceToAlpha(in Node, opts ...NodeOption) *ColorMatrix {
	return NewColorMatrix(in, filter.LuminanceToAlpha(), opts...)
}

// Bounds returns the input bounds.
func (c *ColorMatrix) Bounds() Rect {
	if c.in == nil {
		return Rect{}
	}
	return c.in.Bounds()
}

// Inputs implements Composite.
func (c *ColorMatrix) Inputs() []Node {
	return []Node{c.in}
}

// Generation includes the input generation.
func (c *ColorMatrix) Generation() uint64 {
	return latestGeneration(c.gen, c.in)
}

// Matrix returns the current matrix values.
func (c *ColorMatrix) Matrix() [20]float64 {
	return [20]float64(c.m)
}

// SetMatrix replaces the matrix.
func (c *ColorMatrix) SetMatrix(values [20]float64) {
	c.m = filter.ColorMatrix(values)
	c.touch()
}

// SetInput replaces the input node.
func (c *ColorMatrix) SetInput(in Node) {
	c.in = in
	c.touch()
}

// Render applies the matrix to the input raster.
// A transparent input stays transparent unless the matrix adds alpha.
func (c *ColorMatrix) Render(rc RenderContext) *Raster {
	aoi, ok := rc.clip(c.Bounds())
	if !ok {
		return nil
	}
	src := pull(c.in, rc.WithAreaOfInterest(aoi), c.space)
	if src == nil {
		if c.m[19] <= 0 {
			return nil
		}
		src = NewRaster(image.Rectangle{}, c.space)
	}
	dev := rc.pixels(aoi)
	if dev.Empty() {
		return nil
	}
	out := NewRaster(dev, c.space)
	c.m.Apply(out.img, src.img)
	return out
}
