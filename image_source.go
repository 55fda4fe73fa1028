package ggfx

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageSource is a source node that places an image on a user-space
// rectangle. The image is treated as sRGB and resampled through the
// device transform with the interpolation hint of the render context.
type ImageSource struct {
	nodeBase
	img  image.Image
	rect Rect
}

// NewImageSource maps the bounds of img onto the user-space rectangle r.
func NewImageSource(img image.Image, r Rect, opts ...NodeOption) *ImageSource {
	return &ImageSource{
		nodeBase: newNodeBase("image", opts),
		img:      img,
		rect:     r,
	}
}

// Bounds returns the placement rectangle.
func (s *ImageSource) Bounds() Rect {
	return s.rect
}

// SetImage replaces the source image.
func (s *ImageSource) SetImage(img image.Image) {
	s.img = img
	s.touch()
}

// SetRect changes the placement rectangle.
func (s *ImageSource) SetRect(r Rect) {
	s.rect = r
	s.touch()
}

// imageToUser maps image pixel coordinates onto the placement rectangle.
func (s *ImageSource) imageToUser() Matrix {
	b := s.img.Bounds()
	return Translate(s.rect.MinX, s.rect.MinY).
		Multiply(Scale(s.rect.Width()/float64(b.Dx()), s.rect.Height()/float64(b.Dy()))).
		Multiply(Translate(-float64(b.Min.X), -float64(b.Min.Y)))
}

// Render resamples the visible part of the image into device space.
func (s *ImageSource) Render(rc RenderContext) *Raster {
	if s.img == nil || s.img.Bounds().Empty() {
		return nil
	}
	aoi, ok := rc.clip(s.rect)
	if !ok {
		return nil
	}
	dev := rc.pixels(aoi)
	if dev.Empty() {
		return nil
	}

	m := rc.Transform()
	if !m.IsInvertible() {
		s.diag.SingularTransform(s.name, m)
		m = Identity()
	}
	s2d := m.Multiply(s.imageToUser())

	out := NewRaster(dev, ColorSpaceSRGB)
	interpolator(rc).Transform(out.img, s2d.Aff3(), s.img, s.img.Bounds(), draw.Src, nil)
	return out.Convert(s.space)
}

func interpolator(rc RenderContext) draw.Interpolator {
	switch rc.Interpolation() {
	case InterpNearest:
		return draw.NearestNeighbor
	case InterpBicubic:
		return draw.CatmullRom
	}
	if rc.RenderQuality() == QualityBest {
		return draw.BiLinear
	}
	return draw.ApproxBiLinear
}
