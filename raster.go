package ggfx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	gcolor "github.com/gogpu/ggfx/internal/color"
)

// Raster is a rectangular pixel buffer positioned in device space; it is
// the unit exchanged between filter nodes.
//
// Pixels are 32-bit premultiplied RGBA with bytes in R, G, B, A order, in
// the raster's colour space. Bounds().Min is the device-space origin.
// Every render call returns a fresh Raster owned by the caller; nodes
// never modify a raster after handing it out.
type Raster struct {
	img   *image.RGBA
	space ColorSpace
}

// NewRaster allocates a transparent raster covering the device rectangle r.
func NewRaster(r image.Rectangle, space ColorSpace) *Raster {
	return &Raster{img: image.NewRGBA(r), space: space}
}

// NewRasterFromImage wraps img without copying. The caller transfers
// ownership and must not modify img afterwards.
func NewRasterFromImage(img *image.RGBA, space ColorSpace) *Raster {
	return &Raster{img: img, space: space}
}

// Origin returns the device-space position of the top-left pixel.
func (r *Raster) Origin() image.Point {
	return r.img.Rect.Min
}

// Bounds implements image.Image.
func (r *Raster) Bounds() image.Rectangle {
	return r.img.Rect
}

// Width returns the width in pixels.
func (r *Raster) Width() int {
	return r.img.Rect.Dx()
}

// Height returns the height in pixels.
func (r *Raster) Height() int {
	return r.img.Rect.Dy()
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements image.Image.
func (r *Raster) At(x, y int) color.Color {
	return r.img.RGBAAt(x, y)
}

// RGBAAt returns the premultiplied pixel at device coordinate (x, y).
func (r *Raster) RGBAAt(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}

// ColorSpace returns the colour space of the pixel data.
func (r *Raster) ColorSpace() ColorSpace {
	return r.space
}

// Image exposes the underlying buffer. It must be treated as read-only.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	img := &image.RGBA{
		Pix:    bytes.Clone(r.img.Pix),
		Stride: r.img.Stride,
		Rect:   r.img.Rect,
	}
	return &Raster{img: img, space: r.space}
}

// Convert returns the raster expressed in space. When the raster already
// is in space it is returned as is; otherwise a converted copy is made.
func (r *Raster) Convert(space ColorSpace) *Raster {
	if r.space == space {
		return r
	}
	out := r.Clone()
	out.space = space
	switch space {
	case ColorSpaceLinearRGB:
		gcolor.SRGBToLinearPremul(out.img.Pix)
	case ColorSpaceSRGB:
		gcolor.LinearToSRGBPremul(out.img.Pix)
	}
	return out
}

// Equal reports whether both rasters have the same bounds, colour space
// and pixel bytes.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.img.Rect != o.img.Rect || r.space != o.space {
		return false
	}
	w := r.Width() * 4
	for y := r.img.Rect.Min.Y; y < r.img.Rect.Max.Y; y++ {
		a := r.img.Pix[r.img.PixOffset(r.img.Rect.Min.X, y):][:w]
		b := o.img.Pix[o.img.PixOffset(o.img.Rect.Min.X, y):][:w]
		if !bytes.Equal(a, b) {
			return false
		}
	}
	return true
}

// EncodePNG writes the raster as an sRGB PNG. The PNG's origin is the
// raster's top-left pixel.
func (r *Raster) EncodePNG(w io.Writer) error {
	srgb := r.Convert(ColorSpaceSRGB).img
	img := &image.RGBA{Pix: srgb.Pix, Stride: srgb.Stride, Rect: srgb.Rect.Sub(srgb.Rect.Min)}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("ggfx: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
