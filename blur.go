package ggfx

import (
	"math"

	"github.com/gogpu/ggfx/internal/filter"
)

// blurExtent is how many standard deviations the blur reaches.
const blurExtent = 3

// GaussianBlur blurs its input with independent user-space standard
// deviations per axis. Pixels outside the input are transparent.
type GaussianBlur struct {
	nodeBase
	in     Node
	sigmaX float64
	sigmaY float64
}

// NewGaussianBlur creates a blur of in. Negative or non-finite deviations
// are treated as zero, which passes the input through.
func NewGaussianBlur(in Node, sigmaX, sigmaY float64, opts ...NodeOption) *GaussianBlur {
	return &GaussianBlur{
		nodeBase: newNodeBase("gaussian-blur", opts),
		in:       in,
		sigmaX:   sanitizeSigma(sigmaX),
		sigmaY:   sanitizeSigma(sigmaY),
	}
}

func sanitizeSigma(s float64) float64 {
	if !(s > 0) || math.IsInf(s, 0) {
		return 0
	}
	return s
}

// StdDeviation returns the user-space standard deviations.
func (b *GaussianBlur) StdDeviation() (sx, sy float64) {
	return b.sigmaX, b.sigmaY
}

// SetStdDeviation changes the standard deviations.
func (b *GaussianBlur) SetStdDeviation(sx, sy float64) {
	b.sigmaX = sanitizeSigma(sx)
	b.sigmaY = sanitizeSigma(sy)
	b.touch()
}

// SetInput replaces the input node.
func (b *GaussianBlur) SetInput(in Node) {
	b.in = in
	b.touch()
}

// Inputs implements Composite.
func (b *GaussianBlur) Inputs() []Node {
	return []Node{b.in}
}

// Generation includes the input generation.
func (b *GaussianBlur) Generation() uint64 {
	return latestGeneration(b.gen, b.in)
}

// Bounds returns the input bounds grown by the blur extent.
func (b *GaussianBlur) Bounds() Rect {
	if b.in == nil {
		return Rect{}
	}
	r := b.in.Bounds()
	if r.IsEmpty() {
		return r
	}
	return r.Expand(blurExtent*b.sigmaX, blurExtent*b.sigmaY)
}

// Render pulls the input over the area of interest grown by the blur
// extent and blurs it in device space.
func (b *GaussianBlur) Render(rc RenderContext) *Raster {
	aoi, ok := rc.clip(b.Bounds())
	if !ok {
		return nil
	}
	dev := rc.pixels(aoi)
	if dev.Empty() {
		return nil
	}
	need := aoi.Expand(blurExtent*b.sigmaX, blurExtent*b.sigmaY)
	src := pull(b.in, rc.WithAreaOfInterest(need), b.space)
	if src == nil {
		return nil
	}

	sx, sy := rc.Transform().ScaleFactors()
	out := NewRaster(dev, b.space)
	filter.GaussianBlur(out.img, src.img, b.sigmaX*sx, b.sigmaY*sy)
	return out
}
