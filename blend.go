package ggfx

import (
	"github.com/gogpu/ggfx/internal/blend"
)

// BlendMode selects how Blend combines its two inputs.
type BlendMode = blend.Mode

// Blend modes.
const (
	BlendNormal     = blend.Normal
	BlendMultiply   = blend.Multiply
	BlendScreen     = blend.Screen
	BlendDarken     = blend.Darken
	BlendLighten    = blend.Lighten
	BlendDifference = blend.Difference
	BlendExclusion  = blend.Exclusion
)

// ParseBlendMode parses a CSS blend mode keyword such as "multiply".
func ParseBlendMode(s string) (BlendMode, error) {
	return blend.ParseMode(s)
}

// Blend combines a top input with a backdrop input.
// Either input may render nothing; it is then transparent.
type Blend struct {
	nodeBase
	top      Node
	backdrop Node
	mode     BlendMode
}

// NewBlend creates a blend of top over backdrop.
func NewBlend(top, backdrop Node, mode BlendMode, opts ...NodeOption) *Blend {
	return &Blend{
		nodeBase: newNodeBase("blend", opts),
		top:      top,
		backdrop: backdrop,
		mode:     mode,
	}
}

// Mode returns the blend mode.
func (b *Blend) Mode() BlendMode {
	return b.mode
}

// SetMode changes the blend mode.
func (b *Blend) SetMode(mode BlendMode) {
	b.mode = mode
	b.touch()
}

// SetInputs replaces both inputs.
func (b *Blend) SetInputs(top, backdrop Node) {
	b.top = top
	b.backdrop = backdrop
	b.touch()
}

// Inputs implements Composite. The top input comes first.
func (b *Blend) Inputs() []Node {
	return []Node{b.top, b.backdrop}
}

// Generation includes the generations of both inputs.
func (b *Blend) Generation() uint64 {
	return latestGeneration(b.gen, b.top, b.backdrop)
}

// Bounds returns the union of the input bounds.
func (b *Blend) Bounds() Rect {
	var r Rect
	for _, in := range b.Inputs() {
		if in != nil {
			r = r.Union(in.Bounds())
		}
	}
	return r
}

// Render blends the inputs over the area of interest. It returns nil when
// neither input drew anything.
func (b *Blend) Render(rc RenderContext) *Raster {
	aoi, ok := rc.clip(b.Bounds())
	if !ok {
		return nil
	}
	dev := rc.pixels(aoi)
	if dev.Empty() {
		return nil
	}
	sub := rc.WithAreaOfInterest(aoi)
	top := pull(b.top, sub, b.space)
	back := pull(b.backdrop, sub, b.space)
	if top == nil && back == nil {
		return nil
	}

	out := NewRaster(dev, b.space)
	blend.Draw(out.img, rasterImage(top), rasterImage(back), b.mode)
	return out
}
