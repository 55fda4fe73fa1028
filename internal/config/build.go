package config

import (
	"fmt"

	"github.com/gogpu/ggfx"
)

// Graph is a filter graph built from a Config.
type Graph struct {
	Root       ggfx.Node
	Turbulence *ggfx.Turbulence
	Context    ggfx.RenderContext
}

// Build creates the filter graph:
//
//	turbulence -> [color matrix] -> [blur] -> merge (or blend) over background
//
// opts are applied to every node after the colour space option.
func (c *Config) Build(opts ...ggfx.NodeOption) (*Graph, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	space, _ := ggfx.ParseColorSpace(c.ColorSpace)
	bg, _ := ParseColor(c.Background)
	opts = append([]ggfx.NodeOption{ggfx.WithColorSpace(space)}, opts...)
	named := func(name string) []ggfx.NodeOption {
		return append(opts[:len(opts):len(opts)], ggfx.WithName(name))
	}

	region := ggfx.RectXYWH(0, 0, float64(c.Width), float64(c.Height))
	fx, fy := pair(c.Turbulence.BaseFrequency)
	turb := ggfx.NewTurbulence(region, ggfx.TurbulenceParams{
		Seed:           c.Turbulence.Seed,
		NumOctaves:     c.Turbulence.Octaves,
		BaseFrequencyX: fx,
		BaseFrequencyY: fy,
		Stitched:       c.Turbulence.Stitch,
		FractalNoise:   c.Turbulence.Fractal,
	}, named("turbulence")...)

	var node ggfx.Node = turb
	if cm := c.ColorMatrix; cm != nil {
		node = buildColorMatrix(node, cm, named("color-matrix"))
	}
	if b := c.Blur; b != nil {
		sx, sy := pair(b.StdDeviation)
		node = ggfx.NewGaussianBlur(node, sx, sy, named("blur")...)
	}
	background := ggfx.NewFlood(region, bg, named("background")...)
	var root ggfx.Node
	if c.Blend != "" {
		mode, _ := ggfx.ParseBlendMode(c.Blend)
		root = ggfx.NewBlend(node, background, mode, named("blend")...)
	} else {
		root = ggfx.NewMerge([]ggfx.Node{background, node}, named("merge")...)
	}

	return &Graph{
		Root:       root,
		Turbulence: turb,
		Context:    ggfx.NewRenderContext(ggfx.Scale(c.Scale, c.Scale)),
	}, nil
}

func buildColorMatrix(in ggfx.Node, cm *ColorMatrix, opts []ggfx.NodeOption) ggfx.Node {
	switch cm.Type {
	case "saturate":
		return ggfx.NewSaturate(in, cm.Values[0], opts...)
	case "hueRotate":
		return ggfx.NewHueRotate(in, cm.Values[0], opts...)
	case "luminanceToAlpha":
		return ggfx.NewLuminanceToAlpha(in, opts...)
	}
	m := ggfx.IdentityColorMatrix()
	copy(m[:], cm.Values)
	return ggfx.NewColorMatrix(in, m, opts...)
}
