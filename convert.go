package ggfx

// ColorSpaceConvert re-expresses its input in the node colour space.
// Other nodes convert their inputs implicitly; this node makes the
// conversion an explicit graph stage.
type ColorSpaceConvert struct {
	nodeBase
	in Node
}

// NewColorSpaceConvert converts the output of in to space.
func NewColorSpaceConvert(in Node, space ColorSpace, opts ...NodeOption) *ColorSpaceConvert {
	opts = append([]NodeOption{WithColorSpace(space)}, opts...)
	return &ColorSpaceConvert{
		nodeBase: newNodeBase("color-space-convert", opts),
		in:       in,
	}
}

// Bounds returns the input bounds.
func (c *ColorSpaceConvert) Bounds() Rect {
	if c.in == nil {
		return Rect{}
	}
	return c.in.Bounds()
}

// Inputs implements Composite.
func (c *ColorSpaceConvert) Inputs() []Node {
	return []Node{c.in}
}

// Generation includes the input generation.
func (c *ColorSpaceConvert) Generation() uint64 {
	return latestGeneration(c.gen, c.in)
}

// SetInput replaces the input node.
func (c *ColorSpaceConvert) SetInput(in Node) {
	c.in = in
	c.touch()
}

// Render pulls the input unchanged and converts it.
func (c *ColorSpaceConvert) Render(rc RenderContext) *Raster {
	return pull(c.in, rc, c.space)
}
