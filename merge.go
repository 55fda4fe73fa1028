package ggfx

import (
	"golang.org/x/image/draw"
)

// Merge composites its inputs with source-over, first input at the bottom.
type Merge struct {
	nodeBase
	inputs []Node
}

// NewMerge creates a merge of inputs. Nil inputs are transparent.
func NewMerge(inputs []Node, opts ...NodeOption) *Merge {
	return &Merge{
		nodeBase: newNodeBase("merge", opts),
		inputs:   append([]Node(nil), inputs...),
	}
}

// Inputs implements Composite. The returned slice is a copy.
func (m *Merge) Inputs() []Node {
	return append([]Node(nil), m.inputs...)
}

// SetInputs replaces all inputs.
func (m *Merge) SetInputs(inputs []Node) {
	m.inputs = append([]Node(nil), inputs...)
	m.touch()
}

// AddInput appends an input on top of the existing ones.
func (m *Merge) AddInput(in Node) {
	m.inputs = append(m.inputs, in)
	m.touch()
}

// Generation includes the generations of all inputs.
func (m *Merge) Generation() uint64 {
	return latestGeneration(m.gen, m.inputs...)
}

// Bounds returns the union of the input bounds.
func (m *Merge) Bounds() Rect {
	var r Rect
	for _, in := range m.inputs {
		if in != nil {
			r = r.Union(in.Bounds())
		}
	}
	return r
}

// Render composites every input that produced a raster. It returns nil
// when no input drew anything.
func (m *Merge) Render(rc RenderContext) *Raster {
	aoi, ok := rc.clip(m.Bounds())
	if !ok {
		return nil
	}
	dev := rc.pixels(aoi)
	if dev.Empty() {
		return nil
	}
	sub := rc.WithAreaOfInterest(aoi)

	var out *Raster
	for _, in := range m.inputs {
		r := pull(in, sub, m.space)
		if r == nil {
			continue
		}
		if out == nil {
			out = NewRaster(dev, m.space)
		}
		draw.Draw(out.img, r.Bounds(), r.img, r.Bounds().Min, draw.Over)
	}
	if out == nil {
		Logger().Debug("ggfx: merge inputs all empty", "node", m.name)
	}
	return out
}
