package ggfx

import (
	"fmt"
	"image"
	"sync/atomic"
)

// Node is one stage of a filter graph.
//
// Bounds is defined analytically from the node's parameters and stays
// stable between mutations. Render computes a fresh raster for the given
// context; a nil result means there is nothing to draw and consumers
// treat it as transparent.
//
// Generation changes whenever the node or anything it pulls from is
// mutated. Caches above a node compare generations to detect staleness.
// Stamps come from one package-wide sequence, so a composite reports the
// largest stamp of itself and its inputs.
//
// Nodes are not safe for concurrent mutation. Setters and render calls on
// the same node must be serialized by the caller.
type Node interface {
	Bounds() Rect
	Render(rc RenderContext) *Raster
	Generation() uint64
}

// Composite is implemented by nodes that pull from other nodes.
type Composite interface {
	Node
	Inputs() []Node
}

// Inputs returns the nodes n pulls from, or nil for a source node.
func Inputs(n Node) []Node {
	if c, ok := n.(Composite); ok {
		return c.Inputs()
	}
	return nil
}

// NodeOption configures a node during creation.
//
// Example:
//
//	n := ggfx.NewTurbulence(region, params,
//	    ggfx.WithColorSpace(ggfx.ColorSpaceSRGB),
//	    ggfx.WithDiagnostics(counter))
type NodeOption func(*nodeOptions)

type nodeOptions struct {
	name  string
	space ColorSpace
	diag  Diagnostics
}

func defaultNodeOptions(kind string) nodeOptions {
	return nodeOptions{
		name:  kind,
		space: ColorSpaceLinearRGB,
		diag:  DefaultDiagnostics(),
	}
}

// WithColorSpace sets the colour space the node operates in.
// The default is ColorSpaceLinearRGB.
func WithColorSpace(cs ColorSpace) NodeOption {
	return func(o *nodeOptions) {
		o.space = cs
	}
}

// WithDiagnostics sets the collaborator that receives reports about
// tolerated conditions such as singular transforms. Nil keeps the
// default, which logs a warning.
func WithDiagnostics(d Diagnostics) NodeOption {
	return func(o *nodeOptions) {
		if d != nil {
			o.diag = d
		}
	}
}

// WithName sets the name used in log output and diagnostics.
func WithName(name string) NodeOption {
	return func(o *nodeOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// nodeBase holds the state shared by every node type.
type nodeBase struct {
	name  string
	space ColorSpace
	diag  Diagnostics
	gen   uint64
}

func newNodeBase(kind string, opts []NodeOption) nodeBase {
	o := defaultNodeOptions(kind)
	for _, opt := range opts {
		opt(&o)
	}
	return nodeBase{name: o.name, space: o.space, diag: o.diag, gen: nextGeneration()}
}

// Name returns the node name used in logs and diagnostics.
func (b *nodeBase) Name() string {
	return b.name
}

// ColorSpace returns the colour space the node renders into.
func (b *nodeBase) ColorSpace() ColorSpace {
	return b.space
}

// SetColorSpace changes the operation colour space.
func (b *nodeBase) SetColorSpace(cs ColorSpace) {
	b.space = cs
	b.touch()
}

// Generation returns the stamp of the last mutation of this node alone.
func (b *nodeBase) Generation() uint64 {
	return b.gen
}

// touch marks the node dirty.
func (b *nodeBase) touch() {
	b.gen = nextGeneration()
}

// generations issues mutation stamps. Every stamp is larger than all
// stamps issued before it, across every node.
var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// inverse returns the device-to-user mapping for m. A singular m is
// reported and replaced by the identity.
func (b *nodeBase) inverse(m Matrix) Matrix {
	if !m.IsInvertible() {
		b.diag.SingularTransform(b.name, m)
		return Identity()
	}
	return m.Invert()
}

func (b *nodeBase) String() string {
	return fmt.Sprintf("%s(%s)", b.name, b.space)
}

// latestGeneration returns the largest of own and the input generations.
func latestGeneration(own uint64, inputs ...Node) uint64 {
	for _, in := range inputs {
		if in != nil {
			own = max(own, in.Generation())
		}
	}
	return own
}

// pull renders in with rc and converts the result into space.
// A nil input or result yields nil.
func pull(in Node, rc RenderContext, space ColorSpace) *Raster {
	if in == nil {
		return nil
	}
	r := in.Render(rc)
	if r == nil {
		return nil
	}
	return r.Convert(space)
}

// rasterImage returns the pixel buffer of r, or nil for a nil raster.
func rasterImage(r *Raster) *image.RGBA {
	if r == nil {
		return nil
	}
	return r.img
}
