package ggfx

import (
	"image/color"
	"testing"
)

// stubNode renders nothing over fixed bounds.
type stubNode struct {
	bounds Rect
	gen    uint64
}

func (s *stubNode) Bounds() Rect                 { return s.bounds }
func (s *stubNode) Render(RenderContext) *Raster { return nil }
func (s *stubNode) Generation() uint64           { return s.gen }

// countingNode forwards to a wrapped node and counts render calls.
type countingNode struct {
	Node
	renders int
}

func (c *countingNode) Render(rc RenderContext) *Raster {
	c.renders++
	return c.Node.Render(rc)
}

func defaultTurbulence(opts ...NodeOption) *Turbulence {
	return NewTurbulence(RectXYWH(0, 0, 64, 64), TurbulenceParams{
		Seed:           0,
		NumOctaves:     2,
		BaseFrequencyX: 0.05,
		BaseFrequencyY: 0.05,
	}, opts...)
}

func identityContext(opts ...ContextOption) RenderContext {
	return NewRenderContext(Identity(), opts...)
}

func mustRender(t *testing.T, n Node, rc RenderContext) *Raster {
	t.Helper()
	r := n.Render(rc)
	if r == nil {
		t.Fatal("Render returned nil")
	}
	return r
}

func wantPixel(t *testing.T, r *Raster, x, y int, want color.RGBA) {
	t.Helper()
	if got := r.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func floatNear(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}
