package ggfx

import "image"

// RenderContext carries the target device transform, the area of interest
// and rendering hints of one render call.
//
// A RenderContext is immutable. Nodes derive modified copies for their
// inputs with the With* methods and never change the value they received.
type RenderContext struct {
	transform Matrix
	aoi       Rect
	hasAOI    bool
	hints     Hints
}

// ContextOption configures a RenderContext during creation.
type ContextOption func(*RenderContext)

// WithAreaOfInterest restricts rendering to the user-space rectangle r.
func WithAreaOfInterest(r Rect) ContextOption {
	return func(rc *RenderContext) {
		rc.aoi = r
		rc.hasAOI = true
	}
}

// WithHints sets the rendering hints.
func WithHints(h Hints) ContextOption {
	return func(rc *RenderContext) {
		rc.hints = h
	}
}

// NewRenderContext creates a context for the user-to-device transform m.
// Without WithAreaOfInterest the whole bounds of each node are rendered.
func NewRenderContext(m Matrix, opts ...ContextOption) RenderContext {
	rc := RenderContext{transform: m}
	for _, opt := range opts {
		opt(&rc)
	}
	return rc
}

// Transform returns the user-to-device transform.
func (rc RenderContext) Transform() Matrix {
	return rc.transform
}

// AreaOfInterest returns the requested user-space region, if any.
func (rc RenderContext) AreaOfInterest() (Rect, bool) {
	return rc.aoi, rc.hasAOI
}

// Hints returns the rendering hints.
func (rc RenderContext) Hints() Hints {
	return rc.hints
}

// Interpolation returns the interpolation hint, defaulting to bilinear.
func (rc RenderContext) Interpolation() Interpolation {
	if v, ok := rc.hints.Get(HintInterpolation); ok {
		if i, ok := v.(Interpolation); ok {
			return i
		}
	}
	return InterpBilinear
}

// RenderQuality returns the quality hint, defaulting to QualityDefault.
func (rc RenderContext) RenderQuality() RenderQuality {
	if v, ok := rc.hints.Get(HintRenderQuality); ok {
		if q, ok := v.(RenderQuality); ok {
			return q
		}
	}
	return QualityDefault
}

// WithAreaOfInterest returns a copy of rc with the area of interest set to r.
func (rc RenderContext) WithAreaOfInterest(r Rect) RenderContext {
	rc.aoi = r
	rc.hasAOI = true
	return rc
}

// WithoutAreaOfInterest returns a copy of rc that requests full bounds.
func (rc RenderContext) WithoutAreaOfInterest() RenderContext {
	rc.aoi = Rect{}
	rc.hasAOI = false
	return rc
}

// WithTransform returns a copy of rc with a different device transform.
func (rc RenderContext) WithTransform(m Matrix) RenderContext {
	rc.transform = m
	return rc
}

// WithHint returns a copy of rc with one hint added or replaced.
func (rc RenderContext) WithHint(key HintKey, value any) RenderContext {
	rc.hints = rc.hints.With(key, value)
	return rc
}

// clip resolves the effective area of interest against bounds.
// It reports false when the requested area does not overlap bounds.
func (rc RenderContext) clip(bounds Rect) (Rect, bool) {
	if !rc.hasAOI {
		return bounds, true
	}
	if !rc.aoi.Intersects(bounds) {
		return Rect{}, false
	}
	return rc.aoi.Intersect(bounds), true
}

// pixels maps a user-space rectangle to the device pixels covering it.
func (rc RenderContext) pixels(r Rect) image.Rectangle {
	return PixelRect(rc.transform.TransformRect(r))
}

// key identifies the context for raster caching.
func (rc RenderContext) key() contextKey {
	return contextKey{
		transform: rc.transform,
		aoi:       rc.aoi,
		hasAOI:    rc.hasAOI,
		hints:     rc.hints.fingerprint(),
	}
}

type contextKey struct {
	transform Matrix
	aoi       Rect
	hasAOI    bool
	hints     string
}
