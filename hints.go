package ggfx

import (
	"fmt"
	"sort"
	"strings"
)

// HintKey names a rendering hint.
type HintKey uint8

const (
	// HintInterpolation selects the resampling filter; values are Interpolation.
	HintInterpolation HintKey = iota

	// HintRenderQuality is a free-form quality preference passed through
	// to nodes that understand it.
	HintRenderQuality
)

func (k HintKey) String() string {
	switch k {
	case HintInterpolation:
		return "interpolation"
	case HintRenderQuality:
		return "render-quality"
	default:
		return fmt.Sprintf("HintKey(%d)", uint8(k))
	}
}

// Interpolation selects how image sources are resampled.
type Interpolation uint8

const (
	// InterpBilinear performs linear interpolation between neighbouring pixels.
	InterpBilinear Interpolation = iota

	// InterpNearest selects the closest pixel.
	InterpNearest

	// InterpBicubic uses a Catmull-Rom cubic kernel.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// RenderQuality trades speed for accuracy in resampling.
type RenderQuality uint8

const (
	// QualityDefault uses the fast approximations.
	QualityDefault RenderQuality = iota

	// QualityBest uses exact kernels where a fast approximation exists.
	QualityBest
)

// Hints is an immutable set of rendering hints. The zero value is empty.
type Hints struct {
	m map[HintKey]any
}

// With returns a copy of h with key set to value.
func (h Hints) With(key HintKey, value any) Hints {
	m := make(map[HintKey]any, len(h.m)+1)
	for k, v := range h.m {
		m[k] = v
	}
	m[key] = value
	return Hints{m: m}
}

// Get returns the value stored for key.
func (h Hints) Get(key HintKey) (any, bool) {
	v, ok := h.m[key]
	return v, ok
}

// Len returns the number of hints set.
func (h Hints) Len() int {
	return len(h.m)
}

// fingerprint renders the hints as a stable string usable as a map key.
func (h Hints) fingerprint() string {
	if len(h.m) == 0 {
		return ""
	}
	keys := make([]int, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%d=%v;", k, h.m[HintKey(k)])
	}
	return b.String()
}
