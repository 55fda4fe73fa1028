// Package ggfx provides a lazily evaluated image filter graph for Go.
//
// # Overview
//
// A filter graph is a network of nodes that produce rasters on demand.
// Source nodes such as Turbulence, Flood and ImageSource synthesize
// pixels; filter nodes such as ColorMatrix, GaussianBlur, Merge and Blend
// pull from their inputs and combine the results. Nothing is computed
// until a consumer calls Render with a RenderContext.
//
// # Quick Start
//
//	import "github.com/gogpu/ggfx"
//
//	region := ggfx.RectXYWH(0, 0, 256, 256)
//	clouds := ggfx.NewTurbulence(region, ggfx.TurbulenceParams{
//	    NumOctaves:     2,
//	    BaseFrequencyX: 0.05,
//	    BaseFrequencyY: 0.05,
//	})
//	soft := ggfx.NewGaussianBlur(clouds, 2, 2)
//
//	// Render at twice the user-space resolution.
//	r := soft.Render(ggfx.NewRenderContext(ggfx.Scale(2, 2)))
//	if r != nil {
//	    r.SavePNG("clouds.png")
//	}
//
// # Render Contexts
//
// A RenderContext carries the user-to-device transform, an optional area
// of interest in user space and rendering hints. Nodes render only the
// device pixels covering the intersection of their bounds with the area
// of interest, rounded outward. A nil raster means there is nothing to
// draw and is treated as transparent by every consumer.
//
// # Pixels and Colour Spaces
//
// Rasters hold premultiplied 8-bit RGBA positioned in device space. Each
// node operates in its own colour space, linearRGB unless WithColorSpace
// says otherwise, and inputs are converted on the way in.
//
// # Mutation
//
// Setters mark a node dirty by giving it a new generation stamp. Cache
// nodes compare stamps to decide when to re-render. Nodes are not safe
// for concurrent mutation; render calls on a quiescent graph are
// synchronous and deterministic.
package ggfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
