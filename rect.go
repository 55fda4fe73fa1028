package ggfx

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in user space.
// A Rect is a value: copies never alias the original.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectXYWH creates a rectangle from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty reports whether the rectangle has no area. NaN extents are empty.
func (r Rect) IsEmpty() bool {
	return !(r.MinX < r.MaxX && r.MinY < r.MaxY)
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Intersect returns the overlap of r and o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}
}

// Union returns the smallest rectangle containing r and o.
// Empty operands are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Expand grows the rectangle by dx horizontally and dy vertically on each side.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{MinX: r.MinX - dx, MinY: r.MinY - dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// maxPixelCoord bounds device coordinates so that rounding never overflows.
const maxPixelCoord = 1 << 30

// PixelRect rounds a device-space rectangle outward to whole pixels.
// Non-finite or empty input yields the empty image.Rectangle.
func PixelRect(r Rect) image.Rectangle {
	if r.IsEmpty() || !finite(r.MinX) || !finite(r.MinY) || !finite(r.MaxX) || !finite(r.MaxY) {
		return image.Rectangle{}
	}
	return image.Rect(
		clampCoord(math.Floor(r.MinX)),
		clampCoord(math.Floor(r.MinY)),
		clampCoord(math.Ceil(r.MaxX)),
		clampCoord(math.Ceil(r.MaxY)),
	)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampCoord(v float64) int {
	if v < -maxPixelCoord {
		return -maxPixelCoord
	}
	if v > maxPixelCoord {
		return maxPixelCoord
	}
	return int(v)
}
