package ggfx

import (
	"image"
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", RectXYWH(5, 5, 10, 10), true},
		{"contained", RectXYWH(2, 2, 2, 2), true},
		{"shared edge", RectXYWH(10, 0, 5, 5), false},
		{"shared corner", RectXYWH(10, 10, 5, 5), false},
		{"disjoint", RectXYWH(100, 100, 10, 10), false},
		{"empty", RectXYWH(5, 5, 0, 0), false},
		{"NaN", Rect{MinX: math.NaN(), MaxX: 5, MaxY: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reversed Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, 2, 10, 4)
	if got, want := a.Intersect(b), (Rect{5, 2, 10, 6}); got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if got, want := a.Union(b), (Rect{0, 0, 15, 10}); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
	if got, want := a.Expand(1, 2), (Rect{-1, -2, 11, 12}); got != want {
		t.Errorf("Expand = %+v, want %+v", got, want)
	}
}

func TestPixelRect(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want image.Rectangle
	}{
		{"integral", RectXYWH(0, 0, 64, 64), image.Rect(0, 0, 64, 64)},
		{"outward", Rect{0.5, 0.25, 9.1, 3.9}, image.Rect(0, 0, 10, 4)},
		{"negative", Rect{-2.5, -1.5, -0.5, 0.5}, image.Rect(-3, -2, 0, 1)},
		{"empty", Rect{3, 3, 3, 3}, image.Rectangle{}},
		{"NaN", Rect{math.NaN(), 0, 1, 1}, image.Rectangle{}},
		{"Inf", Rect{0, 0, math.Inf(1), 1}, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelRect(tt.in); got != tt.want {
				t.Errorf("PixelRect(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPixelRectClampsHugeValues(t *testing.T) {
	got := PixelRect(Rect{-1e300, -1e300, 1e300, 1e300})
	if got.Min.X != -maxPixelCoord || got.Max.X != maxPixelCoord {
		t.Errorf("PixelRect huge = %v, want clamped to +-%d", got, maxPixelCoord)
	}
}
