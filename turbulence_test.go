package ggfx

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggfx/internal/noise"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

func TestTurbulenceIdentityOriginAndSize(t *testing.T) {
	tests := []struct {
		name   string
		region Rect
	}{
		{"integral", RectXYWH(0, 0, 64, 64)},
		{"offset", RectXYWH(10, 20, 30, 15)},
		{"fractional", RectXYWH(10.5, 3.2, 20, 30)},
		{"negative", RectXYWH(-8.25, -4.75, 12, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewTurbulence(tt.region, TurbulenceParams{NumOctaves: 1, BaseFrequencyX: 0.1, BaseFrequencyY: 0.1})
			r := mustRender(t, n, identityContext())

			o := r.Origin()
			if dx := float64(o.X) - tt.region.MinX; dx > 0 || dx <= -1 {
				t.Errorf("origin x = %d, region x = %v", o.X, tt.region.MinX)
			}
			if dy := float64(o.Y) - tt.region.MinY; dy > 0 || dy <= -1 {
				t.Errorf("origin y = %d, region y = %v", o.Y, tt.region.MinY)
			}
			if d := float64(r.Width()) - tt.region.Width(); d < 0 || d > 1 {
				t.Errorf("width = %d, region width = %v", r.Width(), tt.region.Width())
			}
			if d := float64(r.Height()) - tt.region.Height(); d < 0 || d > 1 {
				t.Errorf("height = %d, region height = %v", r.Height(), tt.region.Height())
			}
			if r.ColorSpace() != ColorSpaceLinearRGB {
				t.Errorf("ColorSpace() = %v, want linearRGB", r.ColorSpace())
			}
		})
	}
}

func TestTurbulenceDefaultScenario(t *testing.T) {
	r := mustRender(t, defaultTurbulence(), identityContext())
	if r.Bounds() != image.Rect(0, 0, 64, 64) {
		t.Fatalf("Bounds() = %v, want 64x64 at origin", r.Bounds())
	}
	// Lattice points are zero in turbulence mode.
	wantPixel(t, r, 0, 0, color.RGBA{})
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			c := r.RGBAAt(x, y)
			if c.R > c.A || c.G > c.A || c.B > c.A {
				t.Fatalf("pixel (%d,%d) = %v is not premultiplied", x, y, c)
			}
		}
	}
}

func TestTurbulenceFractalOriginPixel(t *testing.T) {
	n := defaultTurbulence()
	n.SetFractalNoise(true)
	r := mustRender(t, n, identityContext())
	// Straight 127 at alpha 127 premultiplies to 63.
	wantPixel(t, r, 0, 0, color.RGBA{63, 63, 63, 127})
}

// TestTurbulenceGolden compares the default scenario against a stored
// straight-alpha field. The stored PNG holds unpremultiplied samples, so
// the raster must equal their premultiplied form.
func TestTurbulenceGolden(t *testing.T) {
	n := defaultTurbulence()
	r := mustRender(t, n, identityContext())
	path := filepath.Join("testdata", "turbulence_64.png")

	if *update {
		writeGoldenField(t, path, n)
		return
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open golden: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode golden: %v", err)
	}
	if img.Bounds() != r.Bounds() {
		t.Fatalf("golden bounds = %v, render bounds = %v", img.Bounds(), r.Bounds())
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			want := color.RGBA{
				R: premultiplied(c.R, c.A),
				G: premultiplied(c.G, c.A),
				B: premultiplied(c.B, c.A),
				A: c.A,
			}
			if got := r.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v from %s", x, y, got, want, path)
			}
		}
	}
}

// TestTurbulenceKnownPixels pins premultiplied output off the lattice.
func TestTurbulenceKnownPixels(t *testing.T) {
	r := mustRender(t, defaultTurbulence(), identityContext())
	wantPixel(t, r, 13, 27, color.RGBA{7, 6, 27, 58})
	wantPixel(t, r, 33, 5, color.RGBA{3, 9, 7, 50})
	wantPixel(t, r, 63, 63, color.RGBA{13, 14, 17, 46})
}

func writeGoldenField(t *testing.T, path string, n *Turbulence) {
	t.Helper()
	p := n.Params()
	g := noise.New(noise.Params{
		Seed:       p.Seed,
		NumOctaves: p.NumOctaves,
		BaseFreqX:  p.BaseFrequencyX,
		BaseFreqY:  p.BaseFrequencyY,
	})
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			s := g.Sample(float64(x), float64(y))
			img.SetNRGBA(x, y, color.NRGBA{s[0], s[1], s[2], s[3]})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode golden: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

func premultiplied(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

func TestTurbulenceDisjointAOI(t *testing.T) {
	n := defaultTurbulence()
	tests := []struct {
		name string
		aoi  Rect
	}{
		{"outside", RectXYWH(100, 100, 10, 10)},
		{"touching edge", RectXYWH(64, 0, 10, 10)},
		{"negative side", RectXYWH(-20, -20, 10, 10)},
		{"empty", RectXYWH(10, 10, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := n.Render(identityContext(WithAreaOfInterest(tt.aoi))); r != nil {
				t.Errorf("Render = %v, want nil", r.Bounds())
			}
		})
	}
}

func TestTurbulencePartialAOI(t *testing.T) {
	n := defaultTurbulence()
	full := mustRender(t, n, identityContext())
	part := mustRender(t, n, identityContext(WithAreaOfInterest(RectXYWH(32, 40, 64, 64))))

	if part.Bounds() != image.Rect(32, 40, 64, 64) {
		t.Fatalf("Bounds() = %v, want clipped to region", part.Bounds())
	}
	for y := 40; y < 64; y++ {
		for x := 32; x < 64; x++ {
			if part.RGBAAt(x, y) != full.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs from the full render", x, y)
			}
		}
	}
}

func TestTurbulenceZeroAreaDevice(t *testing.T) {
	n := defaultTurbulence()
	if r := n.Render(NewRenderContext(Scale(0, 0))); r != nil {
		t.Errorf("Render with zero scale = %v, want nil", r.Bounds())
	}
}

func TestTurbulenceDeterministic(t *testing.T) {
	a := mustRender(t, defaultTurbulence(), identityContext())
	b := mustRender(t, defaultTurbulence(), identityContext())
	if a == b {
		t.Fatal("Render returned the same raster twice")
	}
	if !a.Equal(b) {
		t.Error("identical renders differ")
	}
}

func TestTurbulenceScaleDoublesSize(t *testing.T) {
	n := defaultTurbulence()
	one := mustRender(t, n, identityContext())
	two := mustRender(t, n, NewRenderContext(Scale(2, 2)))

	if d := two.Width() - 2*one.Width(); d < -1 || d > 1 {
		t.Errorf("scaled width = %d, want about %d", two.Width(), 2*one.Width())
	}
	if d := two.Height() - 2*one.Height(); d < -1 || d > 1 {
		t.Errorf("scaled height = %d, want about %d", two.Height(), 2*one.Height())
	}
	// Device pixel (2x, 2y) samples user point (x, y).
	for _, p := range []image.Point{{0, 0}, {5, 9}, {31, 17}} {
		if two.RGBAAt(2*p.X, 2*p.Y) != one.RGBAAt(p.X, p.Y) {
			t.Errorf("scaled pixel at %v differs from user point", p)
		}
	}
}

func TestTurbulenceSetSeed(t *testing.T) {
	n := defaultTurbulence()
	rc := identityContext()
	before := mustRender(t, n, rc)
	gen := n.Generation()

	n.SetSeed(42)
	if n.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", n.Seed())
	}
	if n.Generation() == gen {
		t.Error("SetSeed did not bump the generation")
	}

	a := mustRender(t, n, rc)
	b := mustRender(t, n, rc)
	if !a.Equal(b) {
		t.Error("renders after SetSeed differ")
	}
	if a.Equal(before) {
		t.Error("render after SetSeed(42) equals render with seed 0")
	}
}

func TestTurbulenceSettersBumpGeneration(t *testing.T) {
	n := defaultTurbulence()
	setters := []struct {
		name  string
		apply func()
		check func() bool
	}{
		{"octaves", func() { n.SetNumOctaves(4) }, func() bool { return n.NumOctaves() == 4 }},
		{"freq x", func() { n.SetBaseFrequencyX(0.2) }, func() bool { return n.BaseFrequencyX() == 0.2 }},
		{"freq y", func() { n.SetBaseFrequencyY(0.3) }, func() bool { return n.BaseFrequencyY() == 0.3 }},
		{"stitched", func() { n.SetStitched(true) }, func() bool { return n.Stitched() }},
		{"fractal", func() { n.SetFractalNoise(true) }, func() bool { return n.FractalNoise() }},
		{"colour space", func() { n.SetColorSpace(ColorSpaceSRGB) }, func() bool { return n.ColorSpace() == ColorSpaceSRGB }},
	}
	for _, s := range setters {
		gen := n.Generation()
		s.apply()
		if n.Generation() <= gen {
			t.Errorf("%s: generation not bumped", s.name)
		}
		if !s.check() {
			t.Errorf("%s: value not applied", s.name)
		}
	}
}

func TestTurbulenceRegionSetterKeepsRegion(t *testing.T) {
	region := RectXYWH(0, 0, 64, 64)
	n := defaultTurbulence()
	gen := n.Generation()

	n.SetTurbulenceRegion(RectXYWH(10, 10, 5, 5))

	if n.Generation() == gen {
		t.Error("SetTurbulenceRegion did not mark the node dirty")
	}
	if n.TurbulenceRegion() != region || n.Bounds() != region {
		t.Errorf("region = %+v, want construction region %+v", n.TurbulenceRegion(), region)
	}
}

func TestTurbulenceBoundsIsACopy(t *testing.T) {
	n := defaultTurbulence()
	b := n.Bounds()
	b.MaxX = 1000
	if n.Bounds().MaxX != 64 {
		t.Error("modifying the returned bounds changed the node")
	}
}

func TestTurbulenceSingularTransform(t *testing.T) {
	counter := NewDiagnosticCounter(nil)
	region := RectXYWH(0, 0, 8, 8)
	n := NewTurbulence(region, TurbulenceParams{NumOctaves: 2, BaseFrequencyX: 0.05, BaseFrequencyY: 0.05},
		WithDiagnostics(counter))

	// Rank-one matrix: x' = y' = x + y, bounding box 16x16.
	r := mustRender(t, n, NewRenderContext(Matrix{A: 1, B: 1, D: 1, E: 1}))
	if counter.SingularTransforms() != 1 {
		t.Errorf("SingularTransforms() = %d, want 1", counter.SingularTransforms())
	}
	if r.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Fatalf("Bounds() = %v, want 16x16", r.Bounds())
	}

	// The identity substitute samples device pixels as user points.
	ref := NewTurbulence(RectXYWH(0, 0, 16, 16), n.Params())
	want := mustRender(t, ref, identityContext())
	if !r.Equal(want) {
		t.Error("singular render does not match the identity mapping")
	}
}

func TestTurbulenceDegenerateParamsAreFlat(t *testing.T) {
	tests := []struct {
		name string
		p    TurbulenceParams
	}{
		{"defaults", DefaultTurbulenceParams()},
		{"zero octaves", TurbulenceParams{NumOctaves: 0, BaseFrequencyX: 0.1, BaseFrequencyY: 0.1}},
		{"negative octaves", TurbulenceParams{NumOctaves: -1, BaseFrequencyX: 0.1, BaseFrequencyY: 0.1}},
		{"negative frequency", TurbulenceParams{NumOctaves: 2, BaseFrequencyX: -0.1, BaseFrequencyY: 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRender(t, NewTurbulence(RectXYWH(0, 0, 8, 8), tt.p), identityContext())
			first := r.RGBAAt(0, 0)
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					if r.RGBAAt(x, y) != first {
						t.Fatalf("pixel (%d,%d) = %v, want flat %v", x, y, r.RGBAAt(x, y), first)
					}
				}
			}
		})
	}
}

func BenchmarkTurbulenceRender(b *testing.B) {
	n := NewTurbulence(RectXYWH(0, 0, 256, 256), TurbulenceParams{
		NumOctaves: 4, BaseFrequencyX: 0.02, BaseFrequencyY: 0.02,
	})
	rc := identityContext()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Render(rc)
	}
}
