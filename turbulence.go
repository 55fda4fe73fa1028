package ggfx

import (
	"github.com/gogpu/ggfx/internal/noise"
)

// TurbulenceParams are the parameters of a turbulence source.
type TurbulenceParams struct {
	Seed           int32
	NumOctaves     int
	BaseFrequencyX float64
	BaseFrequencyY float64

	// Stitched adjusts the frequencies so the field tiles seamlessly
	// across the node region.
	Stitched bool

	// FractalNoise selects the signed fractal sum instead of the
	// absolute-value turbulence sum.
	FractalNoise bool
}

// DefaultTurbulenceParams returns one octave at zero frequency, which
// renders as a transparent flat field until a frequency is set.
func DefaultTurbulenceParams() TurbulenceParams {
	return TurbulenceParams{NumOctaves: 1}
}

// Turbulence is a source node that synthesizes coherent noise over
// a user-space region.
//
// Invalid parameters are accepted by every setter; they degrade the
// output to a flat field when rendered.
type Turbulence struct {
	nodeBase
	region Rect
	params TurbulenceParams
}

// NewTurbulence creates a turbulence source covering region.
func NewTurbulence(region Rect, p TurbulenceParams, opts ...NodeOption) *Turbulence {
	return &Turbulence{
		nodeBase: newNodeBase("turbulence", opts),
		region:   region,
		params:   p,
	}
}

// Bounds returns the turbulence region.
func (t *Turbulence) Bounds() Rect {
	return t.region
}

// TurbulenceRegion returns the region the field covers and stitches across.
func (t *Turbulence) TurbulenceRegion() Rect {
	return t.region
}

// Params returns a copy of the current parameters.
func (t *Turbulence) Params() TurbulenceParams {
	return t.params
}

// Seed returns the seed of the pseudo random sequence.
func (t *Turbulence) Seed() int32 { return t.params.Seed }

// NumOctaves returns the number of octaves summed.
func (t *Turbulence) NumOctaves() int { return t.params.NumOctaves }

// BaseFrequencyX returns the horizontal base frequency.
func (t *Turbulence) BaseFrequencyX() float64 { return t.params.BaseFrequencyX }

// BaseFrequencyY returns the vertical base frequency.
func (t *Turbulence) BaseFrequencyY() float64 { return t.params.BaseFrequencyY }

// Stitched reports whether stitching is enabled.
func (t *Turbulence) Stitched() bool { return t.params.Stitched }

// FractalNoise reports whether fractal noise mode is enabled.
func (t *Turbulence) FractalNoise() bool { return t.params.FractalNoise }

// SetSeed sets the seed.
func (t *Turbulence) SetSeed(seed int32) {
	t.params.Seed = seed
	t.touch()
}

// SetNumOctaves sets the number of octaves.
func (t *Turbulence) SetNumOctaves(n int) {
	t.params.NumOctaves = n
	t.touch()
}

// SetBaseFrequencyX sets the horizontal base frequency.
func (t *Turbulence) SetBaseFrequencyX(f float64) {
	t.params.BaseFrequencyX = f
	t.touch()
}

// SetBaseFrequencyY sets the vertical base frequency.
func (t *Turbulence) SetBaseFrequencyY(f float64) {
	t.params.BaseFrequencyY = f
	t.touch()
}

// SetStitched enables or disables stitching.
func (t *Turbulence) SetStitched(stitched bool) {
	t.params.Stitched = stitched
	t.touch()
}

// SetFractalNoise selects fractal noise (true) or turbulence (false).
func (t *Turbulence) SetFractalNoise(fractal bool) {
	t.params.FractalNoise = fractal
	t.touch()
}

// SetTurbulenceRegion marks the node dirty but keeps the region given at
// construction. Callers that need a different region create a new node.
//
// TODO: apply r once consumers that rely on the node bounds being fixed
// after construction have been audited.
func (t *Turbulence) SetTurbulenceRegion(r Rect) {
	_ = r
	t.touch()
}

// Render synthesizes the field for the part of the region selected by rc.
// It returns nil when the area of interest misses the region or covers no
// device pixel.
func (t *Turbulence) Render(rc RenderContext) *Raster {
	aoi, ok := rc.clip(t.region)
	if !ok {
		Logger().Debug("ggfx: area of interest outside bounds", "node", t.name)
		return nil
	}
	dev := rc.pixels(aoi)
	if dev.Empty() {
		Logger().Debug("ggfx: empty device rectangle", "node", t.name)
		return nil
	}

	inv := t.inverse(rc.Transform())
	gen := noise.New(noise.Params{
		Seed:       t.params.Seed,
		NumOctaves: t.params.NumOctaves,
		BaseFreqX:  t.params.BaseFrequencyX,
		BaseFreqY:  t.params.BaseFrequencyY,
		Stitch:     t.params.Stitched,
		Fractal:    t.params.FractalNoise,
		Tile:       [4]float64{t.region.MinX, t.region.MinY, t.region.Width(), t.region.Height()},
	})
	if gen.Flat() {
		Logger().Debug("ggfx: degenerate turbulence parameters, flat field", "node", t.name,
			"octaves", t.params.NumOctaves)
	} else if t.params.Stitched {
		fx, fy := gen.BaseFrequency()
		Logger().Debug("ggfx: stitched base frequency", "node", t.name, "fx", fx, "fy", fy)
	}

	out := NewRaster(dev, t.space)
	gen.Fill(out.img, inv.Aff3())
	return out
}
