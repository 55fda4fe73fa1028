package noise

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Params configures a Generator.
type Params struct {
	Seed       int32
	NumOctaves int
	BaseFreqX  float64
	BaseFreqY  float64
	Stitch     bool
	Fractal    bool

	// Tile is the stitching region in user space as x, y, width, height.
	// It is ignored unless Stitch is set.
	Tile [4]float64
}

// stitchInfo describes the lattice wrap of the first octave.
type stitchInfo struct {
	width, height int
	wrapX, wrapY  int
}

// Generator samples the turbulence field for a fixed parameter set.
// Frequencies and stitch values are resolved once by New, so every
// sample of a render call uses the same stitching.
//
// A Generator is immutable and safe for concurrent use.
type Generator struct {
	lat     *lattice
	octaves int
	freqX   float64
	freqY   float64
	fractal bool
	stitch  *stitchInfo
	flat    bool
}

// New creates a generator for p.
//
// Invalid parameters never fail: a non-positive octave count, or a negative
// or non-finite base frequency, yield a flat field.
func New(p Params) *Generator {
	g := &Generator{
		octaves: p.NumOctaves,
		freqX:   p.BaseFreqX,
		freqY:   p.BaseFreqY,
		fractal: p.Fractal,
	}
	if p.NumOctaves <= 0 || !validFreq(p.BaseFreqX) || !validFreq(p.BaseFreqY) {
		g.flat = true
		return g
	}
	g.lat = newLattice(int64(p.Seed))

	if p.Stitch {
		tx, ty, tw, th := p.Tile[0], p.Tile[1], p.Tile[2], p.Tile[3]
		if tw > 0 && th > 0 {
			g.freqX = stitchFreq(g.freqX, tw)
			g.freqY = stitchFreq(g.freqY, th)
			st := &stitchInfo{
				width:  int(tw*g.freqX + 0.5),
				height: int(th*g.freqY + 0.5),
			}
			st.wrapX = int(tx*g.freqX + perlinN + float64(st.width))
			st.wrapY = int(ty*g.freqY + perlinN + float64(st.height))
			g.stitch = st
		}
	}
	return g
}

func validFreq(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}

// stitchFreq snaps freq to the closer of the two frequencies that put a
// whole number of lattice cells across size.
func stitchFreq(freq, size float64) float64 {
	if freq == 0 {
		return 0
	}
	lo := math.Floor(size*freq) / size
	hi := math.Ceil(size*freq) / size
	if freq/lo < hi/freq {
		return lo
	}
	return hi
}

// BaseFrequency reports the frequencies actually used, after stitching.
func (g *Generator) BaseFrequency() (fx, fy float64) {
	return g.freqX, g.freqY
}

// Flat reports whether the parameters degraded the field to a constant.
func (g *Generator) Flat() bool {
	return g.flat
}

// Turbulence returns the raw octave sum of one channel at the user-space
// point (x, y). Channels 0..3 are red, green, blue and alpha.
func (g *Generator) Turbulence(channel int, x, y float64) float64 {
	if g.flat {
		return 0
	}
	var st stitchInfo
	var pst *stitchInfo
	if g.stitch != nil {
		st = *g.stitch
		pst = &st
	}

	vx := x * g.freqX
	vy := y * g.freqY
	sum := 0.0
	ratio := 1.0
	for o := 0; o < g.octaves; o++ {
		n := g.lat.noise2(channel, vx, vy, pst)
		if g.fractal {
			sum += n / ratio
		} else {
			sum += math.Abs(n) / ratio
		}
		vx *= 2
		vy *= 2
		ratio *= 2
		if pst != nil {
			st.width *= 2
			st.wrapX = 2*st.wrapX - perlinN
			st.height *= 2
			st.wrapY = 2*st.wrapY - perlinN
		}
	}
	return sum
}

// Sample returns the straight-alpha RGBA value at the user-space point.
func (g *Generator) Sample(x, y float64) [4]uint8 {
	var px [4]uint8
	for ch := 0; ch < 4; ch++ {
		px[ch] = g.quantize(g.Turbulence(ch, x, y))
	}
	return px
}

// quantize maps an octave sum to a byte, truncating after clamping.
func (g *Generator) quantize(sum float64) uint8 {
	var v float64
	if g.fractal {
		v = (sum*255 + 255) / 2
	} else {
		v = sum * 255
	}
	switch {
	case v != v || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Fill writes the field into every pixel of dst. Each pixel's integer
// device coordinate is mapped to user space through inv before sampling.
// dst receives premultiplied values.
func (g *Generator) Fill(dst *image.RGBA, inv f64.Aff3) {
	r := dst.Rect
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := dst.Pix[dst.PixOffset(r.Min.X, py):]
		fy := float64(py)
		for px := r.Min.X; px < r.Max.X; px++ {
			fx := float64(px)
			ux := inv[0]*fx + inv[1]*fy + inv[2]
			uy := inv[3]*fx + inv[4]*fy + inv[5]
			c := g.Sample(ux, uy)

			i := (px - r.Min.X) * 4
			a := uint32(c[3])
			row[i+0] = premul(c[0], a)
			row[i+1] = premul(c[1], a)
			row[i+2] = premul(c[2], a)
			row[i+3] = c[3]
		}
	}
}

func premul(c uint8, a uint32) uint8 {
	return uint8((uint32(c)*a + 127) / 255)
}
