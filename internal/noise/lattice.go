// Package noise implements the coherent-noise pattern generator behind the
// turbulence filter source.
//
// The lattice, gradient tables and pseudo random sequence follow the
// feTurbulence reference algorithm so that a given seed produces the same
// field as other SVG renderers.
package noise

import "math"

const (
	latticeSize = 0x100
	latticeMask = 0xff
	perlinN     = 0x1000

	randM = 2147483647 // 2**31 - 1
	randA = 16807      // 7**5; primitive root of m
	randQ = 127773     // m / a
	randR = 2836       // m % a
)

// lattice holds the permutation and per-channel gradient tables for one seed.
type lattice struct {
	selector [latticeSize + latticeSize + 2]int
	gradient [4][latticeSize + latticeSize + 2][2]float64
}

// setupSeed maps an arbitrary seed into the valid Park-Miller range [1, m-1].
func setupSeed(seed int64) int64 {
	if seed <= 0 {
		seed = -(seed % (randM - 1)) + 1
	}
	if seed > randM-1 {
		seed = randM - 1
	}
	return seed
}

// random advances the Park-Miller minimal standard generator.
func random(seed int64) int64 {
	result := randA*(seed%randQ) - randR*(seed/randQ)
	if result <= 0 {
		result += randM
	}
	return result
}

// newLattice builds the tables for seed. The consumption order of the
// random sequence is part of the output contract and must not change.
func newLattice(seed int64) *lattice {
	l := &lattice{}
	seed = setupSeed(seed)

	var i int
	for k := 0; k < 4; k++ {
		for i = 0; i < latticeSize; i++ {
			l.selector[i] = i
			for j := 0; j < 2; j++ {
				seed = random(seed)
				l.gradient[k][i][j] = float64((seed%(latticeSize+latticeSize))-latticeSize) / latticeSize
			}
			g := &l.gradient[k][i]
			s := math.Sqrt(g[0]*g[0] + g[1]*g[1])
			if s != 0 {
				g[0] /= s
				g[1] /= s
			}
		}
	}

	for i--; i > 0; i-- {
		k := l.selector[i]
		seed = random(seed)
		j := int(seed % latticeSize)
		l.selector[i] = l.selector[j]
		l.selector[j] = k
	}

	for i = 0; i < latticeSize+2; i++ {
		l.selector[latticeSize+i] = l.selector[i]
		for k := 0; k < 4; k++ {
			l.gradient[k][latticeSize+i] = l.gradient[k][i]
		}
	}
	return l
}

func sCurve(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// noise2 evaluates the coherent noise of one channel at vec.
// st may be nil when stitching is disabled.
func (l *lattice) noise2(channel int, vx, vy float64, st *stitchInfo) float64 {
	t := vx + perlinN
	bx0 := int(t)
	bx1 := bx0 + 1
	rx0 := t - float64(int(t))
	rx1 := rx0 - 1

	t = vy + perlinN
	by0 := int(t)
	by1 := by0 + 1
	ry0 := t - float64(int(t))
	ry1 := ry0 - 1

	// Wrap before masking, otherwise the wrap test can never fire.
	if st != nil {
		if bx0 >= st.wrapX {
			bx0 -= st.width
		}
		if bx1 >= st.wrapX {
			bx1 -= st.width
		}
		if by0 >= st.wrapY {
			by0 -= st.height
		}
		if by1 >= st.wrapY {
			by1 -= st.height
		}
	}
	bx0 &= latticeMask
	bx1 &= latticeMask
	by0 &= latticeMask
	by1 &= latticeMask

	i := l.selector[bx0]
	j := l.selector[bx1]
	b00 := l.selector[i+by0]
	b10 := l.selector[j+by0]
	b01 := l.selector[i+by1]
	b11 := l.selector[j+by1]

	sx := sCurve(rx0)
	sy := sCurve(ry0)

	g := &l.gradient[channel]
	u := rx0*g[b00][0] + ry0*g[b00][1]
	v := rx1*g[b10][0] + ry0*g[b10][1]
	a := lerp(sx, u, v)
	u = rx0*g[b01][0] + ry1*g[b01][1]
	v = rx1*g[b11][0] + ry1*g[b11][1]
	b := lerp(sx, u, v)
	return lerp(sy, a, b)
}
