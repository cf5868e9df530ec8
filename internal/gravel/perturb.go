package gravel

import (
	"math"
	"math/rand/v2"
)

const (
	// MaxShift is half the width of the uniform offset draw.
	MaxShift = 0.5
	// MaxTurn is half the width of the uniform rotation draw.
	MaxTurn = math.Pi / 4
)

// NewSource returns the generator used for perturbations. The same seed
// always yields the same stream.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Recompute overwrites the offsets and rotation of every stone. The
// generator is reseeded on each call and consumed in slice order, three draws
// per stone, so stones must stay in the order NewGrid produced them.
func Recompute(stones []Stone, rows int, seed uint64, disp, rot float64) {
	if rows <= 0 {
		return
	}
	rng := NewSource(seed)
	total := float64(rows)
	for i := range stones {
		s := &stones[i]
		factor := s.Y / total
		dispFactor := factor * disp
		rotFactor := factor * rot
		s.XOffset = dispFactor * uniform(rng, -MaxShift, MaxShift)
		s.YOffset = dispFactor * uniform(rng, -MaxShift, MaxShift)
		s.Rotation = rotFactor * uniform(rng, -MaxTurn, MaxTurn)
	}
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Bounds returns the largest |offset| and |rotation| a stone on row y can
// receive.
func Bounds(y float64, rows int, disp, rot float64) (shift, turn float64) {
	if rows <= 0 {
		return 0, 0
	}
	factor := y / float64(rows)
	return factor * disp * MaxShift, factor * rot * MaxTurn
}
