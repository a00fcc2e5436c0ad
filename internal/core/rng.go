package core

import (
	"image/color"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Int64 returns a non-negative pseudo-random int64, used to derive seeds.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Range returns a random integer in [lo, hi].
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Palette returns n warm, opaque colours for decorative bars.
func (r *RNG) Palette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = color.RGBA{
			R: uint8(r.Range(100, 250)),
			G: uint8(r.Range(50, 150)),
			B: uint8(r.Range(10, 100)),
			A: 255,
		}
	}
	return out
}
