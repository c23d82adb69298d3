// Package rng provides the uniform random generators used to populate worlds.
package rng

import "math/rand/v2"

// Source produces uniformly distributed values over half-open ranges.
type Source interface {
	// Float returns a value in [min, max). Returns min when max <= min.
	Float(min, max float64) float64
	// Int returns a value in [min, max). Returns min when max <= min.
	Int(min, max int) int
}

// Rand is a seeded Source backed by a PCG generator
type Rand struct {
	r *rand.Rand
}

// New creates a generator seeded with seed
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float implements Source
func (g *Rand) Float(min, max float64) float64 {
	if max <= min {
		return min
	}
	v := min + g.r.Float64()*(max-min)
	// Rounding can land exactly on max for wide ranges
	if v >= max {
		return min
	}
	return v
}

// Int implements Source
func (g *Rand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.IntN(max-min)
}
