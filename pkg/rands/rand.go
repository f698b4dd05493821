// Package rands defines the random source contract consumed by the token
// mutation core, together with a PCG-backed default implementation.
package rands

import (
	"math/rand/v2"

	"fortio.org/safecast"
)

// Rand is the capability every mutator draws from. Implementations are owned
// by a single worker for the duration of a mutation call.
type Rand interface {
	// Next returns an unbounded, uniformly distributed 64-bit value.
	Next() uint64
	// Below returns a uniformly distributed value in [0, n).
	// Implementations return 0 when n is 0.
	Below(n uint64) uint64
}

// Std is the default Rand, a PCG generator from math/rand/v2.
type Std struct {
	rng *rand.Rand
}

// NewStd creates a Std seeded with seed and stream. Two generators created
// with the same pair produce the same sequence.
func NewStd(seed, stream uint64) *Std {
	return &Std{rng: rand.New(rand.NewPCG(seed, stream))}
}

// Next implements Rand.
func (s *Std) Next() uint64 {
	return s.rng.Uint64()
}

// Below implements Rand.
func (s *Std) Below(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	return s.rng.Uint64N(n)
}

// Index draws a uniform index in [0, n). It reports false when n is not
// positive, which callers treat as "nothing to pick".
func Index(r Rand, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}

	bound, err := safecast.Conv[uint64](n)
	if err != nil {
		return 0, false
	}

	idx, err := safecast.Conv[int](r.Below(bound))
	if err != nil || idx >= n {
		return 0, false
	}

	return idx, true
}

// Choose returns a uniformly chosen element of items. It reports false for
// an empty slice.
func Choose[E any](r Rand, items []E) (E, bool) {
	idx, ok := Index(r, len(items))
	if !ok {
		var zero E
		return zero, false
	}

	return items[idx], true
}
