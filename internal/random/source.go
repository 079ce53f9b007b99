// Package random provides the randomness capability consumed by the value
// generators. Generators never reach for a global source; they take a Source
// argument so tests can script every draw.
package random

import (
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the generators draw from.
//
// Implementations are not required to be safe for concurrent use. Callers
// that generate from several goroutines own one Source per goroutine.
type Source interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Uint64 returns a uniformly distributed 64-bit value.
	Uint64() uint64
	// Uint64N returns a value in [0, n). It panics if n == 0.
	Uint64N(n uint64) uint64
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

var _ Source = (*rand.Rand)(nil)

// golden ratio increment, decorrelates the two PCG words of a single seed
const seedStream = 0x9e3779b97f4a7c15

// New returns a Source seeded from the runtime's entropy.
func New() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeeded returns a Source that produces the same draws for the same seed.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}
