package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fixture-generator/internal/random"
)

func TestNewSeeded_Reproducible(t *testing.T) {
	t.Parallel()

	a := random.NewSeeded(42)
	b := random.NewSeeded(42)

	for range 32 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewSeeded_DifferentSeeds(t *testing.T) {
	t.Parallel()

	a := random.NewSeeded(1)
	b := random.NewSeeded(2)

	same := 0
	for range 32 {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}

	assert.Less(t, same, 32)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	t.Run("replays and cycles", func(t *testing.T) {
		t.Parallel()

		s := random.NewSequence(7, 3)

		assert.Equal(t, uint64(7), s.Uint64())
		assert.Equal(t, uint64(3), s.Uint64())
		assert.Equal(t, uint64(7), s.Uint64())
		assert.Equal(t, 3, s.Consumed())
	})

	t.Run("bounded draws", func(t *testing.T) {
		t.Parallel()

		s := random.NewSequence(10, 10, 10)

		assert.Equal(t, 1, s.IntN(3))
		assert.Equal(t, uint64(2), s.Uint64N(4))
		assert.InDelta(t, 10.0/(1<<53), s.Float64(), 1e-20)
	})

	t.Run("empty draws zero", func(t *testing.T) {
		t.Parallel()

		s := random.NewSequence()

		assert.Equal(t, 0, s.IntN(5))
		assert.Zero(t, s.Float64())
	})

	t.Run("does not alias caller slice", func(t *testing.T) {
		t.Parallel()

		draws := []uint64{1, 2}
		s := random.NewSequence(draws...)
		draws[0] = 99

		assert.Equal(t, uint64(1), s.Uint64())
	})

	t.Run("invalid bounds panic", func(t *testing.T) {
		t.Parallel()

		s := random.NewSequence(1)

		assert.Panics(t, func() { s.IntN(0) })
		assert.Panics(t, func() { s.Uint64N(0) })
	})
}
