package source

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPartition_SumsToOne(t *testing.T) {
	rng := rngFromSeed(7)
	for n := 1; n <= 64; n++ {
		probs := randomPartition(n, rng)
		require.Len(t, probs, n)

		var sum float64
		for _, p := range probs {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "n=%d", n)
	}
}

func TestRandomPartition_Empty(t *testing.T) {
	assert.Empty(t, randomPartition(0, rngFromSeed(0)))
}

func TestRandomPartition_Single(t *testing.T) {
	assert.Equal(t, []float64{1}, randomPartition(1, rngFromSeed(0)))
}

func TestRngFromSeed_ZeroUsesDefault(t *testing.T) {
	a := rngFromSeed(0)
	b := rand.New(rand.NewSource(defaultRNGSeed))
	for i := 0; i < 8; i++ {
		assert.Equal(t, b.Int63(), a.Int63())
	}
}
