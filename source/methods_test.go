package source_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Independent(t *testing.T) {
	s := newSource(t, 3)
	require.NoError(t, s.SetSource([]string{"a", "b", "c"}))

	c := s.Clone()
	assert.Equal(t, s.Probs(), c.Probs())
	assert.Equal(t, s.Codes(), c.Codes())
	assert.Equal(t, s.Labels(), c.Labels())
	assert.Equal(t, s.Encoder(), c.Encoder())
	assert.Equal(t, s.Decoder(), c.Decoder())
	assert.Equal(t, s.Rendering(), c.Rendering())

	require.NoError(t, c.SetSource([]string{"x", "y", "z"}))
	require.NoError(t, c.SetCodes([][]byte{{5}, {6}, {7}}))
	require.NoError(t, c.SetProbs([]float64{0.2, 0.3, 0.5}))

	assert.Equal(t, []string{"a", "b", "c"}, s.Labels())
	assert.Equal(t, [][]byte{{0}, {1}, {2}}, s.Codes())
	_, ok := s.Encode("x")
	assert.False(t, ok)
	_, ok = s.DecodeRendered("5")
	assert.False(t, ok)
}

func TestEntropy(t *testing.T) {
	s := newSource(t, 4)

	require.NoError(t, s.SetProbs([]float64{0.25, 0.25, 0.25, 0.25}))
	assert.InDelta(t, 2.0, s.Entropy(), 1e-12)

	require.NoError(t, s.SetProbs([]float64{1, 0, 0, 0}))
	assert.InDelta(t, 0.0, s.Entropy(), 1e-12)

	require.NoError(t, s.SetProbs([]float64{0.5, 0.25, 0.125, 0.125}))
	assert.InDelta(t, 1.75, s.Entropy(), 1e-12)
	assert.False(t, math.IsNaN(s.Entropy()))
}

func TestExpectedLength(t *testing.T) {
	s := newSource(t, 4)
	require.NoError(t, s.SetProbs([]float64{0.5, 0.25, 0.125, 0.125}))
	require.NoError(t, s.SetCodes([][]byte{{0}, {1, 0}, {1, 1, 0}, {1, 1, 1}}))

	assert.InDelta(t, 1.75, s.ExpectedLength(), 1e-12)
}
