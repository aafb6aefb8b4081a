package sampler_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kgram/sampler"
)

// Draw counts and tolerances shared by the convergence tests.
const (
	nDraws    = 100_000
	tolerance = 0.01
	seedFixed = 42
)

// empirical draws n indexes with draw and returns their relative frequencies.
func empirical(t *testing.T, size, n int, draw func() (int, error)) []float64 {
	t.Helper()
	counts := make([]float64, size)
	for i := 0; i < n; i++ {
		idx, err := draw()
		require.NoError(t, err)
		counts[idx]++
	}
	floats.Scale(1/float64(n), counts)
	return counts
}

// TestDiscrete_Validation covers every caller error class.
func TestDiscrete_Validation(t *testing.T) {
	r := sampler.NewRand(seedFixed)

	cases := []struct {
		name    string
		weights []int
		want    error
	}{
		{"nil", nil, sampler.ErrNoMass},
		{"empty", []int{}, sampler.ErrNoMass},
		{"all zero", []int{0, 0, 0}, sampler.ErrNoMass},
		{"negative", []int{3, -1, 2}, sampler.ErrNegativeWeight},
		{"overflow", []int{math.MaxInt64, 1}, sampler.ErrWeightOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sampler.Discrete(r, tc.weights)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, sampler.ErrInvalidArgument, "every failure is an invalid argument")
		})
	}
}

// TestDiscrete_SinglePositive checks that the only positive weight always wins.
func TestDiscrete_SinglePositive(t *testing.T) {
	r := sampler.NewRand(seedFixed)
	weights := []int{0, 0, 5, 0}
	for i := 0; i < 1000; i++ {
		idx, err := sampler.Discrete(r, weights)
		require.NoError(t, err)
		require.Equal(t, 2, idx)
	}
}

// TestDiscrete_NeverPicksZeroWeight checks zero-weight slots at the edges and in between.
func TestDiscrete_NeverPicksZeroWeight(t *testing.T) {
	r := sampler.NewRand(seedFixed)
	weights := []int{0, 1, 0, 0, 1, 0}
	for i := 0; i < 10_000; i++ {
		idx, err := sampler.Discrete(r, weights)
		require.NoError(t, err)
		require.Contains(t, []int{1, 4}, idx)
	}
}

// TestDiscrete_Converges checks that empirical frequencies match weight ratios.
func TestDiscrete_Converges(t *testing.T) {
	r := sampler.NewRand(seedFixed)
	weights := []int{1, 0, 3, 6}
	want, err := sampler.Normalize(weights)
	require.NoError(t, err)

	got := empirical(t, len(weights), nDraws, func() (int, error) {
		return sampler.Discrete(r, weights)
	})
	assert.True(t, floats.EqualApprox(want, got, tolerance), "want %v, got %v", want, got)
	assert.Zero(t, got[1], "zero weight must never be drawn")
}

// TestDiscrete_ProcessWideGenerator exercises the nil-generator path.
func TestDiscrete_ProcessWideGenerator(t *testing.T) {
	idx, err := sampler.Discrete(nil, []int{0, 7})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

// TestDiscreteFloat_Validation covers float-specific rejections.
func TestDiscreteFloat_Validation(t *testing.T) {
	r := sampler.NewRand(seedFixed)

	_, err := sampler.DiscreteFloat(r, nil)
	assert.ErrorIs(t, err, sampler.ErrNoMass)
	_, err = sampler.DiscreteFloat(r, []float64{0, 0})
	assert.ErrorIs(t, err, sampler.ErrNoMass)
	_, err = sampler.DiscreteFloat(r, []float64{1, -0.5})
	assert.ErrorIs(t, err, sampler.ErrNegativeWeight)
	_, err = sampler.DiscreteFloat(r, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, sampler.ErrNegativeWeight)
	_, err = sampler.DiscreteFloat(r, []float64{math.Inf(1)})
	assert.ErrorIs(t, err, sampler.ErrNegativeWeight)
	_, err = sampler.DiscreteFloat(r, []float64{math.MaxFloat64, math.MaxFloat64})
	assert.ErrorIs(t, err, sampler.ErrWeightOverflow)
}

// TestDiscreteFloat_Converges mirrors TestDiscrete_Converges for real weights.
func TestDiscreteFloat_Converges(t *testing.T) {
	r := sampler.NewRand(seedFixed)
	weights := []float64{0.5, 0.25, 0, 0.25}
	want := []float64{0.5, 0.25, 0, 0.25}

	got := empirical(t, len(weights), nDraws, func() (int, error) {
		return sampler.DiscreteFloat(r, weights)
	})
	assert.True(t, floats.EqualApprox(want, got, tolerance), "want %v, got %v", want, got)
}

// TestNormalize checks the probability vector and its validation.
func TestNormalize(t *testing.T) {
	probs, err := sampler.Normalize([]int{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, probs)
	assert.InDelta(t, 1.0, floats.Sum(probs), 1e-12)

	_, err = sampler.Normalize([]int{0})
	assert.ErrorIs(t, err, sampler.ErrNoMass)
}

// TestSampler_SeedDeterminism checks that equal seeds replay equal draws.
func TestSampler_SeedDeterminism(t *testing.T) {
	weights := []int{4, 1, 1, 2, 8}
	a := sampler.New(sampler.WithSeed(seedFixed))
	b := sampler.New(sampler.WithRand(rand.New(rand.NewSource(seedFixed))))

	for i := 0; i < 500; i++ {
		x, err := a.Index(weights)
		require.NoError(t, err)
		y, err := b.Index(weights)
		require.NoError(t, err)
		require.Equal(t, x, y, "draw %d diverged", i)
	}
}

// TestSampler_ZeroSeedIsDefault checks the seed==0 policy.
func TestSampler_ZeroSeedIsDefault(t *testing.T) {
	a := sampler.NewRand(0)
	b := sampler.NewRand(1)
	assert.Equal(t, a.Int63(), b.Int63())
}

// TestSampler_IndexFloat exercises the float path through a Sampler.
func TestSampler_IndexFloat(t *testing.T) {
	s := sampler.New(sampler.WithSeed(seedFixed))
	idx, err := s.IndexFloat([]float64{0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

// TestWithRand_NilPanics checks option validation.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { sampler.WithRand(nil) })
}
