// Package tour_test - genetic operator properties.
//
// Focus: permutation validity of OX output for arbitrary parents and
// slice bounds, validity of swap mutation for any rate in [0,1], and
// corruption surfacing as ErrInvalidPermutation.
package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyntsp/tour"
)

func TestOrderedCrossover_AlwaysValid(t *testing.T) {
	sizes := []int{2, 3, 4, 7, 20, 60}
	for _, n := range sizes {
		for seed := int64(1); seed <= 40; seed++ {
			rng := tour.NewRNG(seed)
			a, err := tour.Random(n, rng)
			require.NoError(t, err)
			b, err := tour.Random(n, rng)
			require.NoError(t, err)

			child, err := tour.OrderedCrossover(rng, a, b)
			require.NoError(t, err, "n=%d seed=%d", n, seed)
			require.NoError(t, tour.Validate(child, n), "n=%d seed=%d", n, seed)
		}
	}
}

func TestOrderedCrossover_PreservesParentSlice(t *testing.T) {
	// With a deterministic stream, re-running the operator reproduces the
	// same child, and parents stay untouched.
	a := []int{0, 1, 2, 3, 4, 5}
	b := []int{5, 4, 3, 2, 1, 0}
	aCopy := tour.Clone(a)
	bCopy := tour.Clone(b)

	c1, err := tour.OrderedCrossover(tour.NewRNG(13), a, b)
	require.NoError(t, err)
	c2, err := tour.OrderedCrossover(tour.NewRNG(13), a, b)
	require.NoError(t, err)

	require.Equal(t, c1, c2)
	require.Equal(t, aCopy, a)
	require.Equal(t, bCopy, b)
	require.NoError(t, tour.Validate(c1, len(a)))
}

func TestOrderedCrossover_Errors(t *testing.T) {
	rng := tour.NewRNG(1)

	_, err := tour.OrderedCrossover(rng, []int{0, 1}, []int{0, 1, 2})
	require.ErrorIs(t, err, tour.ErrDimensionMismatch)

	_, err = tour.OrderedCrossover(rng, nil, nil)
	require.ErrorIs(t, err, tour.ErrDimensionMismatch)

	// Corrupted parents cannot fill a valid child; the defect surfaces
	// instead of propagating a broken tour.
	for seed := int64(1); seed <= 20; seed++ {
		_, err = tour.OrderedCrossover(tour.NewRNG(seed), []int{0, 0, 1, 1}, []int{0, 0, 1, 1})
		require.ErrorIs(t, err, tour.ErrInvalidPermutation, "seed=%d", seed)
	}
}

func TestSwapMutate_AlwaysValid(t *testing.T) {
	rates := []float64{0, 0.01, 0.15, 0.5, 1}
	for _, rate := range rates {
		for seed := int64(1); seed <= 30; seed++ {
			rng := tour.NewRNG(seed)
			p, err := tour.Random(25, rng)
			require.NoError(t, err)

			tour.SwapMutate(rng, p, rate)
			require.NoError(t, tour.Validate(p, 25), "rate=%v seed=%d", rate, seed)
		}
	}
}

func TestSwapMutate_RateZeroIsIdentity(t *testing.T) {
	rng := tour.NewRNG(5)
	p, err := tour.Random(12, rng)
	require.NoError(t, err)
	before := tour.Clone(p)

	tour.SwapMutate(rng, p, 0)
	require.Equal(t, before, p)
}

func TestSwapMutate_RateOneDisturbs(t *testing.T) {
	rng := tour.NewRNG(5)
	p, err := tour.Random(50, rng)
	require.NoError(t, err)
	before := tour.Clone(p)

	tour.SwapMutate(rng, p, 1)
	require.NoError(t, tour.Validate(p, 50))
	assert.NotEqual(t, before, p, "rate 1 on 50 cities should practically always move something")
}

func TestSwapMutate_ClampsRateAboveOne(t *testing.T) {
	rng := tour.NewRNG(2)
	p, err := tour.Random(10, rng)
	require.NoError(t, err)

	tour.SwapMutate(rng, p, 3.5)
	require.NoError(t, tour.Validate(p, 10))
}
