// Package tour - tour length and the cached Individual.
//
// Cost sums the distances between consecutive cities, including the
// wrap-around edge from the last city back to the first. Lookups go
// through geom.DistMatrix.At, an O(1) slice read — no raw Euclidean
// recomputation ever happens on this path.
//
// Costs are stabilized to 1e-9 so accumulated floating-point noise never
// flips a comparison between platforms.
package tour

import (
	"math"

	"github.com/katalvlaran/dyntsp/geom"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Cost returns the closed-loop length of perm over dm.
//
// Contracts:
//   - len(perm) == dm.N(), otherwise ErrDimensionMismatch.
//   - perm must be a valid permutation; indices are read unchecked on the
//     hot path, so callers uphold the invariant (engines do, inductively).
//
// Complexity: O(n) time, O(1) space.
func Cost(dm *geom.DistMatrix, perm []int) (float64, error) {
	n := dm.N()
	if len(perm) != n {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dm.At(perm[i], perm[i+1])
	}
	sum += dm.At(perm[n-1], perm[0]) // wrap-around edge closes the loop

	return round1e9(sum), nil
}

// Individual couples a tour with its cached cost. The cache is only as
// fresh as the last Evaluate call; after a distance-matrix rebuild the
// owner must re-evaluate before trusting Cost again.
type Individual struct {
	Perm []int
	Cost float64
}

// NewIndividual wraps perm (not copied) with an unevaluated cost.
func NewIndividual(perm []int) Individual {
	return Individual{Perm: perm, Cost: math.Inf(1)}
}

// Evaluate recomputes and caches the tour cost against dm.
//
// Complexity: O(n).
func (ind *Individual) Evaluate(dm *geom.DistMatrix) (float64, error) {
	c, err := Cost(dm, ind.Perm)
	if err != nil {
		return 0, err
	}
	ind.Cost = c

	return c, nil
}

// CloneIndividual returns a deep copy: tours are copied, never aliased,
// when an individual is used as a parent or template.
func CloneIndividual(ind Individual) Individual {
	return Individual{Perm: Clone(ind.Perm), Cost: ind.Cost}
}
