// Package tour - bounded 2-opt local search.
//
// TwoOptImprove runs first-improvement 2-opt on an open permutation:
// reversing the segment [i..k] replaces edges (a,b) and (c,d) with (a,c)
// and (b,d), where a=perm[i-1], b=perm[i], c=perm[k], d=perm[(k+1)%n].
// Position 0 stays fixed, which covers the full symmetric neighborhood
// without re-examining rotations of the same cycle.
//
// The pass budget is mandatory: a generation tick must never do unbounded
// work, so the scan stops after maxPasses full sweeps even if further
// improvements remain.
package tour

import "github.com/katalvlaran/dyntsp/geom"

// twoOptEps is the strict improvement threshold: a reversal is accepted
// only when it shortens the tour by more than this tolerance, preventing
// infinite loops on floating-point ties.
const twoOptEps = 1e-9

// TwoOptImprove improves perm in place and returns its final cost.
//
// Contracts:
//   - len(perm) == dm.N(), otherwise ErrDimensionMismatch.
//   - maxPasses ≥ 1 sweeps are performed at most; maxPasses ≤ 0 is
//     normalized to 1 so the bound always exists.
//
// Complexity: O(maxPasses·n²) time worst case, O(1) extra space.
func TwoOptImprove(dm *geom.DistMatrix, perm []int, maxPasses int) (float64, error) {
	n := dm.N()
	if len(perm) != n {
		return 0, ErrDimensionMismatch
	}
	if maxPasses <= 0 {
		maxPasses = 1
	}
	if n < 4 {
		// Fewer than four cities admit no improving reversal.
		return Cost(dm, perm)
	}

	var (
		pass       int
		improved   bool
		i, k       int
		a, b, c, d int
		delta      float64
	)
	for pass = 0; pass < maxPasses; pass++ {
		improved = false
		for i = 1; i < n-1; i++ {
			for k = i + 1; k < n; k++ {
				a = perm[i-1]
				b = perm[i]
				c = perm[k]
				d = perm[(k+1)%n]
				if a == d {
					// Reversing the whole remainder rewires nothing.
					continue
				}
				delta = dm.At(a, c) + dm.At(b, d) - dm.At(a, b) - dm.At(c, d)
				if delta < -twoOptEps {
					reverseInPlace(perm, i, k)
					improved = true
				}
			}
		}
		if !improved {
			break // local optimum under the 2-opt neighborhood
		}
	}

	return Cost(dm, perm)
}

// reverseInPlace reverses the inclusive segment perm[i..k].
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(perm []int, i, k int) {
	for i < k {
		perm[i], perm[k] = perm[k], perm[i]
		i++
		k--
	}
}
