// Package tour - permutation construction and validation.
package tour

import "math/rand"

// Random returns a uniformly random permutation of 0..n-1 drawn from rng.
//
// Contracts:
//   - n ≥ 1, otherwise ErrDimensionMismatch.
//   - rng must be non-nil (engines always pass a seeded stream).
//
// Complexity: O(n) time, O(n) space.
func Random(n int, rng *rand.Rand) ([]int, error) {
	if n < 1 {
		return nil, ErrDimensionMismatch
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleInPlace(p, rng)

	return p, nil
}

// Validate checks that perm is a permutation of {0..n-1} of length n.
// This is the hard invariant every operator in this package preserves;
// a failure after setup means operator corruption, not bad user input.
//
// Complexity: O(n) time, O(n) space.
func Validate(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrInvalidPermutation
		}
		if seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of perm.
//
// Complexity: O(n) time, O(n) space.
func Clone(perm []int) []int {
	if perm == nil {
		return nil
	}
	out := make([]int, len(perm))
	copy(out, perm)

	return out
}
