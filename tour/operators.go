// Package tour - genetic operators (ordered crossover, swap mutation).
//
// Both operators guarantee permutation validity: OX by construction over
// valid parents (with an output check that surfaces upstream corruption
// as ErrInvalidPermutation instead of propagating it), swap mutation
// trivially (swaps cannot lose or duplicate a city).
package tour

import "math/rand"

// OrderedCrossover builds a child via the OX operator: a contiguous
// random slice [lo..hi] is copied from parent a into the same positions
// of the child; remaining positions are filled left-to-right with parent
// b's cities in b's relative order, skipping cities already present.
//
// Contracts:
//   - len(a) == len(b) == n ≥ 1, otherwise ErrDimensionMismatch.
//   - a and b are valid permutations of 0..n-1; if they are not, the
//     fill cannot complete and ErrInvalidPermutation is returned.
//   - Parents are never aliased into the child.
//
// Complexity: O(n) time, O(n) space.
func OrderedCrossover(rng *rand.Rand, a, b []int) ([]int, error) {
	n := len(a)
	if n < 1 || len(b) != n {
		return nil, ErrDimensionMismatch
	}

	// Random inclusive slice bounds lo ≤ hi.
	lo := rng.Intn(n)
	hi := rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}

	var (
		child = make([]int, n)
		taken = make([]bool, n) // cities already claimed by a's slice
		i     int
		v     int
	)
	for i = 0; i < n; i++ {
		child[i] = -1
	}
	for i = lo; i <= hi; i++ {
		v = a[i]
		if v < 0 || v >= n || taken[v] {
			return nil, ErrInvalidPermutation
		}
		child[i] = v
		taken[v] = true
	}

	// Fill the gaps with b's cities in b's relative order.
	var bIdx int
	for i = 0; i < n; i++ {
		if child[i] != -1 {
			continue
		}
		for bIdx < n {
			v = b[bIdx]
			bIdx++
			if v < 0 || v >= n {
				return nil, ErrInvalidPermutation
			}
			if !taken[v] {
				child[i] = v
				taken[v] = true
				break
			}
		}
		if child[i] == -1 {
			// b ran out of fresh cities: parents were not permutations.
			return nil, ErrInvalidPermutation
		}
	}

	return child, nil
}

// SwapMutate mutates perm in place: each position independently swaps
// with a uniformly chosen position with probability rate. A swap can pick
// its own position, which is a harmless no-op.
//
// Contracts:
//   - rate is expected in [0,1] (validated at configuration load);
//     values outside are clamped defensively so the permutation invariant
//     can never be threatened by a bad parameter.
//
// Complexity: O(n) time, O(1) space.
func SwapMutate(rng *rand.Rand, perm []int, rate float64) {
	if rate <= 0 || len(perm) < 2 {
		return
	}
	if rate > 1 {
		rate = 1
	}

	var (
		i int
		j int
	)
	for i = 0; i < len(perm); i++ {
		if rng.Float64() < rate {
			j = rng.Intn(len(perm))
			perm[i], perm[j] = perm[j], perm[i]
		}
	}
}
