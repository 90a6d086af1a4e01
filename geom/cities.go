// Package geom - instance builders.
//
// Generate draws n cities uniformly inside a width×height grid from a
// seeded stream; Fixed10 returns the canonical 10-city benchmark layout
// used by the deterministic end-to-end tests.
package geom

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, so default runs stay reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Generate returns n cities drawn uniformly from [0,width)×[0,height).
//
// Contracts:
//   - n ≥ 2, otherwise ErrTooFewCities.
//   - width > 0 and height > 0, otherwise ErrBadGrid.
//   - Same (n, width, height, seed) ⇒ identical city set.
//
// Complexity: O(n) time, O(n) space.
func Generate(n int, width, height float64, seed int64) ([]City, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadGrid
	}

	var (
		rng = rngFromSeed(seed)
		out = make([]City, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = City{X: rng.Float64() * width, Y: rng.Float64() * height}
	}

	return out, nil
}

// Fixed10 returns a fixed set of ten cities on a 220×220 grid.
// Useful for deterministic tests and quick demos: the layout is small
// enough for an observer to judge tour quality by eye.
//
// Complexity: O(1).
func Fixed10() []City {
	return []City{
		{60, 200}, {180, 200}, {80, 180}, {140, 180}, {20, 160},
		{100, 160}, {200, 160}, {140, 140}, {40, 120}, {100, 120},
	}
}

// CopyCities returns an independent copy of cities.
//
// Complexity: O(n) time, O(n) space.
func CopyCities(cities []City) []City {
	if cities == nil {
		return nil
	}
	out := make([]City, len(cities))
	copy(out, cities)

	return out
}
