// Package geom - dense Euclidean distance matrix.
//
// DistMatrix stores pairwise distances in a linearized row-major buffer
// w[i*n+j], the same layout the local-search hot loops prefer: one slice
// read per lookup, no interface indirection, no per-call validation.
//
// Invariants (held by construction, checked by tests):
//   - square n×n, n ≥ 2;
//   - symmetric: w[i*n+j] == w[j*n+i];
//   - zero diagonal: w[i*n+i] == 0.
//
// Rebuild recomputes the whole buffer from a fresh city slice and bumps
// Version; every cached tour cost anywhere in the system is stale once
// Version changes, and engines re-evaluate against the live matrix.
package geom

import "math"

// DistMatrix is a symmetric zero-diagonal Euclidean distance matrix.
// The zero value is unusable; construct via NewDistMatrix.
type DistMatrix struct {
	n       int
	w       []float64
	version uint64
}

// NewDistMatrix builds the full pairwise matrix for cities.
//
// Contracts:
//   - len(cities) ≥ 2, otherwise ErrTooFewCities.
//
// Complexity: O(n²) time, O(n²) space.
func NewDistMatrix(cities []City) (*DistMatrix, error) {
	n := len(cities)
	if n < 2 {
		return nil, ErrTooFewCities
	}
	dm := &DistMatrix{n: n, w: make([]float64, n*n)}
	dm.fill(cities)
	dm.version = 1

	return dm, nil
}

// Rebuild recomputes every pairwise distance from cities and increments
// Version. Called once at setup and, in a dynamic run, exactly once per
// generation tick before any engine evaluates tours.
//
// Contracts:
//   - len(cities) must equal N(), otherwise ErrDimensionMismatch.
//
// Complexity: O(n²) time, O(1) extra space (buffer reused).
func (dm *DistMatrix) Rebuild(cities []City) error {
	if len(cities) != dm.n {
		return ErrDimensionMismatch
	}
	dm.fill(cities)
	dm.version++

	return nil
}

// fill writes all pairwise distances into the reused buffer.
// Symmetry and the zero diagonal hold by construction: each unordered
// pair is computed once and mirrored.
func (dm *DistMatrix) fill(cities []City) {
	var (
		n    = dm.n
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		dm.w[i*n+i] = 0
		for j = i + 1; j < n; j++ {
			d = math.Hypot(cities[i].X-cities[j].X, cities[i].Y-cities[j].Y)
			dm.w[i*n+j] = d
			dm.w[j*n+i] = d
		}
	}
}

// At returns the distance between cities i and j.
// Hot-path accessor: indices must be in [0..N()-1]; out-of-range indices
// are a programmer error and fault via the underlying slice bounds check.
//
// Complexity: O(1).
func (dm *DistMatrix) At(i, j int) float64 { return dm.w[i*dm.n+j] }

// N returns the matrix order (number of cities).
func (dm *DistMatrix) N() int { return dm.n }

// Version returns the rebuild counter. It starts at 1 and increases by
// exactly one per Rebuild; consumers compare it to decide whether their
// cached costs are still trustworthy.
func (dm *DistMatrix) Version() uint64 { return dm.version }
