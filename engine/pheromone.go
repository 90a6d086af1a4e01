// Package engine - the shared pheromone matrix of HGA-ACO.
//
// Symmetric n×n desirability values that persist across generations:
// elite tours deposit Q/cost on each of their edges, then the whole
// matrix evaporates by ×(1−ρ) and is clamped to a small positive floor.
// The floor prevents zero-probability traps during ant construction; a
// matrix where everything sits at the floor makes construction uniform
// random — not an error, but visible through Snapshot for diagnosis.
package engine

// Pheromone is a symmetric matrix of edge desirabilities.
// The zero value is unusable; construct via newPheromone.
type Pheromone struct {
	n     int
	v     []float64
	floor float64
}

// newPheromone seeds every off-diagonal edge with initial.
// Contracts: n ≥ 2, initial ≥ floor > 0 (enforced by HGAConfig.Validate).
//
// Complexity: O(n²).
func newPheromone(n int, initial, floor float64) *Pheromone {
	p := &Pheromone{n: n, v: make([]float64, n*n), floor: floor}
	for i := range p.v {
		p.v[i] = initial
	}

	return p
}

// At returns the desirability of edge (i,j). Hot-path accessor; indices
// must be in range.
//
// Complexity: O(1).
func (p *Pheromone) At(i, j int) float64 { return p.v[i*p.n+j] }

// Deposit adds amount to every edge of the closed tour perm, in both
// directions (the instance is symmetric).
//
// Complexity: O(n).
func (p *Pheromone) Deposit(perm []int, amount float64) {
	var (
		n    = len(perm)
		i    int
		u, v int
	)
	for i = 0; i < n; i++ {
		u = perm[i]
		v = perm[(i+1)%n]
		p.v[u*p.n+v] += amount
		p.v[v*p.n+u] += amount
	}
}

// Evaporate decays every edge by ×(1−rho) and clamps to the floor.
// rho==1 drives the whole matrix to the floor in a single step.
//
// Complexity: O(n²).
func (p *Pheromone) Evaporate(rho float64) {
	keep := 1 - rho
	for i := range p.v {
		p.v[i] *= keep
		if p.v[i] < p.floor {
			p.v[i] = p.floor
		}
	}
}

// Snapshot returns an independent copy of the matrix, row by row —
// the external heatmap rendering hook.
//
// Complexity: O(n²).
func (p *Pheromone) Snapshot() [][]float64 {
	out := make([][]float64, p.n)
	var i int
	for i = 0; i < p.n; i++ {
		row := make([]float64, p.n)
		copy(row, p.v[i*p.n:(i+1)*p.n])
		out[i] = row
	}

	return out
}
