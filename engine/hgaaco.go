// Package engine - hybrid GA/ACO.
//
// Two coupled searches over one instance: a GA sub-population evolved
// exactly like SGA, and a per-generation batch of ant-constructed tours
// guided by the pheromone matrix. The coupling runs both ways — elite
// tours from the combined pool deposit pheromone, and the best ant tours
// immigrate into the GA sub-population before its next generation.
//
// Ant construction is probabilistic roulette over
// pheromone(cur,c)^α · (1/dist(cur,c))^β across unvisited candidates;
// each ant places every city exactly once, so the per-ant work is
// bounded at O(n²) by construction.
package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

// zeroDistGuard substitutes for a zero distance in the 1/d heuristic so
// coincident cities remain maximally attractive without dividing by zero.
const zeroDistGuard = 1e-9

// HGAACO is the hybrid engine. Not safe for concurrent use.
type HGAACO struct {
	cfg HGAConfig
	rng *rand.Rand
	pop []tour.Individual
	ph  *Pheromone
	tr  tracker

	// weights is a reusable roulette buffer for ant construction.
	weights []float64
}

// NewHGAACO validates cfg and returns an engine ready for Init.
func NewHGAACO(cfg HGAConfig) (*HGAACO, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &HGAACO{cfg: cfg}, nil
}

// Name implements Engine.
func (h *HGAACO) Name() string { return "HGA-ACO" }

// Init builds the GA sub-population and seeds the pheromone matrix.
func (h *HGAACO) Init(dm *geom.DistMatrix, rng *rand.Rand) error {
	if rng == nil {
		rng = tour.NewRNG(0)
	}

	var (
		n    = dm.N()
		pop  = make([]tour.Individual, h.cfg.Population)
		perm []int
		err  error
		i    int
	)
	for i = 0; i < len(pop); i++ {
		perm, err = tour.Random(n, rng)
		if err != nil {
			return err
		}
		pop[i] = tour.NewIndividual(perm)
		if _, err = pop[i].Evaluate(dm); err != nil {
			return err
		}
	}
	sortByCost(pop)

	h.rng = rng
	h.pop = pop
	h.ph = newPheromone(n, h.cfg.InitialPheromone, h.cfg.PheromoneFloor)
	h.weights = make([]float64, n)
	h.tr = tracker{
		lastVersion: dm.Version(),
		bestPerm:    tour.Clone(pop[0].Perm),
		bestCost:    pop[0].Cost,
	}

	return nil
}

// antCount derives the ant batch size from the configured fraction of
// the population; any positive rate yields at least one ant.
func (h *HGAACO) antCount() int {
	if h.cfg.ACORate <= 0 {
		return 0
	}
	c := int(h.cfg.ACORate * float64(h.cfg.Population))
	if c < 1 {
		c = 1
	}

	return c
}

// constructAnt builds one tour by repeated roulette selection over
// unvisited cities, starting from a uniformly random city.
//
// Degenerate total weight (all candidates underflow to zero) falls back
// to a uniform random unvisited pick, which is exactly the behavior of a
// fully evaporated (floored) pheromone matrix.
//
// Complexity: O(n²) time, O(n) space (buffers reused across ants).
func (h *HGAACO) constructAnt(dm *geom.DistMatrix, visited []bool) ([]int, error) {
	var (
		n    = dm.N()
		perm = make([]int, 0, n)
		cur  = h.rng.Intn(n)
		c    int
	)
	for c = 0; c < n; c++ {
		visited[c] = false
	}
	perm = append(perm, cur)
	visited[cur] = true

	for len(perm) < n {
		var (
			total float64
			d     float64
			w     float64
		)
		for c = 0; c < n; c++ {
			if visited[c] {
				h.weights[c] = 0
				continue
			}
			d = dm.At(cur, c)
			if d < zeroDistGuard {
				d = zeroDistGuard
			}
			w = math.Pow(h.ph.At(cur, c), h.cfg.Alpha) * math.Pow(1/d, h.cfg.Beta)
			h.weights[c] = w
			total += w
		}

		next := -1
		if total > 0 && !math.IsInf(total, 1) && !math.IsNaN(total) {
			var (
				r   = h.rng.Float64() * total
				acc float64
			)
			for c = 0; c < n; c++ {
				if h.weights[c] <= 0 {
					continue
				}
				acc += h.weights[c]
				if acc >= r {
					next = c
					break
				}
			}
		}
		if next == -1 {
			// Uniform fallback among unvisited cities.
			var (
				k    = h.rng.Intn(n - len(perm))
				seen int
			)
			for c = 0; c < n; c++ {
				if visited[c] {
					continue
				}
				if seen == k {
					next = c
					break
				}
				seen++
			}
		}

		perm = append(perm, next)
		visited[next] = true
		cur = next
	}

	if err := tour.Validate(perm, n); err != nil {
		return nil, err
	}

	return perm, nil
}

// Step runs one hybrid generation:
//
//  1. Re-score everything if the distance matrix moved.
//  2. Construct and evaluate the ant batch.
//  3. Elite tours of the combined pool deposit Q/cost per edge, then the
//     matrix evaporates ×(1−ρ) and clamps to the floor.
//  4. The best ant tours immigrate into the GA sub-population, replacing
//     its worst members.
//  5. The GA sub-population evolves exactly as in SGA.
func (h *HGAACO) Step(dm *geom.DistMatrix) (StepInfo, error) {
	if h.pop == nil {
		return StepInfo{}, ErrNotInitialized
	}
	start := time.Now()

	if v := dm.Version(); v != h.tr.lastVersion {
		if err := h.rescore(dm); err != nil {
			return StepInfo{}, err
		}
		h.tr.lastVersion = v
	}

	// Ant batch.
	var (
		ants    = make([]tour.Individual, 0, h.antCount())
		visited = make([]bool, dm.N())
		perm    []int
		err     error
		i       int
	)
	for i = 0; i < h.antCount(); i++ {
		perm, err = h.constructAnt(dm, visited)
		if err != nil {
			return StepInfo{}, err
		}
		ind := tour.NewIndividual(perm)
		if _, err = ind.Evaluate(dm); err != nil {
			return StepInfo{}, err
		}
		ants = append(ants, ind)
	}
	sortByCost(ants)

	// Pheromone update from the combined pool's elite.
	combined := make([]tour.Individual, 0, len(h.pop)+len(ants))
	combined = append(combined, h.pop...)
	combined = append(combined, ants...)
	sortByCost(combined)

	deposit := h.cfg.EliteDeposit
	if deposit > len(combined) {
		deposit = len(combined)
	}
	for i = 0; i < deposit; i++ {
		if combined[i].Cost > 0 {
			h.ph.Deposit(combined[i].Perm, h.cfg.Q/combined[i].Cost)
		}
	}
	h.ph.Evaporate(h.cfg.Evaporation)

	// Immigration: best ants replace the GA sub-population's worst.
	imm := h.cfg.Immigrants
	if imm > len(ants) {
		imm = len(ants)
	}
	for i = 0; i < imm; i++ {
		h.pop[len(h.pop)-1-i] = tour.CloneIndividual(ants[i])
	}
	sortByCost(h.pop)

	// GA phase, identical to SGA.
	next, err := evolveGA(h.rng, dm, h.pop, gaParams{
		crossoverRate: h.cfg.CrossoverRate,
		mutationRate:  h.cfg.MutationRate,
		tournamentK:   h.cfg.TournamentK,
		elitism:       h.cfg.Elitism,
	})
	if err != nil {
		return StepInfo{}, err
	}
	h.pop = next
	h.tr.gen++

	// Best-ever may come from either sub-population.
	if len(ants) > 0 && ants[0].Cost < h.tr.bestCost {
		h.tr.bestCost = ants[0].Cost
		h.tr.bestPerm = tour.Clone(ants[0].Perm)
	}
	if h.pop[0].Cost < h.tr.bestCost {
		h.tr.bestCost = h.pop[0].Cost
		h.tr.bestPerm = tour.Clone(h.pop[0].Perm)
	}
	h.tr.elapsed += time.Since(start)

	return StepInfo{
		Engine:          h.Name(),
		Generation:      h.tr.gen,
		BestEverCost:    h.tr.bestCost,
		CurrentBestCost: h.pop[0].Cost,
		BestTour:        tour.Clone(h.tr.bestPerm),
		Elapsed:         h.tr.elapsed,
	}, nil
}

// rescore re-derives all cached costs from the live matrix. The
// pheromone matrix persists untouched: desirability is learned structure,
// not a cost cache.
func (h *HGAACO) rescore(dm *geom.DistMatrix) error {
	if err := rescorePopulation(dm, h.pop); err != nil {
		return err
	}
	c, err := tour.Cost(dm, h.tr.bestPerm)
	if err != nil {
		return err
	}
	h.tr.bestCost = c

	return nil
}

// Best implements Engine.
func (h *HGAACO) Best() Result {
	if h.pop == nil {
		return Result{}
	}

	return Result{Tour: tour.Clone(h.tr.bestPerm), Cost: h.tr.bestCost}
}

// PheromoneSnapshot exposes a copy of the pheromone matrix for heatmap
// rendering. Returns nil before Init.
func (h *HGAACO) PheromoneSnapshot() [][]float64 {
	if h.ph == nil {
		return nil
	}

	return h.ph.Snapshot()
}
