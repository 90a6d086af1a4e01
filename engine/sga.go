// Package engine - standard genetic algorithm.
//
// State machine: Init → {rescore? → Select → Crossover → Mutate →
// Elitism → Evaluate}* — one iteration per Step call; the harness owns
// the generation budget.
package engine

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

// SGA is the standard genetic algorithm engine. Not safe for concurrent
// use; the harness steps engines sequentially within a tick.
type SGA struct {
	cfg SGAConfig
	rng *rand.Rand
	pop []tour.Individual
	tr  tracker
}

// NewSGA validates cfg and returns an engine ready for Init.
func NewSGA(cfg SGAConfig) (*SGA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &SGA{cfg: cfg}, nil
}

// Name implements Engine.
func (s *SGA) Name() string { return "SGA" }

// Init generates and evaluates a random population for the instance.
// A nil rng falls back to the default deterministic stream.
func (s *SGA) Init(dm *geom.DistMatrix, rng *rand.Rand) error {
	if rng == nil {
		rng = tour.NewRNG(0)
	}

	var (
		n    = dm.N()
		pop  = make([]tour.Individual, s.cfg.Population)
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

	s.rng = rng
	s.pop = pop
	s.tr = tracker{
		lastVersion: dm.Version(),
		bestPerm:    tour.Clone(pop[0].Perm),
		bestCost:    pop[0].Cost,
	}

	return nil
}

// Step advances one generation. In static mode BestEverCost is monotone
// non-increasing; after a distance rebuild it is first re-scored against
// the live matrix (and may rise) before the generation runs.
func (s *SGA) Step(dm *geom.DistMatrix) (StepInfo, error) {
	if s.pop == nil {
		return StepInfo{}, ErrNotInitialized
	}
	start := time.Now()

	if v := dm.Version(); v != s.tr.lastVersion {
		if err := s.rescore(dm); err != nil {
			return StepInfo{}, err
		}
		s.tr.lastVersion = v
	}

	next, err := evolveGA(s.rng, dm, s.pop, gaParams{
		crossoverRate: s.cfg.CrossoverRate,
		mutationRate:  s.cfg.MutationRate,
		tournamentK:   s.cfg.TournamentK,
		elitism:       s.cfg.Elitism,
	})
	if err != nil {
		return StepInfo{}, err
	}
	s.pop = next
	s.tr.gen++

	if s.pop[0].Cost < s.tr.bestCost {
		s.tr.bestCost = s.pop[0].Cost
		s.tr.bestPerm = tour.Clone(s.pop[0].Perm)
	}
	s.tr.elapsed += time.Since(start)

	return StepInfo{
		Engine:          s.Name(),
		Generation:      s.tr.gen,
		BestEverCost:    s.tr.bestCost,
		CurrentBestCost: s.pop[0].Cost,
		BestTour:        tour.Clone(s.tr.bestPerm),
		Elapsed:         s.tr.elapsed,
	}, nil
}

// rescore re-derives all cached costs, including the best-ever tour's,
// from the live matrix.
func (s *SGA) rescore(dm *geom.DistMatrix) error {
	if err := rescorePopulation(dm, s.pop); err != nil {
		return err
	}
	c, err := tour.Cost(dm, s.tr.bestPerm)
	if err != nil {
		return err
	}
	s.tr.bestCost = c

	return nil
}

// Best implements Engine.
func (s *SGA) Best() Result {
	if s.pop == nil {
		return Result{}
	}

	return Result{Tour: tour.Clone(s.tr.bestPerm), Cost: s.tr.bestCost}
}
