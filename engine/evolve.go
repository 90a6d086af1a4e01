// Package engine - shared GA machinery.
//
// One generation of selection → crossover → mutation → elitism, used
// verbatim by SGA and as the GA phase of HGA-ACO. The helper returns the
// next population sorted by ascending cost, so callers read the current
// best at index 0 without rescanning.
package engine

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

// gaParams is the subset of configuration the GA phase consumes.
type gaParams struct {
	crossoverRate float64
	mutationRate  float64
	tournamentK   int
	elitism       int
}

// sortByCost orders pop by ascending cached cost. Stable, so runs stay
// deterministic when costs tie.
func sortByCost(pop []tour.Individual) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].Cost < pop[j].Cost })
}

// tournamentPick samples k members (with replacement) and returns the
// index of the lowest-cost one.
//
// Complexity: O(k).
func tournamentPick(rng *rand.Rand, pop []tour.Individual, k int) int {
	var (
		best = rng.Intn(len(pop))
		i    int
		c    int
	)
	for i = 1; i < k; i++ {
		c = rng.Intn(len(pop))
		if pop[c].Cost < pop[best].Cost {
			best = c
		}
	}

	return best
}

// evolveGA produces the next generation from pop:
//
//  1. Tournament selection fills a mating pool of len(pop) parents.
//  2. Consecutive pool pairs cross over with probability crossoverRate;
//     a pair that skips crossover passes a random parent through as a
//     copy (tours are copied, never aliased).
//  3. Each child is swap-mutated and evaluated.
//  4. Elitism: the top elitism individuals of the prior generation
//     replace the worst of the new one, so the population best can never
//     regress between generations under a fixed matrix.
//
// Returns the next population sorted by ascending cost. Any operator
// error (a corrupted permutation) aborts the generation and propagates.
//
// Complexity: O(pop·(n + k) + pop·log pop) per generation.
func evolveGA(rng *rand.Rand, dm *geom.DistMatrix, pop []tour.Individual, p gaParams) ([]tour.Individual, error) {
	size := len(pop)

	// Mating pool of tournament winners (indices into pop).
	pool := make([]int, size)
	var i int
	for i = 0; i < size; i++ {
		pool[i] = tournamentPick(rng, pop, p.tournamentK)
	}

	next := make([]tour.Individual, 0, size)

	var (
		idx   int
		child tour.Individual
		perm  []int
		err   error
	)
	for len(next) < size {
		p1 := &pop[pool[idx%size]]
		idx++
		p2 := &pop[pool[idx%size]]
		idx++

		if rng.Float64() < p.crossoverRate {
			perm, err = tour.OrderedCrossover(rng, p1.Perm, p2.Perm)
			if err != nil {
				return nil, err
			}
			child = tour.NewIndividual(perm)
		} else if rng.Intn(2) == 0 {
			child = tour.CloneIndividual(*p1)
		} else {
			child = tour.CloneIndividual(*p2)
		}

		tour.SwapMutate(rng, child.Perm, p.mutationRate)
		if _, err = child.Evaluate(dm); err != nil {
			return nil, err
		}
		next = append(next, child)
	}

	if p.elitism > 0 {
		elite := make([]tour.Individual, size)
		copy(elite, pop)
		sortByCost(elite)
		sortByCost(next)
		for i = 0; i < p.elitism; i++ {
			next[size-1-i] = tour.CloneIndividual(elite[i])
		}
	}
	sortByCost(next)

	return next, nil
}

// rescorePopulation re-derives every cached cost from the live matrix
// and re-sorts. Called whenever the distance matrix version moved.
func rescorePopulation(dm *geom.DistMatrix, pop []tour.Individual) error {
	var err error
	for i := range pop {
		if _, err = pop[i].Evaluate(dm); err != nil {
			return err
		}
	}
	sortByCost(pop)

	return nil
}
