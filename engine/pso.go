// Package engine - discrete particle swarm optimization.
//
// Positions are permutations; velocities are ordered sequences of
// position swaps. One step per particle:
//
//	v' = w⊗v  ⊕  (c1·r1)⊗(pbest − x)  ⊕  (c2·r2)⊗(gbest − x)
//
// where (a − b) is the swap sequence transforming b into a, α⊗seq keeps
// each swap with probability min(1, α), and r1, r2 are uniform draws per
// particle per step. The concatenated velocity is truncated to the cap,
// applied swap-by-swap to the particle's tour, optionally refined by a
// bounded 2-opt pass, and then scored against personal and global bests.
//
// A swap of two positions can never lose or duplicate a city, so
// velocity application preserves permutation validity unconditionally.
package engine

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

// swapOp exchanges the cities at tour positions i and j.
type swapOp struct {
	i int
	j int
}

// particle is one swarm member: current tour, velocity, personal best.
type particle struct {
	perm     []int
	velocity []swapOp
	bestPerm []int
	bestCost float64
}

// PSO is the discrete particle swarm engine. Not safe for concurrent use.
type PSO struct {
	cfg   PSOConfig
	rng   *rand.Rand
	swarm []particle
	tr    tracker

	// posOf is a reusable city→position index for swap-sequence derivation.
	posOf []int
}

// NewPSO validates cfg and returns an engine ready for Init.
func NewPSO(cfg PSOConfig) (*PSO, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PSO{cfg: cfg}, nil
}

// Name implements Engine.
func (p *PSO) Name() string { return "PSO" }

// velocityCap resolves the configured cap; 0 means twice the city count.
func (p *PSO) velocityCap(n int) int {
	if p.cfg.VelocityCap > 0 {
		return p.cfg.VelocityCap
	}

	return 2 * n
}

// Init scatters the swarm across random tours with empty velocities.
func (p *PSO) Init(dm *geom.DistMatrix, rng *rand.Rand) error {
	if rng == nil {
		rng = tour.NewRNG(0)
	}

	var (
		n     = dm.N()
		swarm = make([]particle, p.cfg.Particles)
		perm  []int
		cost  float64
		err   error
		i     int
	)
	for i = 0; i < len(swarm); i++ {
		perm, err = tour.Random(n, rng)
		if err != nil {
			return err
		}
		cost, err = tour.Cost(dm, perm)
		if err != nil {
			return err
		}
		swarm[i] = particle{
			perm:     perm,
			bestPerm: tour.Clone(perm),
			bestCost: cost,
		}
	}

	p.rng = rng
	p.swarm = swarm
	p.posOf = make([]int, n)
	p.tr = tracker{lastVersion: dm.Version()}

	// Global best across the fresh swarm.
	gi := 0
	for i = 1; i < len(swarm); i++ {
		if swarm[i].bestCost < swarm[gi].bestCost {
			gi = i
		}
	}
	p.tr.bestPerm = tour.Clone(swarm[gi].bestPerm)
	p.tr.bestCost = swarm[gi].bestCost

	return nil
}

// swapSequence returns the ordered swaps that transform from into to,
// at most n−1 of them. Both inputs must be valid permutations of equal
// length; the result applied to `from` yields exactly `to`.
//
// Complexity: O(n) time; O(n) space for the scratch copy.
func (p *PSO) swapSequence(from, to []int) []swapOp {
	var (
		n    = len(from)
		work = tour.Clone(from)
		seq  []swapOp
		i, j int
	)
	for i = 0; i < n; i++ {
		p.posOf[work[i]] = i
	}
	for i = 0; i < n; i++ {
		if work[i] == to[i] {
			continue
		}
		j = p.posOf[to[i]]
		seq = append(seq, swapOp{i, j})
		p.posOf[work[i]] = j
		p.posOf[work[j]] = i
		work[i], work[j] = work[j], work[i]
	}

	return seq
}

// retain appends each op of seq to dst with probability min(1, weight).
func (p *PSO) retain(dst []swapOp, seq []swapOp, weight float64) []swapOp {
	if weight >= 1 {
		return append(dst, seq...)
	}
	for _, op := range seq {
		if p.rng.Float64() < weight {
			dst = append(dst, op)
		}
	}

	return dst
}

// Step advances the whole swarm by one generation.
func (p *PSO) Step(dm *geom.DistMatrix) (StepInfo, error) {
	if p.swarm == nil {
		return StepInfo{}, ErrNotInitialized
	}
	start := time.Now()

	if v := dm.Version(); v != p.tr.lastVersion {
		if err := p.rescore(dm); err != nil {
			return StepInfo{}, err
		}
		p.tr.lastVersion = v
	}

	var (
		n    = dm.N()
		vcap = p.velocityCap(n)
		cost float64
		err  error
		i    int
	)
	for i = 0; i < len(p.swarm); i++ {
		pt := &p.swarm[i]

		// Assemble the new velocity: inertia, cognitive, social.
		r1 := p.rng.Float64()
		r2 := p.rng.Float64()
		vel := make([]swapOp, 0, vcap)
		vel = p.retain(vel, pt.velocity, p.cfg.Inertia)
		vel = p.retain(vel, p.swapSequence(pt.perm, pt.bestPerm), p.cfg.Cognitive*r1)
		vel = p.retain(vel, p.swapSequence(pt.perm, p.tr.bestPerm), p.cfg.Social*r2)
		if len(vel) > vcap {
			vel = vel[:vcap]
		}
		pt.velocity = vel

		// Apply the velocity: execute its swaps in order.
		for _, op := range vel {
			pt.perm[op.i], pt.perm[op.j] = pt.perm[op.j], pt.perm[op.i]
		}

		if p.cfg.UseLocalSearch {
			if _, err = tour.TwoOptImprove(dm, pt.perm, p.cfg.LocalSearchPasses); err != nil {
				return StepInfo{}, err
			}
		}

		cost, err = tour.Cost(dm, pt.perm)
		if err != nil {
			return StepInfo{}, err
		}
		if cost < pt.bestCost {
			pt.bestCost = cost
			copy(pt.bestPerm, pt.perm)
		}
		if cost < p.tr.bestCost {
			p.tr.bestCost = cost
			p.tr.bestPerm = tour.Clone(pt.perm)
		}
	}
	p.tr.gen++
	p.tr.elapsed += time.Since(start)

	return StepInfo{
		Engine:          p.Name(),
		Generation:      p.tr.gen,
		BestEverCost:    p.tr.bestCost,
		CurrentBestCost: p.currentBest(dm),
		BestTour:        tour.Clone(p.tr.bestPerm),
		Elapsed:         p.tr.elapsed,
	}, nil
}

// currentBest returns the lowest cost across current particle positions.
// Costs were just computed against dm inside Step, so this is a scan of
// fresh values, not a stale cache.
func (p *PSO) currentBest(dm *geom.DistMatrix) float64 {
	best, _ := tour.Cost(dm, p.swarm[0].perm)
	var (
		i int
		c float64
	)
	for i = 1; i < len(p.swarm); i++ {
		c, _ = tour.Cost(dm, p.swarm[i].perm)
		if c < best {
			best = c
		}
	}

	return best
}

// rescore re-derives current positions, personal bests, and the global
// best from the live matrix. Personal bests keep their tours but their
// costs move with the geometry.
func (p *PSO) rescore(dm *geom.DistMatrix) error {
	var (
		i    int
		cost float64
		err  error
	)
	for i = 0; i < len(p.swarm); i++ {
		pt := &p.swarm[i]
		cost, err = tour.Cost(dm, pt.bestPerm)
		if err != nil {
			return err
		}
		pt.bestCost = cost
	}
	cost, err = tour.Cost(dm, p.tr.bestPerm)
	if err != nil {
		return err
	}
	p.tr.bestCost = cost

	return nil
}

// Best implements Engine.
func (p *PSO) Best() Result {
	if p.swarm == nil {
		return Result{}
	}

	return Result{Tour: tour.Clone(p.tr.bestPerm), Cost: p.tr.bestCost}
}
