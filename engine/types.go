package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/dyntsp/geom"
)

// ErrNotInitialized is returned by Step/Best before a successful Init.
var ErrNotInitialized = errors.New("engine: not initialized")

// ErrBadConfig is the sentinel wrapped by every configuration validation
// failure; match with errors.Is.
var ErrBadConfig = errors.New("engine: invalid configuration")

// Result is a best-so-far tour and its cost.
type Result struct {
	Tour []int
	Cost float64
}

// StepInfo is the per-generation progress record consumed by external
// visualization/reporting. BestEverCost tracks the lowest cost observed
// (re-scored against live geometry after city movement); CurrentBestCost
// is the best member of the current population/swarm under the current
// distance matrix — in dynamic mode it can rise when cities move.
type StepInfo struct {
	Engine          string
	Generation      int
	BestEverCost    float64
	CurrentBestCost float64
	BestTour        []int
	Elapsed         time.Duration
}

// Engine is the capability set shared by all three metaheuristics.
// Implementations keep their state private; the harness owns the
// distance matrix and passes it in per call, so several independent runs
// never cross-contaminate.
type Engine interface {
	// Name returns a short stable identifier ("SGA", "HGA-ACO", "PSO").
	Name() string

	// Init builds the initial population/swarm for the instance described
	// by dm, drawing all randomness from rng.
	Init(dm *geom.DistMatrix, rng *rand.Rand) error

	// Step advances exactly one generation and reports progress.
	// If dm was rebuilt since the previous call, every cached cost is
	// re-derived from the live matrix before the generation runs.
	Step(dm *geom.DistMatrix) (StepInfo, error)

	// Best returns a copy of the best-ever tour and its (re-scored) cost.
	Best() Result
}

// tracker bundles the best-so-far bookkeeping common to all engines.
type tracker struct {
	gen         int
	lastVersion uint64
	bestPerm    []int
	bestCost    float64
	elapsed     time.Duration
}
