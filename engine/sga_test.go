// Package engine_test - standard genetic algorithm.
package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyntsp/engine"
	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

func TestNewSGA_RejectsBadConfig(t *testing.T) {
	cfg := engine.DefaultSGAConfig()
	cfg.Population = 0
	_, err := engine.NewSGA(cfg)
	require.ErrorIs(t, err, engine.ErrBadConfig)
}

func TestSGA_StepBeforeInit(t *testing.T) {
	e, err := engine.NewSGA(engine.DefaultSGAConfig())
	require.NoError(t, err)

	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)
	_, err = e.Step(dm)
	require.ErrorIs(t, err, engine.ErrNotInitialized)
}

func TestSGA_BestEverMonotoneOnStaticInstance(t *testing.T) {
	cities, err := geom.Generate(30, 200, 200, 7)
	require.NoError(t, err)
	dm, err := geom.NewDistMatrix(cities)
	require.NoError(t, err)

	cfg := engine.DefaultSGAConfig()
	cfg.Population = 40
	e, err := engine.NewSGA(cfg)
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(42)))

	prev := e.Best().Cost
	for g := 0; g < 150; g++ {
		info, err := e.Step(dm)
		require.NoError(t, err)
		require.NoError(t, tour.Validate(info.BestTour, 30), "gen=%d", g)
		assert.LessOrEqual(t, info.BestEverCost, prev, "gen=%d", g)
		assert.LessOrEqual(t, info.BestEverCost, info.CurrentBestCost, "gen=%d", g)
		prev = info.BestEverCost
	}
}

func TestSGA_DeterministicRuns(t *testing.T) {
	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)

	run := func() []float64 {
		cfg := engine.DefaultSGAConfig()
		cfg.Population = 50
		e, err := engine.NewSGA(cfg)
		require.NoError(t, err)
		require.NoError(t, e.Init(dm, tour.NewRNG(99)))

		trace := make([]float64, 0, 50)
		for g := 0; g < 50; g++ {
			info, err := e.Step(dm)
			require.NoError(t, err)
			trace = append(trace, info.BestEverCost)
		}

		return trace
	}

	assert.Equal(t, run(), run(), "same seed must reproduce the trace exactly")
}

func TestSGA_BeatsInputOrderOnFixedInstance(t *testing.T) {
	cities := geom.Fixed10()
	dm, err := geom.NewDistMatrix(cities)
	require.NoError(t, err)

	naive := make([]int, len(cities))
	for i := range naive {
		naive[i] = i
	}
	naiveCost, err := tour.Cost(dm, naive)
	require.NoError(t, err)

	cfg := engine.DefaultSGAConfig()
	cfg.Population = 50
	e, err := engine.NewSGA(cfg)
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(1)))
	for g := 0; g < 200; g++ {
		_, err = e.Step(dm)
		require.NoError(t, err)
	}

	best := e.Best()
	require.NoError(t, tour.Validate(best.Tour, len(cities)))
	assert.LessOrEqual(t, best.Cost, naiveCost, "200 generations must at least match the input ordering")
}

func TestSGA_RescoresAfterRebuild(t *testing.T) {
	cities := geom.Fixed10()
	dm, err := geom.NewDistMatrix(cities)
	require.NoError(t, err)

	e, err := engine.NewSGA(engine.SGAConfig{Population: 30, CrossoverRate: 0.85, MutationRate: 0.15, TournamentK: 3, Elitism: 3})
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(5)))
	for g := 0; g < 30; g++ {
		_, err = e.Step(dm)
		require.NoError(t, err)
	}

	// Stretch the geometry and step once: all reported costs must be
	// consistent with the live matrix, not the stale one.
	moved := geom.CopyCities(cities)
	for i := range moved {
		moved[i].X *= 3
	}
	require.NoError(t, dm.Rebuild(moved))

	info, err := e.Step(dm)
	require.NoError(t, err)
	live, err := tour.Cost(dm, info.BestTour)
	require.NoError(t, err)
	assert.Equal(t, live, info.BestEverCost, "best-ever cost must come from the live matrix")
}
