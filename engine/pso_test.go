// Package engine_test - discrete particle swarm engine.
package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyntsp/engine"
	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

func TestNewPSO_RejectsBadConfig(t *testing.T) {
	cfg := engine.DefaultPSOConfig()
	cfg.Particles = 1
	_, err := engine.NewPSO(cfg)
	require.ErrorIs(t, err, engine.ErrBadConfig)
}

func TestPSO_StepBeforeInit(t *testing.T) {
	e, err := engine.NewPSO(engine.DefaultPSOConfig())
	require.NoError(t, err)

	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)
	_, err = e.Step(dm)
	require.ErrorIs(t, err, engine.ErrNotInitialized)
}

func TestPSO_VelocityApplicationKeepsToursValid(t *testing.T) {
	cities, err := geom.Generate(30, 200, 200, 19)
	require.NoError(t, err)
	dm, err := geom.NewDistMatrix(cities)
	require.NoError(t, err)

	// Local search off: the raw swap-sequence mechanics alone must keep
	// every reported tour a valid permutation.
	cfg := engine.DefaultPSOConfig()
	cfg.UseLocalSearch = false
	cfg.LocalSearchPasses = 0
	e, err := engine.NewPSO(cfg)
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(31)))

	for g := 0; g < 120; g++ {
		info, err := e.Step(dm)
		require.NoError(t, err)
		require.NoError(t, tour.Validate(info.BestTour, 30), "gen=%d", g)
		assert.LessOrEqual(t, info.BestEverCost, info.CurrentBestCost, "gen=%d", g)
	}
}

func TestPSO_BestEverMonotoneOnStaticInstance(t *testing.T) {
	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)

	e, err := engine.NewPSO(engine.DefaultPSOConfig())
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(2)))

	prev := e.Best().Cost
	for g := 0; g < 100; g++ {
		info, err := e.Step(dm)
		require.NoError(t, err)
		assert.LessOrEqual(t, info.BestEverCost, prev, "gen=%d", g)
		prev = info.BestEverCost
	}
}

func TestPSO_DeterministicRuns(t *testing.T) {
	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)

	run := func() []float64 {
		e, err := engine.NewPSO(engine.DefaultPSOConfig())
		require.NoError(t, err)
		require.NoError(t, e.Init(dm, tour.NewRNG(77)))

		trace := make([]float64, 0, 60)
		for g := 0; g < 60; g++ {
			info, err := e.Step(dm)
			require.NoError(t, err)
			trace = append(trace, info.BestEverCost)
		}

		return trace
	}

	assert.Equal(t, run(), run())
}

func TestPSO_RescoresAfterRebuild(t *testing.T) {
	cities := geom.Fixed10()
	dm, err := geom.NewDistMatrix(cities)
	require.NoError(t, err)

	e, err := engine.NewPSO(engine.DefaultPSOConfig())
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(4)))
	for g := 0; g < 25; g++ {
		_, err = e.Step(dm)
		require.NoError(t, err)
	}

	moved := geom.CopyCities(cities)
	for i := range moved {
		moved[i].X += 40
		moved[i].Y *= 1.5
	}
	require.NoError(t, dm.Rebuild(moved))

	info, err := e.Step(dm)
	require.NoError(t, err)
	live, err := tour.Cost(dm, info.BestTour)
	require.NoError(t, err)
	assert.Equal(t, live, info.BestEverCost)
}
