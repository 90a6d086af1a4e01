// Package engine_test - hybrid GA/ACO engine.
package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyntsp/engine"
	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

func hgaTestConfig() engine.HGAConfig {
	cfg := engine.DefaultHGAConfig()
	cfg.Population = 30
	return cfg
}

func TestNewHGAACO_RejectsBadConfig(t *testing.T) {
	cfg := engine.DefaultHGAConfig()
	cfg.Evaporation = 1.5
	_, err := engine.NewHGAACO(cfg)
	require.ErrorIs(t, err, engine.ErrBadConfig)
}

func TestHGAACO_StepBeforeInit(t *testing.T) {
	e, err := engine.NewHGAACO(hgaTestConfig())
	require.NoError(t, err)

	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)
	_, err = e.Step(dm)
	require.ErrorIs(t, err, engine.ErrNotInitialized)
}

func TestHGAACO_BestEverMonotoneOnStaticInstance(t *testing.T) {
	cities, err := geom.Generate(25, 200, 200, 11)
	require.NoError(t, err)
	dm, err := geom.NewDistMatrix(cities)
	require.NoError(t, err)

	e, err := engine.NewHGAACO(hgaTestConfig())
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(13)))

	prev := e.Best().Cost
	for g := 0; g < 80; g++ {
		info, err := e.Step(dm)
		require.NoError(t, err)
		require.NoError(t, tour.Validate(info.BestTour, 25), "gen=%d", g)
		assert.LessOrEqual(t, info.BestEverCost, prev, "gen=%d", g)
		prev = info.BestEverCost
	}
}

func TestHGAACO_PheromoneStaysAboveFloor(t *testing.T) {
	cfg := hgaTestConfig()
	cfg.Evaporation = 0.9 // aggressive decay stresses the clamp

	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)
	e, err := engine.NewHGAACO(cfg)
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(3)))

	for g := 0; g < 60; g++ {
		_, err = e.Step(dm)
		require.NoError(t, err)
	}

	snap := e.PheromoneSnapshot()
	require.Len(t, snap, 10)
	for i, row := range snap {
		require.Len(t, row, 10)
		for j, v := range row {
			assert.GreaterOrEqual(t, v, cfg.PheromoneFloor, "edge (%d,%d)", i, j)
			assert.Equal(t, snap[j][i], v, "pheromone must stay symmetric")
		}
	}
}

func TestHGAACO_SnapshotNilBeforeInit(t *testing.T) {
	e, err := engine.NewHGAACO(hgaTestConfig())
	require.NoError(t, err)
	assert.Nil(t, e.PheromoneSnapshot())
}

func TestHGAACO_DeterministicRuns(t *testing.T) {
	dm, err := geom.NewDistMatrix(geom.Fixed10())
	require.NoError(t, err)

	run := func() []float64 {
		e, err := engine.NewHGAACO(hgaTestConfig())
		require.NoError(t, err)
		require.NoError(t, e.Init(dm, tour.NewRNG(21)))

		trace := make([]float64, 0, 40)
		for g := 0; g < 40; g++ {
			info, err := e.Step(dm)
			require.NoError(t, err)
			trace = append(trace, info.BestEverCost)
		}

		return trace
	}

	assert.Equal(t, run(), run())
}

func TestHGAACO_RescoresAfterRebuild(t *testing.T) {
	cities := geom.Fixed10()
	dm, err := geom.NewDistMatrix(cities)
	require.NoError(t, err)

	e, err := engine.NewHGAACO(hgaTestConfig())
	require.NoError(t, err)
	require.NoError(t, e.Init(dm, tour.NewRNG(8)))
	for g := 0; g < 20; g++ {
		_, err = e.Step(dm)
		require.NoError(t, err)
	}

	moved := geom.CopyCities(cities)
	for i := range moved {
		moved[i].Y *= 2
	}
	require.NoError(t, dm.Rebuild(moved))

	info, err := e.Step(dm)
	require.NoError(t, err)
	live, err := tour.Cost(dm, info.BestTour)
	require.NoError(t, err)
	assert.Equal(t, live, info.BestEverCost)
}
