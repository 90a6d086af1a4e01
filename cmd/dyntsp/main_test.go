package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyntsp/engine"
)

func TestSelectEngines(t *testing.T) {
	preset := engine.SmallPreset()

	engines, err := selectEngines("sga,hga,pso", preset)
	require.NoError(t, err)
	require.Len(t, engines, 3)
	assert.Equal(t, "SGA", engines[0].Name())
	assert.Equal(t, "HGA-ACO", engines[1].Name())
	assert.Equal(t, "PSO", engines[2].Name())

	// Subset, order-insensitive input, display order preserved.
	engines, err = selectEngines("pso, SGA", preset)
	require.NoError(t, err)
	require.Len(t, engines, 2)
	assert.Equal(t, "SGA", engines[0].Name())
	assert.Equal(t, "PSO", engines[1].Name())

	_, err = selectEngines("sga,annealing", preset)
	require.Error(t, err)

	_, err = selectEngines(" , ", preset)
	require.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	rep := &engine.Report{
		Cities:      10,
		Generations: 750,
		Dynamic:     true,
		System:      engine.SysInfo{Platform: "linux", CPU: "test-cpu", RAM: "16 GB"},
		Engines: []engine.EngineReport{
			{
				Name:     "SGA",
				BestEver: []float64{900, 850},
				Current:  []float64{900, 860},
				Final:    engine.Result{Tour: []int{0, 1, 2}, Cost: 850},
				Elapsed:  1.25,
			},
		},
	}

	var sb strings.Builder
	writeReport(&sb, rep)
	out := sb.String()

	assert.Contains(t, out, "10 cities, 750 generations, dynamic")
	assert.Contains(t, out, "linux, test-cpu, 16 GB")
	assert.Contains(t, out, "SGA")
	assert.Contains(t, out, "850.00")
	assert.Contains(t, out, "SGA tour: [0 1 2]")
}
