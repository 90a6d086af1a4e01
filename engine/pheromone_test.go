// Package engine - internal tests for the pheromone matrix primitives.
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPheromone_DepositBothDirections(t *testing.T) {
	p := newPheromone(4, 0.1, 1e-6)
	p.Deposit([]int{0, 1, 2, 3}, 0.5)

	// Each tour edge, including the wraparound 3→0, gains the amount in
	// both directions.
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		assert.InDelta(t, 0.6, p.At(e[0], e[1]), 1e-12)
		assert.InDelta(t, 0.6, p.At(e[1], e[0]), 1e-12)
	}
	// Non-tour edges keep the seed level.
	assert.InDelta(t, 0.1, p.At(0, 2), 1e-12)
	assert.InDelta(t, 0.1, p.At(1, 3), 1e-12)
}

func TestPheromone_EvaporateClampsToFloor(t *testing.T) {
	const floor = 1e-6
	p := newPheromone(5, 0.1, floor)
	p.Deposit([]int{0, 1, 2, 3, 4}, 3.0)

	// Full evaporation drives every edge to the floor in one step.
	p.Evaporate(1.0)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			assert.Equal(t, floor, p.At(i, j), "edge (%d,%d)", i, j)
		}
	}
}

func TestPheromone_EvaporatePartial(t *testing.T) {
	p := newPheromone(3, 1.0, 1e-6)
	p.Evaporate(0.3)
	assert.InDelta(t, 0.7, p.At(0, 1), 1e-12)
}

func TestPheromone_SnapshotIsIndependent(t *testing.T) {
	p := newPheromone(3, 0.2, 1e-6)
	snap := p.Snapshot()
	require.Len(t, snap, 3)

	snap[0][1] = 99
	assert.InDelta(t, 0.2, p.At(0, 1), 1e-12, "mutating the snapshot must not touch the matrix")
}
