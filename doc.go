// Package dyntsp compares metaheuristic tour optimizers on Euclidean
// traveling-salesman instances — including instances whose cities keep
// moving while the optimizers run.
//
// 🚀 What is dyntsp?
//
//	A deterministic, seed-reproducible suite that brings together:
//		• Instance geometry: random or fixed city sets, distance matrices
//		  with cache-invalidating versioning
//		• Drift: smooth city movement with collision avoidance
//		• SGA: a standard genetic algorithm (tournament selection, ordered
//		  crossover, swap mutation, elitism)
//		• HGA-ACO: a hybrid of the GA with ant-colony pheromone guidance
//		• PSO: a discrete particle swarm over swap-sequence velocities,
//		  with bounded 2-opt refinement
//		• A comparison harness that steps all engines against one shared
//		  geometry snapshot per generation
//
// ✨ Why choose dyntsp?
//
//   - Reproducible – every run is a pure function of its seeds
//   - Fair – one matrix rebuild per tick, shared by every engine
//   - Dynamic-aware – cached costs are re-derived whenever the geometry
//     moves, so reported numbers always price against the live matrix
//   - Pure algorithmics – no rendering, no persistence, no globals
//
// Everything is organized under three subpackages and one command:
//
//	geom/       — cities, distance matrix, drifting movement
//	tour/       — permutations, cost, GA operators, 2-opt, RNG streams
//	engine/     — the three engines, configs, presets, harness, reports
//	cmd/dyntsp/ — CLI runner with textual progress and a final report
//
// Quick start:
//
//	cities := geom.Fixed10()
//	h, _ := engine.NewHarness(cities, engines, engine.HarnessConfig{
//		Seed: 42, Generations: 750,
//	})
//	report, _ := h.Run()
//
//	go get github.com/katalvlaran/dyntsp
package dyntsp
