// Package engine hosts the three competing metaheuristics behind one
// small interface, plus the harness that races them against a shared
// (possibly moving) instance:
//
//   - SGA     — standard genetic algorithm: tournament selection, ordered
//     crossover, swap mutation, elitism.
//   - HGAACO  — hybrid GA/ACO: a GA sub-population coupled with
//     per-generation ant construction through a shared pheromone matrix.
//   - PSO     — discrete particle swarm: swap-sequence velocities over
//     permutations with optional 2-opt refinement.
//   - Harness — per-tick driver: advance city movement (dynamic mode),
//     rebuild distances once, then step each enabled engine against the
//     same snapshot; collect convergence and timing metrics.
//
// Every engine implements Engine — Init, Step, Best — and keeps its
// population/swarm/pheromone state private. Engines never share mutable
// state; the only shared resource is the distance matrix, which the
// harness mutates exactly once per tick before any engine reads it.
//
// Dynamic re-scoring contract: a Step that observes a new
// DistMatrix.Version first re-evaluates everything it ever cached —
// population costs, personal/global bests, the best-ever tour — against
// the live matrix. A tour's cost is never assumed stable across ticks.
//
// Determinism: each engine draws from its own seeded stream; the same
// (instance, seeds, configs) reproduce a run bit-for-bit.
package engine
