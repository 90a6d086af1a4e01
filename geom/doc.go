// Package geom provides the geometric substrate shared by every engine:
// city coordinates, the dense Euclidean distance matrix, and the dynamic
// movement model that relocates cities mid-run.
//
// What lives here:
//
//   - City / Generate / Fixed10 — coordinate store and instance builders.
//   - DistMatrix — symmetric, zero-diagonal, row-major distance matrix with
//     a monotonically increasing Version used system-wide to invalidate
//     cached tour costs after a rebuild.
//   - Drift — per-city segment movement with collision avoidance; one
//     Advance per generation tick, strictly before any cost evaluation.
//
// Design:
//   - Deterministic: every random choice flows through a seeded *rand.Rand;
//     seed==0 maps to a fixed default stream.
//   - Strict sentinels from types.go; no logging; no panics on user input.
//   - Hot-path discipline: DistMatrix.At is a bare slice read, O(1), no
//     interface indirection, no error return.
package geom
