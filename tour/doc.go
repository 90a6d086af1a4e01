// Package tour implements the permutation representation shared by all
// three engines, together with every operator that manipulates it:
//
//   - Random / Validate / Clone — uniform tours and the permutation
//     invariant every operator must preserve.
//   - Cost — O(n) tour length over a geom.DistMatrix, including the
//     wrap-around edge; Individual caches the result.
//   - OrderedCrossover — the OX operator: a contiguous slice of parent A
//     in place, the rest filled with parent B's cities in B's relative
//     order.
//   - SwapMutate — independent per-position swap mutation.
//   - TwoOptImprove — first-improvement 2-opt with a mandatory pass cap.
//   - NewRNG / DeriveRNG — deterministic seeded streams and SplitMix64
//     substream derivation for independent components.
//
// Tours are stored open (length n, no closing vertex); Cost closes the
// loop. Every operator either returns a valid permutation of 0..n-1 or a
// sentinel error — a tour with a missing or duplicated city is an
// internal invariant violation, never silently repaired.
//
// Design: no logging, no panics on user input, deterministic under a
// fixed seed, allocation-conscious on hot paths.
package tour
