// SPDX-License-Identifier: MIT

// Package generator produces random connected, positively weighted graphs for
// driving the MST algorithms.
//
// Every graph starts from a path backbone 0—1—…—(n-1), which guarantees
// connectivity. Each remaining pair (i, j) with j ≥ i+2 then receives an extra
// edge according to the Mode, using p = 1/n and a uniform draw x ∈ [0, 1):
//
//	ModeSparse: keep the pair iff x < p   (about n/2 extra edges in total)
//	ModeDense : keep the pair iff x > p   (almost every pair)
//
// Weights come from a WeightFn, by default uniform integers in [100, 1000].
//
// Determinism:
//
//	Pairs are visited in i asc, j asc order and every draw comes from a single
//	*rand.Rand, so equal seeds and options yield identical graphs, including
//	edge IDs. Seed 0 selects the package default seed.
//
// Option constructors panic on meaningless values (nil RNG, empty weight
// range); Generate itself never panics and returns sentinel errors.
package generator
