// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math/rand"
)

// Default weight range of generated edges, inclusive.
const (
	DefaultMinWeight uint64 = 100
	DefaultMaxWeight uint64 = 1000
)

// WeightFn produces an edge weight from the generator's RNG. It must draw only
// from rng to keep generation deterministic.
type WeightFn func(rng *rand.Rand) uint64

// ConstantWeightFn returns a WeightFn that always yields w. Panics if w is 0,
// since generated graphs are positively weighted.
func ConstantWeightFn(w uint64) WeightFn {
	if w == 0 {
		panic("generator: ConstantWeightFn(0)")
	}
	return func(_ *rand.Rand) uint64 { return w }
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max]. Panics unless 0 < min ≤ max.
func UniformWeightFn(min, max uint64) WeightFn {
	if min == 0 || max < min {
		panic(fmt.Sprintf("generator: UniformWeightFn requires 0 < min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1
	return func(rng *rand.Rand) uint64 {
		return min + uint64(rng.Int63n(int64(clampSpan(span))))
	}
}

// clampSpan keeps span within Int63n's domain; ranges wider than 2^63 are
// sampled from their lower 2^63-1 values.
func clampSpan(span uint64) uint64 {
	const maxInt63 = 1<<63 - 1
	if span > maxInt63 {
		return maxInt63
	}
	return span
}
