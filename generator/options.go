// SPDX-License-Identifier: MIT
//
// options.go: functional options and the resolved generator configuration.
//
// Deterministic defaults:
//   • rng      = rand.New(rand.NewSource(DefaultSeed))
//   • weightFn = UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)

package generator

import "math/rand"

// DefaultSeed is used when no seed is given or when the seed is 0.
const DefaultSeed int64 = 1

// Option customises Generate by mutating a config before construction.
type Option func(*config)

// config aggregates the knobs used by Generate.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// newConfig applies opts over the defaults; later options override earlier.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      rngFromSeed(DefaultSeed),
		weightFn: UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to DefaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("generator: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithWeightRange sets weights ∼ U{min..max} via UniformWeightFn.
func WithWeightRange(min, max uint64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}
