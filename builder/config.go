// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                   (pure/deterministic unless seeded)
//   • weightFn = constant DefaultEdgeWeight

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// Option customizes the builder configuration.
type Option func(*builderConfig)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses the given RNG for stochastic constructors and weights.
// A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
