// Package builder provides helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and never return a
// negative value.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields min so output stays deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
