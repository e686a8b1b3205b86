// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i). For a fixed seed the
//     edge set and the weights are identical across runs.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		// 1) Validate parameters early.
		if err := checkMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return 0, nil, err
		}
		if p < probMin || p > probMax {
			return 0, nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return 0, nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trial per unordered pair, in stable order.
		var edges []core.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
					edges = append(edges, edge(cfg, i, j))
				case cfg.rng.Float64() < p:
					edges = append(edges, edge(cfg, i, j))
				}
			}
		}

		return n, edges, nil
	}
}
