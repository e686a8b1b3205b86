// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one hub (vertex 0) and n-1 leaves.
//   - Emits 0—i for i=1..n-1 in increasing order.

package builder

import "github.com/katalvlaran/spath/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star S_n with hub 0.
func Star(n int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if err := checkMin(methodStar, "n", n, minStarNodes); err != nil {
			return 0, nil, err
		}
		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, edge(cfg, 0, i))
		}

		return n, edges, nil
	}
}
