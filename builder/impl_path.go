// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). Path(1) is a lone vertex.
//   - Emits edges (i-1)—i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/spath/core"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if err := checkMin(methodPath, "n", n, minPathNodes); err != nil {
			return 0, nil, err
		}
		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, edge(cfg, i-1, i))
		}

		return n, edges, nil
	}
}
