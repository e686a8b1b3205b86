// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair {i,j}, i<j, ordered by i asc then j asc.
//
// Complexity: O(n²) time and space.

package builder

import "github.com/katalvlaran/spath/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if err := checkMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return 0, nil, err
		}
		edges := make([]core.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, edge(cfg, i, j))
			}
		}

		return n, edges, nil
	}
}
