// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path 0—1—…—(n-1) followed by the closing edge (n-1)—0.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/spath/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if err := checkMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return 0, nil, err
		}
		edges := make([]core.Edge, 0, n)
		for i := 1; i < n; i++ {
			edges = append(edges, edge(cfg, i-1, i))
		}
		edges = append(edges, edge(cfg, n-1, 0))

		return n, edges, nil
	}
}
