// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex r*cols + c.
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.
//
// Complexity: O(rows·cols) time and space.

package builder

import "github.com/katalvlaran/spath/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if err := checkMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return 0, nil, err
		}
		if err := checkMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return 0, nil, err
		}
		edges := make([]core.Edge, 0, 2*rows*cols)
		var id int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id = r*cols + c
				if c+1 < cols {
					edges = append(edges, edge(cfg, id, id+1))
				}
				if r+1 < rows {
					edges = append(edges, edge(cfg, id, id+cols))
				}
			}
		}

		return rows * cols, edges, nil
	}
}
