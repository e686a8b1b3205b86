// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// helpers.go — small shared utilities for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spath/core"
)

// edge draws one weight from cfg and returns the edge u—v.
func edge(cfg builderConfig, u, v int) core.Edge {
	return core.Edge{U: u, V: v, Weight: cfg.weightFn(cfg.rng)}
}

// checkMin returns ErrTooFewVertices, tagged with method and parameter name,
// when got < min.
func checkMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}
