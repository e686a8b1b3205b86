// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors emit vertices 0..n-1 in their own local numbering; BuildEdges
//     shifts each block after the previous one, so composition is a disjoint union.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edges.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spath/core"
)

// Constructor produces a block of n vertices and its edges, numbered 0..n-1.
// Constructors must validate parameters early, return sentinel errors and
// keep edge order stable for the same config.
type Constructor func(cfg builderConfig) (n int, edges []core.Edge, err error)

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order, returning the total vertex count and the combined
// edge list. The k-th constructor's vertices are offset by the number of
// vertices produced before it.
//
// The result is always accepted by core.Build(edges, n).
func BuildEdges(bopts []Option, cons ...Constructor) (int, []core.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var (
		total int
		all   []core.Edge
	)
	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		n, edges, err := fn(cfg)
		if err != nil {
			return 0, nil, fmt.Errorf("BuildEdges: %w", err)
		}
		for _, e := range edges {
			all = append(all, core.Edge{U: e.U + total, V: e.V + total, Weight: e.Weight})
		}
		total += n
	}
	if total == 0 {
		return 0, nil, fmt.Errorf("BuildEdges: no vertices produced: %w", ErrTooFewVertices)
	}

	return total, all, nil
}

// Build is BuildEdges followed by core.Build.
func Build(bopts []Option, cons ...Constructor) (*core.Adjacency, error) {
	n, edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	adj, err := core.Build(edges, n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return adj, nil
}
