package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/spath/core"
)

// ReconstructPath walks parent links back from destination and returns the
// vertices from the root of the chain (the source) to destination.
//
// dist is consulted first: an Infinity distance yields ErrNoPath instead of
// the degenerate one-vertex "path" a bare parent walk would produce.
//
// Errors:
//   - core.ErrInvalidVertex  if destination lies outside [0, len(parent)).
//   - ErrNoPath              if dist[destination] == Infinity.
//   - ErrCorruptParents      if len(dist) != len(parent), a parent points out of
//     range, or the chain is longer than len(parent) (a cycle).
//
// Complexity: O(path length).
func ReconstructPath(dist []int64, parent []int, destination int) ([]int, error) {
	if len(dist) != len(parent) {
		return nil, fmt.Errorf("%w: len(dist)=%d len(parent)=%d", ErrCorruptParents, len(dist), len(parent))
	}
	if destination < 0 || destination >= len(parent) {
		return nil, fmt.Errorf("dijkstra: destination %d not in [0,%d): %w", destination, len(parent), core.ErrInvalidVertex)
	}
	if dist[destination] == Infinity {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, destination)
	}

	// build reversed path
	path := make([]int, 0, 8)
	for cur := destination; cur != None; cur = parent[cur] {
		if cur < 0 || cur >= len(parent) {
			return nil, fmt.Errorf("%w: parent %d out of range", ErrCorruptParents, cur)
		}
		if len(path) == len(parent) {
			return nil, fmt.Errorf("%w: chain from %d does not terminate", ErrCorruptParents, destination)
		}
		path = append(path, cur)
	}

	// reverse to get source → destination
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathTo reconstructs the shortest path from r.Source to dest.
// It returns ErrNoPath if dest was never reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	path, err := ReconstructPath(r.Dist, r.Parent, dest)
	if err != nil {
		return nil, err
	}
	if path[0] != r.Source {
		return nil, fmt.Errorf("%w: chain to %d roots at %d, not source %d", ErrCorruptParents, dest, path[0], r.Source)
	}

	return path, nil
}

// Reachable reports whether v has a finite distance from the source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// Distance returns the shortest distance to v. Unreachable vertices yield
// ErrNoPath rather than the Infinity sentinel.
func (r *Result) Distance(v int) (int64, error) {
	if v < 0 || v >= len(r.Dist) {
		return 0, fmt.Errorf("dijkstra: vertex %d not in [0,%d): %w", v, len(r.Dist), core.ErrInvalidVertex)
	}
	if r.Dist[v] == Infinity {
		return 0, fmt.Errorf("%w: vertex %d", ErrNoPath, v)
	}

	return r.Dist[v], nil
}

// PathWeight sums, for each consecutive pair of path, the lightest edge of
// adj joining them. A single-vertex path weighs 0.
//
// Errors: core.ErrInvalidVertex for out-of-range vertices, ErrNotAdjacent
// when a hop has no edge, core.ErrWeightOverflow when a sequence that
// repeats edges sums past core.MaxTotalWeight.
func PathWeight(adj *core.Adjacency, path []int) (int64, error) {
	if adj == nil {
		return 0, ErrNilAdjacency
	}
	var total int64
	for i, v := range path {
		if err := adj.CheckVertex(v); err != nil {
			return 0, err
		}
		if i == 0 {
			continue
		}
		w, ok := adj.MinWeight(path[i-1], v)
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrNotAdjacent, path[i-1], v)
		}
		if w > core.MaxTotalWeight-total {
			return 0, fmt.Errorf("%w: path prefix ending at index %d", core.ErrWeightOverflow, i)
		}
		total += w
	}

	return total, nil
}
