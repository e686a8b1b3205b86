// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Adjacency.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is outside [0, V).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil adjacency pointer is passed.
	ErrGraphNil = errors.New("bfs: adjacency is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Unreached is the Depth and Parent value of every vertex BFS did not reach
// (and the Parent of the start vertex).
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v int, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each neighbor entry curr→neighbor with the edge weight.
	FilterNeighbor func(curr, neighbor int, weight int64) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int, _ int64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbor entries when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int, weight int64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: Depth[v] is the hop count from the start, or Unreached.
//   - Parent: Parent[v] is v's predecessor in the BFS tree, or Unreached.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
