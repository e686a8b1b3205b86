// Package bfs provides breadth-first search over a core.Adjacency,
// returning hop-count distances, parent links, and visit order.
//
// BFS ignores edge weights: it answers "which vertices are reachable, and
// with how few edges", which is exactly the set of vertices Dijkstra assigns
// a finite distance to.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   *core.Adjacency
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on adj starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit hook error.
func BFS(adj *core.Adjacency, start int, opts ...Option) (*BFSResult, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if err := adj.CheckVertex(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	// Prepare walker
	n := adj.VertexCount()
	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreached)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor. Parallel edges and self-loops are naturally deduplicated.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.adj.Neighbors(item.v) {
		if !w.opts.FilterNeighbor(item.v, nb.To, nb.Weight) {
			continue
		}
		// first time seen?
		if w.res.Depth[nb.To] == Unreached {
			w.enqueue(nb.To, nextDepth, item.v)
		}
	}
}
