// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// immutable core.Adjacency with non-negative integer weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Every relaxation pushes (lazy) or decreases (indexed) one queue entry.
//   - Each heap operation costs O(log N), N ≤ V + E for the lazy queue and
//     N ≤ V for the indexed one.
//   - Space: O(V + E)
//   - O(V) for the distance, parent and settled arrays.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Negative weights are rejected by core.Build, so the engine never sees them.
//   - core.Build caps the total weight at core.MaxTotalWeight, so every shortest
//     distance is finite. Relaxations along non-simple walks whose sum would
//     reach Infinity are dropped instead of wrapping.
//   - With the settled set off, every pop is processed; the output is identical.
package dijkstra

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/spath/core"
)

// ShortestPaths computes shortest distances and parent links from source to
// every vertex of adj.
//
// Returns:
//
//   - *Result with Dist (Infinity for unreachable vertices) and Parent
//     (None for the source and for unreachable vertices).
//   - err: ErrNilAdjacency, ErrInvalidSource or ErrOptionViolation.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. adj must be non-nil (ErrNilAdjacency).
//  3. source must lie in [0, V) (ErrInvalidSource, also matching core.ErrInvalidVertex).
//
// The function is pure: adj is only read, and the returned slices are owned
// by the caller.
func ShortestPaths(adj *core.Adjacency, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the adjacency.
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	// 3) Validate the source index.
	if err := adj.CheckVertex(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	// 4) Prepare per-run state; nothing here is shared with other runs.
	n := adj.VertexCount()
	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make([]int64, n),
		parent:  make([]int, n),
		pq:      newFrontier(cfg.Queue, n),
	}
	if cfg.Settled {
		r.settled = sparsesets.New(n)
	}

	// 5) Seed the queue and run the main loop.
	r.init(source)
	r.process()

	return &Result{
		Source: source,
		Dist:   r.dist,
		Parent: r.parent,
		Stats:  r.stats,
	}, nil
}

// runner holds the mutable state for a single run.
type runner struct {
	adj     *core.Adjacency // read-only input
	options Options         // resolved configuration
	dist    []int64         // dist[v] = best known distance from source
	parent  []int           // parent[v] = predecessor on the best known path
	settled *sparsesets.Set // settled vertices; nil when revisits are enabled
	pq      frontier        // tentative (vertex, distance) entries
	stats   Stats           // work counters
}

// init sets every distance to Infinity and every parent to None, then
// queues the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.parent[v] = None
	}
	r.dist[source] = 0
	r.pq.push(source, 0)
	r.stats.Pushes++
}

// process pops entries in increasing distance order until the queue is
// empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	var (
		u int
		d int64
	)
	for r.pq.len() > 0 {
		// 1) Pop the smallest-distance entry.
		u, d = r.pq.pop()
		r.stats.Pops++

		// 2) Skip stale or already-settled entries when the settled set is on.
		//    Without it, every entry is processed against the current dist[u].
		if r.settled != nil {
			if r.settled.Contains(u) || d > r.dist[u] {
				r.stats.StaleSkips++
				continue
			}
		}

		// 3) Everything left in the queue is at least d away: stop.
		if d > r.options.MaxDistance {
			break
		}

		if r.settled != nil {
			r.settled.Insert(u)
		}
		r.options.OnSettle(u, r.dist[u])

		// 4) Relax every edge incident to u.
		r.relax(u)
	}
}

// relax tries to improve each neighbor of u through u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	var (
		v       int
		w, next int64
	)
	for _, nb := range r.adj.Neighbors(u) {
		v, w = nb.To, nb.Weight

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// du + w would reach Infinity: no finite improvement is possible.
		if w >= Infinity-du {
			continue
		}
		next = du + w

		if next > r.options.MaxDistance {
			continue
		}

		// Strictly shorter only; equal paths keep the first parent found.
		if next >= r.dist[v] {
			continue
		}

		r.dist[v] = next
		r.parent[v] = u
		r.stats.Relaxations++

		r.pq.push(v, next)
		r.stats.Pushes++
	}
}
