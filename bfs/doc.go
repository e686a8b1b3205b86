// Package bfs implements breadth-first search on a core.Adjacency.
//
// It is the unweighted companion of package dijkstra: the same immutable
// adjacency, the same integer vertices, parent links with the same
// "no parent" convention (Unreached == -1), and a PathTo that fails with
// ErrNoPath instead of returning a degenerate path.
//
// Typical uses in spath:
//
//   - Fewest-hop route next to the weighted shortest route.
//   - Reachability oracle: Reached(v) ⇔ a finite Dijkstra distance to v.
//   - Component sizes: len(Order).
//
// Options:
//
//	WithContext(ctx)        — cancellation, checked once per dequeue
//	WithOnVisit(fn)         — hook per visited vertex; an error aborts
//	WithMaxDepth(d)         — stop expanding beyond depth d (0 = unlimited)
//	WithFilterNeighbor(fn)  — skip neighbor entries (e.g. heavy edges)
//
// Complexity: O(V + E) time, O(V) space.
package bfs
