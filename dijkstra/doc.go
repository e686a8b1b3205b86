// Package dijkstra provides single-source shortest paths over a weighted,
// undirected core.Adjacency, plus reconstruction of the optimal path from the
// parent links it records.
//
// Overview:
//
//   - ShortestPaths computes, for every vertex v, the minimal distance from the
//     source and the predecessor of v on one shortest path.
//   - It always expands the closest unexplored vertex next, using a min-heap
//     keyed by tentative distance.
//   - ReconstructPath / Result.PathTo walk the parent links back to the source.
//
// Sentinels:
//
//   - Infinity (math.MaxInt64) marks unreachable distances.
//   - None (-1) marks "no parent": the source, and every unreachable vertex.
//   - Result.Distance and Result.PathTo never hand Infinity out as a length;
//     they return ErrNoPath instead.
//
// Queue disciplines (WithQueue):
//
//   - QueueLazy (default): container/heap binary heap. An improvement pushes a
//     fresh entry; outdated entries stay queued and are filtered on pop.
//   - QueueIndexed: container/heap with a vertex→slot index, one entry per
//     vertex and in-place decrease-key (heap.Fix).
//
// Settled set (WithSettledSet / WithRevisits):
//
//   - On (default): a vertex is settled on its first processed pop and later
//     pops are counted in Stats.StaleSkips. Backed by github.com/rhartert/sparsesets.
//   - Off: every popped entry is relaxed against the current distance. More
//     work, same output.
//
// Additional options:
//
//   - WithMaxDistance(d): vertices farther than d are left at Infinity.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable walls.
//   - WithOnSettle(fn): observe every processed pop.
//
// Error handling (sentinel errors, branch with errors.Is):
//
//   - ErrNilAdjacency:    nil *core.Adjacency.
//   - ErrInvalidSource:   source outside [0, V); also matches core.ErrInvalidVertex.
//   - ErrNoPath:          destination unreachable.
//   - ErrCorruptParents:  parent links that do not lead back to the source.
//   - ErrNotAdjacent:     PathWeight found a hop that is not an edge.
//   - ErrOptionViolation: an Option received an invalid argument.
//
// Thread safety:
//
//   - A run owns its Result; nothing is shared between runs except the
//     read-only Adjacency. FromEach uses this to run several sources at once.
//
// Example:
//
//	adj, _ := core.Build(edges, 6)
//	res, err := dijkstra.ShortestPaths(adj, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := res.PathTo(5)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    fmt.Println("unreachable")
//	}
package dijkstra
