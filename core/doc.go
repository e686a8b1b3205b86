// Package core provides the immutable adjacency structure that every
// algorithm in spath runs on.
//
// A graph G = (V,E) is described by a vertex count V and a flat list of
// undirected, weighted edges. Vertices are the integers 0..V-1; there are no
// string IDs, no vertex metadata and no mutation after construction.
//
// Build turns the edge list into per-vertex neighbor lists:
//
//   - Each edge (u, v, w) is recorded on both endpoints, so the structure
//     holds exactly 2·|E| neighbor entries. A self-loop (v, v, w) yields two
//     entries on v.
//   - Per-vertex insertion order follows the edge list. Order only affects
//     tie-breaking in traversals, never the distances they compute.
//   - Validation is owned here: V must be ≥ 1, every endpoint must lie in
//     [0, V) and every weight must be ≥ 0.
//
// Why an immutable structure?
//
//   - One Adjacency may be shared by any number of concurrent read-only
//     queries (e.g. one Dijkstra run per source) without locks.
//   - Algorithms own their own distance/parent arrays; nothing they compute
//     is written back into the graph.
//
// Core API:
//
//	Build(edges []Edge, vertexCount int) (*Adjacency, error) // O(V + E)
//
//	VertexCount() int                 // O(1)
//	EdgeCount() int                   // O(1)
//	HasVertex(v int) bool             // O(1)
//	CheckVertex(v int) error          // O(1)
//	Degree(v int) int                 // O(1)
//	Neighbors(v int) []Neighbor       // O(1), read-only view
//	Edges() []Edge                    // O(E), copy
//	MinWeight(u, v int) (int64, bool) // O(deg(u))
//
// Errors:
//
//	ErrNoVertices     - vertex count is below 1.
//	ErrInvalidVertex  - an edge or query references a vertex outside [0, V).
//	ErrNegativeWeight - an edge carries a negative weight.
//
// Example:
//
//	adj, err := core.Build([]core.Edge{
//	    {U: 0, V: 1, Weight: 4},
//	    {U: 1, V: 2, Weight: 1},
//	}, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(adj.Degree(1)) // 2
package core
