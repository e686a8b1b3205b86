package core

import "fmt"

// Build converts a flat undirected edge list into an Adjacency over the
// vertices 0..vertexCount-1.
//
// Every edge is validated before anything is allocated, so an error leaves
// no partially built structure behind:
//  1. vertexCount ≥ 1, else ErrNoVertices.
//  2. Both endpoints of each edge lie in [0, vertexCount), else ErrInvalidVertex.
//  3. Each weight is ≥ 0, else ErrNegativeWeight.
//  4. The weights sum to at most MaxTotalWeight, else ErrWeightOverflow.
//
// Complexity: O(V + E) time, O(V + E) space.
func Build(edges []Edge, vertexCount int) (*Adjacency, error) {
	// 1) Validate the vertex count.
	if vertexCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoVertices, vertexCount)
	}

	// 2) Validate every edge up front and count per-vertex degrees so each
	//    neighbor list is allocated exactly once.
	degree := make([]int, vertexCount)
	var (
		e     Edge
		total int64
	)
	for i := range edges {
		e = edges[i]
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) with V=%d", ErrInvalidVertex, i, e.U, e.V, vertexCount)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) weight=%d", ErrNegativeWeight, i, e.U, e.V, e.Weight)
		}
		if e.Weight > MaxTotalWeight-total {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) weight=%d", ErrWeightOverflow, i, e.U, e.V, e.Weight)
		}
		total += e.Weight
		degree[e.U]++
		degree[e.V]++
	}

	// 3) Allocate neighbor lists with their final capacity.
	lists := make([][]Neighbor, vertexCount)
	for v, d := range degree {
		if d > 0 {
			lists[v] = make([]Neighbor, 0, d)
		}
	}

	// 4) Record each edge on both endpoints, preserving input order.
	for _, e = range edges {
		lists[e.U] = append(lists[e.U], Neighbor{To: e.V, Weight: e.Weight})
		lists[e.V] = append(lists[e.V], Neighbor{To: e.U, Weight: e.Weight})
	}

	// 5) Keep a private copy of the input for Edges() and renderers.
	own := make([]Edge, len(edges))
	copy(own, edges)

	return &Adjacency{lists: lists, edges: own}, nil
}

// VertexCount returns V.
func (a *Adjacency) VertexCount() int { return len(a.lists) }

// EdgeCount returns the number of input edges (not neighbor entries).
func (a *Adjacency) EdgeCount() int { return len(a.edges) }

// HasVertex reports whether v lies in [0, V).
func (a *Adjacency) HasVertex(v int) bool { return v >= 0 && v < len(a.lists) }

// CheckVertex returns nil if v lies in [0, V), or an error wrapping
// ErrInvalidVertex otherwise.
func (a *Adjacency) CheckVertex(v int) error {
	if !a.HasVertex(v) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVertex, v, len(a.lists))
	}

	return nil
}

// Degree returns the number of neighbor entries of v (self-loops count twice).
// Out-of-range vertices have degree 0.
func (a *Adjacency) Degree(v int) int {
	if !a.HasVertex(v) {
		return 0
	}

	return len(a.lists[v])
}

// Neighbors returns the neighbor list of v in insertion order.
//
// The returned slice is a view into the Adjacency and must not be modified.
// Out-of-range vertices yield nil.
func (a *Adjacency) Neighbors(v int) []Neighbor {
	if !a.HasVertex(v) {
		return nil
	}

	return a.lists[v]
}

// Edges returns a copy of the edge list the Adjacency was built from.
func (a *Adjacency) Edges() []Edge {
	out := make([]Edge, len(a.edges))
	copy(out, a.edges)

	return out
}

// MinWeight returns the weight of the lightest edge between u and v.
// The boolean is false when u and v are not adjacent.
func (a *Adjacency) MinWeight(u, v int) (int64, bool) {
	if !a.HasVertex(u) || !a.HasVertex(v) {
		return 0, false
	}
	var (
		best  int64
		found bool
	)
	for _, nb := range a.lists[u] {
		if nb.To != v {
			continue
		}
		if !found || nb.Weight < best {
			best, found = nb.Weight, true
		}
	}

	return best, found
}
