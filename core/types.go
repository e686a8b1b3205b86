// Package core defines the Edge, Neighbor and Adjacency types and the
// sentinel errors returned while building an adjacency structure.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for adjacency construction and vertex queries.
var (
	// ErrNoVertices indicates that a graph was requested with fewer than one vertex.
	ErrNoVertices = errors.New("core: vertex count must be at least 1")

	// ErrInvalidVertex indicates an edge or query referenced a vertex outside [0, V).
	ErrInvalidVertex = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge with a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightOverflow indicates edge weights whose total exceeds MaxTotalWeight.
	ErrWeightOverflow = errors.New("core: total edge weight overflows int64")
)

// MaxTotalWeight bounds the sum of all edge weights of an Adjacency. Every
// simple path therefore weighs at most MaxTotalWeight, strictly below
// math.MaxInt64, which shortest-path code reserves as "unreachable".
const MaxTotalWeight int64 = math.MaxInt64 - 1

// Edge is an undirected connection between vertices U and V.
//
// The pair is unordered: Edge{U: 1, V: 2} and Edge{U: 2, V: 1} describe the
// same connection.
type Edge struct {
	// U is one endpoint, in [0, V).
	U int

	// V is the other endpoint, in [0, V).
	V int

	// Weight is the non-negative traversal cost.
	Weight int64
}

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	To     int   // neighboring vertex
	Weight int64 // weight of the edge leading to To
}

// Adjacency maps each vertex to the ordered list of its neighbors.
//
// It is built once by Build and never mutated afterwards, so a single
// *Adjacency may be read from many goroutines at once.
type Adjacency struct {
	lists [][]Neighbor // lists[v] = neighbors of v in edge-list order
	edges []Edge       // the validated input edges, in input order
}
