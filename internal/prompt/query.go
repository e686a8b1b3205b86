package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/spath/core"
)

// Limits on user-supplied sizes; larger inputs are rejected before any
// allocation.
const (
	MaxVertices = 1 << 20
	MaxEdges    = 1 << 22
)

var (
	// ErrIncompleteInput indicates the input ended before every value was read.
	ErrIncompleteInput = errors.New("prompt: input ended early")

	// ErrInvalidGraphFile wraps every rejected value in a graph file.
	ErrInvalidGraphFile = errors.New("prompt: invalid graph file")
)

// Query is one shortest-path question: a graph plus source and destination.
// All indices are 0-based; translation from the 1-based user numbering
// happens while reading.
type Query struct {
	VertexCount int
	Edges       []core.Edge
	Source      int
	Destination int
}

// Adjacency builds the query's graph.
func (q Query) Adjacency() (*core.Adjacency, error) {
	return core.Build(q.Edges, q.VertexCount)
}

// Title is the heading used for rendered output, in 1-based numbering.
func (q Query) Title() string {
	return fmt.Sprintf("Shortest Path from %d to %d", q.Source+1, q.Destination+1)
}

// FormatPath joins path with " -> " using 1-based vertex numbers.
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v + 1)
	}

	return strings.Join(parts, " -> ")
}
