// Package render defines the scene model, options and sentinel errors for
// drawing a graph with one highlighted route.
package render

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/spath/core"
)

// Sentinel errors for rendering.
var (
	// ErrNilWriter is returned when the destination writer is nil.
	ErrNilWriter = errors.New("render: writer is nil")

	// ErrInvalidScene indicates a scene whose edges or path reference a
	// vertex outside [0, VertexCount), or a scene with no vertices.
	ErrInvalidScene = errors.New("render: invalid scene")

	// ErrBrokenPath indicates consecutive path vertices with no edge between
	// them in the scene.
	ErrBrokenPath = errors.New("render: path steps across a non-edge")
)

// Colors and widths used for highlighting. They mirror the usual
// "route over a map" palette: plain vertices light blue, route vertices
// orange, route edges red and thicker.
const (
	BaseVertexColor = "lightblue"
	PathVertexColor = "orange"
	PathEdgeColor   = "red"
	PathEdgeWidth   = 3
)

// Scene is everything a renderer needs: the graph, the route to highlight
// and a title. Path may be empty (nothing highlighted).
type Scene struct {
	VertexCount int
	Edges       []core.Edge
	Path        []int
	Title       string
}

// NewScene captures adj's edges together with path and title.
func NewScene(adj *core.Adjacency, path []int, title string) Scene {
	return Scene{
		VertexCount: adj.VertexCount(),
		Edges:       adj.Edges(),
		Path:        path,
		Title:       title,
	}
}

// Option customizes a renderer.
type Option func(*Options)

// Options holds renderer settings.
type Options struct {
	// Labeler maps an internal vertex index to its printed label.
	// Default: the decimal index itself.
	Labeler func(v int) string

	// GraphName is the DOT graph identifier. Default "spath".
	GraphName string
}

// DefaultOptions returns 0-based decimal labels and the "spath" graph name.
func DefaultOptions() Options {
	return Options{
		Labeler:   strconv.Itoa,
		GraphName: "spath",
	}
}

// WithLabeler overrides vertex labels; a nil fn is ignored.
func WithLabeler(fn func(v int) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.Labeler = fn
		}
	}
}

// WithOneBased labels vertex v as v+1, the numbering users type in.
func WithOneBased() Option {
	return WithLabeler(func(v int) string { return strconv.Itoa(v + 1) })
}

// WithGraphName sets the DOT graph identifier; empty names are ignored.
func WithGraphName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.GraphName = name
		}
	}
}

// Pair is an unordered vertex pair stored with U ≤ V.
type Pair struct {
	U, V int
}

// MakePair normalizes (u, v) so that U ≤ V.
func MakePair(u, v int) Pair {
	if u > v {
		u, v = v, u
	}

	return Pair{U: u, V: v}
}
