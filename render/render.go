package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emicklei/dot"
	"github.com/rhartert/sparsesets"
)

// PathEdges returns the unordered pairs traversed by path, in order.
// A path of fewer than two vertices has no edges.
func PathEdges(path []int) []Pair {
	if len(path) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		pairs = append(pairs, MakePair(path[i-1], path[i]))
	}

	return pairs
}

// highlight marks which scene edges and vertices belong to the route.
type highlight struct {
	edges    []bool          // edges[i] ⇔ s.Edges[i] is drawn as a route edge
	vertices *sparsesets.Set // route vertices
}

// validate checks that every index in s lies in [0, VertexCount).
func validate(s Scene) error {
	if s.VertexCount < 1 {
		return fmt.Errorf("%w: no vertices", ErrInvalidScene)
	}
	for i, e := range s.Edges {
		if e.U < 0 || e.U >= s.VertexCount || e.V < 0 || e.V >= s.VertexCount {
			return fmt.Errorf("%w: edge #%d (%d,%d) with V=%d", ErrInvalidScene, i, e.U, e.V, s.VertexCount)
		}
	}
	for i, v := range s.Path {
		if v < 0 || v >= s.VertexCount {
			return fmt.Errorf("%w: path[%d]=%d with V=%d", ErrInvalidScene, i, v, s.VertexCount)
		}
	}

	return nil
}

// computeHighlight picks, for every hop of the route, the lightest scene
// edge joining its endpoints (the first one on ties).
func computeHighlight(s Scene) (highlight, error) {
	if err := validate(s); err != nil {
		return highlight{}, err
	}

	h := highlight{
		edges:    make([]bool, len(s.Edges)),
		vertices: sparsesets.New(s.VertexCount),
	}
	for _, v := range s.Path {
		h.vertices.Insert(v)
	}

	hops := PathEdges(s.Path)
	if len(hops) == 0 {
		return h, nil
	}

	lightest := make(map[Pair]int, len(s.Edges))
	for i, e := range s.Edges {
		p := MakePair(e.U, e.V)
		if j, ok := lightest[p]; !ok || e.Weight < s.Edges[j].Weight {
			lightest[p] = i
		}
	}
	for _, p := range hops {
		i, ok := lightest[p]
		if !ok {
			return highlight{}, fmt.Errorf("%w: %d→%d", ErrBrokenPath, p.U, p.V)
		}
		h.edges[i] = true
	}

	return h, nil
}

// errWriter remembers the first write error so rendering code can print
// unconditionally and check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DOT writes s as a Graphviz undirected graph. Every edge carries its weight
// as label; route vertices are filled orange, the rest light blue, and
// route edges are red with penwidth 3. The title becomes the graph label.
//
// Errors: ErrNilWriter, ErrInvalidScene, ErrBrokenPath, or the write error
// from w.
func DOT(w io.Writer, s Scene, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	cfg := resolve(opts)
	h, err := computeHighlight(s)
	if err != nil {
		return err
	}

	// 1) Graph-wide attributes.
	g := dot.NewGraph(dot.Undirected)
	g.ID(cfg.GraphName)
	if s.Title != "" {
		g.Attr("label", s.Title)
		g.Attr("labelloc", "t")
	}

	// 2) Vertices, route vertices recolored.
	nodes := make([]dot.Node, s.VertexCount)
	for v := range nodes {
		fill := BaseVertexColor
		if h.vertices.Contains(v) {
			fill = PathVertexColor
		}
		nodes[v] = g.Node(strconv.Itoa(v)).
			Attr("label", cfg.Labeler(v)).
			Attr("style", "filled").
			Attr("fillcolor", fill)
	}

	// 3) Edges in input order, route edges emphasized.
	for i, e := range s.Edges {
		edge := g.Edge(nodes[e.U], nodes[e.V]).Attr("label", strconv.FormatInt(e.Weight, 10))
		if h.edges[i] {
			edge.Attr("color", PathEdgeColor).Attr("penwidth", strconv.Itoa(PathEdgeWidth))
		}
	}

	_, err = io.WriteString(w, g.String())

	return err
}

// Text writes s as a plain listing: the title, one line per edge with its
// weight (route edges marked with "*"), and the route itself.
//
// Errors: same as DOT.
func Text(w io.Writer, s Scene, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	cfg := resolve(opts)
	h, err := computeHighlight(s)
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	if s.Title != "" {
		ew.printf("%s\n", s.Title)
	}
	ew.printf("vertices: %d, edges: %d\n", s.VertexCount, len(s.Edges))
	for i, e := range s.Edges {
		mark := ""
		if h.edges[i] {
			mark = " *"
		}
		ew.printf("  %s -- %s (%d)%s\n", cfg.Labeler(e.U), cfg.Labeler(e.V), e.Weight, mark)
	}

	if len(s.Path) == 0 {
		ew.printf("path: none\n")
		return ew.err
	}
	labels := make([]string, len(s.Path))
	for i, v := range s.Path {
		labels[i] = cfg.Labeler(v)
	}
	ew.printf("path: %s\n", strings.Join(labels, " -> "))

	return ew.err
}
