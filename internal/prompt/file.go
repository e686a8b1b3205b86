package prompt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/spath/core"
)

// graphFile is the on-disk form of a Query. Vertices are 1-based:
//
//	vertices: 6
//	edges:
//	  - [1, 2, 4]
//	  - [1, 3, 1]
//	source: 1
//	destination: 6
type graphFile struct {
	Vertices    int       `yaml:"vertices"`
	Edges       [][]int64 `yaml:"edges"`
	Source      int       `yaml:"source"`
	Destination int       `yaml:"destination"`
}

// LoadFile reads a YAML graph file; see ParseGraph.
func LoadFile(path string) (Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Query{}, fmt.Errorf("prompt: read %s: %w", path, err)
	}
	q, err := ParseGraph(data)
	if err != nil {
		return Query{}, fmt.Errorf("%s: %w", path, err)
	}

	return q, nil
}

// ParseGraph decodes a YAML graph document and translates it to 0-based
// indices. Unlike the interactive reader, a file is rejected as a whole on
// the first bad value (ErrInvalidGraphFile, plus core.ErrInvalidVertex for
// out-of-range vertices).
func ParseGraph(data []byte) (Query, error) {
	var f graphFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Query{}, fmt.Errorf("%w: %w", ErrInvalidGraphFile, err)
	}

	if f.Vertices < 1 || f.Vertices > MaxVertices {
		return Query{}, fmt.Errorf("%w: vertices=%d must be in [1,%d]", ErrInvalidGraphFile, f.Vertices, MaxVertices)
	}
	if len(f.Edges) > MaxEdges {
		return Query{}, fmt.Errorf("%w: %d edges exceeds %d", ErrInvalidGraphFile, len(f.Edges), MaxEdges)
	}

	n := int64(f.Vertices)
	edges := make([]core.Edge, 0, len(f.Edges))
	for i, e := range f.Edges {
		if len(e) != 3 {
			return Query{}, fmt.Errorf("%w: edge #%d has %d fields, want [u, v, weight]", ErrInvalidGraphFile, i, len(e))
		}
		if e[0] < 1 || e[0] > n || e[1] < 1 || e[1] > n {
			return Query{}, fmt.Errorf("%w: %w: edge #%d (%d,%d) with vertices=%d",
				ErrInvalidGraphFile, core.ErrInvalidVertex, i, e[0], e[1], n)
		}
		if e[2] < 0 {
			return Query{}, fmt.Errorf("%w: %w: edge #%d weight=%d", ErrInvalidGraphFile, core.ErrNegativeWeight, i, e[2])
		}
		edges = append(edges, core.Edge{U: int(e[0] - 1), V: int(e[1] - 1), Weight: e[2]})
	}

	endpoints := []struct {
		name string
		v    int
	}{{"source", f.Source}, {"destination", f.Destination}}
	for _, ep := range endpoints {
		if ep.v < 1 || ep.v > f.Vertices {
			return Query{}, fmt.Errorf("%w: %w: %s=%d with vertices=%d",
				ErrInvalidGraphFile, core.ErrInvalidVertex, ep.name, ep.v, f.Vertices)
		}
	}

	return Query{
		VertexCount: f.Vertices,
		Edges:       edges,
		Source:      f.Source - 1,
		Destination: f.Destination - 1,
	}, nil
}
