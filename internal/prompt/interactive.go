package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spath/core"
)

// session reads answers line by line and writes prompts and complaints.
type session struct {
	sc *bufio.Scanner
	w  io.Writer
}

// Interactive asks for a graph and a query on w and reads the answers from
// r: node count, edge count, one "u v weight" line per edge (1-based),
// source and destination.
//
// Malformed or out-of-range answers are reported on w and asked again, so
// every accepted edge is valid and exactly the requested number of edges is
// collected. Input ending early yields ErrIncompleteInput.
func Interactive(r io.Reader, w io.Writer) (Query, error) {
	s := &session{sc: bufio.NewScanner(r), w: w}

	// 1) Sizes.
	n, err := s.intInRange("Enter number of nodes (>=6): ", "number of nodes", 1, MaxVertices)
	if err != nil {
		return Query{}, err
	}
	m, err := s.intInRange("Enter number of edges: ", "number of edges", 0, MaxEdges)
	if err != nil {
		return Query{}, err
	}

	// 2) Edges, translated to 0-based indices.
	edges := make([]core.Edge, 0, m)
	if m > 0 {
		fmt.Fprintf(w, "Enter edges in format: u v weight (nodes numbered from 1 to %d)\n", n)
	}
	for len(edges) < m {
		text, err := s.line("", fmt.Sprintf("edge %d of %d", len(edges)+1, m))
		if err != nil {
			return Query{}, err
		}
		e, complaint := parseEdge(text, n)
		if complaint != "" {
			fmt.Fprintln(w, complaint)
			continue
		}
		edges = append(edges, e)
	}

	// 3) Query endpoints.
	src, err := s.intInRange(fmt.Sprintf("Enter source node (1 to %d): ", n), "source node", 1, n)
	if err != nil {
		return Query{}, err
	}
	dst, err := s.intInRange(fmt.Sprintf("Enter destination node (1 to %d): ", n), "destination node", 1, n)
	if err != nil {
		return Query{}, err
	}

	return Query{VertexCount: n, Edges: edges, Source: src - 1, Destination: dst - 1}, nil
}

// line prints prompt (if any) and returns the next non-blank line.
func (s *session) line(prompt, what string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.w, prompt)
	}
	for s.sc.Scan() {
		if text := strings.TrimSpace(s.sc.Text()); text != "" {
			return text, nil
		}
	}
	if err := s.sc.Err(); err != nil {
		return "", fmt.Errorf("prompt: reading %s: %w", what, err)
	}

	return "", fmt.Errorf("%w: waiting for %s", ErrIncompleteInput, what)
}

// intInRange asks until the answer is an integer in [lo, hi].
func (s *session) intInRange(prompt, what string, lo, hi int) (int, error) {
	for {
		text, err := s.line(prompt, what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < lo || v > hi {
			fmt.Fprintf(s.w, "Invalid %s: %s. Must be between %d and %d. Try again.\n", what, text, lo, hi)
			continue
		}

		return v, nil
	}
}

// parseEdge converts "u v weight" (1-based) into a 0-based edge, or returns
// the message to show the user.
func parseEdge(text string, n int) (core.Edge, string) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return core.Edge{}, fmt.Sprintf("Invalid edge line %q: expected \"u v weight\". Try again.", text)
	}
	u, errU := strconv.Atoi(fields[0])
	v, errV := strconv.Atoi(fields[1])
	w, errW := strconv.ParseInt(fields[2], 10, 64)
	if errU != nil || errV != nil || errW != nil {
		return core.Edge{}, fmt.Sprintf("Invalid edge line %q: u, v and weight must be integers. Try again.", text)
	}
	if u < 1 || v < 1 || u > n || v > n {
		return core.Edge{}, fmt.Sprintf("Invalid edge: %d %d. Nodes must be between 1 and %d. Try again.", u, v, n)
	}
	if w < 0 {
		return core.Edge{}, fmt.Sprintf("Invalid weight: %d. Weights must be non-negative. Try again.", w)
	}

	return core.Edge{U: u - 1, V: v - 1, Weight: w}, ""
}
