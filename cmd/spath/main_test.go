package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spath/internal/config"
)

const scenarioYAML = `
vertices: 6
edges:
  - [1, 2, 4]
  - [1, 3, 1]
  - [3, 2, 2]
  - [2, 4, 1]
  - [3, 4, 5]
  - [4, 5, 3]
  - [5, 6, 2]
source: 1
destination: 6
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SPATH_LOG_LEVEL", "SPATH_LOG_FORMAT", "SPATH_QUEUE", "SPATH_REVISITS", "SPATH_RENDER"} {
		t.Setenv(k, "")
	}
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// runArgs parses args and runs with the given stdin, returning stdout and
// the log stream.
func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	f, err := parseFlags(args, io.Discard)
	require.NoError(t, err)

	var out, logs bytes.Buffer
	err = run(f, strings.NewReader(stdin), &out, &logs)

	return out.String(), logs.String(), err
}

func TestRun_GraphFile(t *testing.T) {
	clearEnv(t)
	path := writeTemp(t, "g.yaml", scenarioYAML)

	for _, queue := range []string{"lazy", "indexed"} {
		out, logs, err := runArgs(t, "", "-graph", path, "-render", "text", "-queue", queue)
		require.NoError(t, err, queue)

		assert.True(t, strings.HasPrefix(out,
			"Shortest Distance from 1 to 6: 9\nShortest Path: 1 -> 3 -> 2 -> 4 -> 5 -> 6\n"), out)
		assert.Contains(t, out, "Shortest Path from 1 to 6\nvertices: 6, edges: 7\n")
		assert.Contains(t, out, "  1 -- 3 (1) *\n")
		assert.Contains(t, out, "  1 -- 2 (4)\n")

		assert.Contains(t, logs, "shortest paths computed")
		assert.Contains(t, logs, "fewest-hop route")
		assert.Contains(t, logs, "hops=4")
	}
}

func TestRun_Interactive(t *testing.T) {
	clearEnv(t)
	stdin := "6\n7\n1 2 4\n1 3 1\n3 2 2\n2 4 1\n3 4 5\n4 5 3\n5 6 2\n1\n6\n"

	out, _, err := runArgs(t, stdin, "-render", "none")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter number of nodes (>=6): ")
	assert.Contains(t, out, "Enter destination node (1 to 6): \nShortest Distance from 1 to 6: 9\n")
	assert.True(t, strings.HasSuffix(out, "Shortest Path: 1 -> 3 -> 2 -> 4 -> 5 -> 6\n"), out)
}

func TestRun_InteractiveIncomplete(t *testing.T) {
	clearEnv(t)
	_, _, err := runArgs(t, "6\n2\n1 2 3\n", "-render", "none")
	assert.Error(t, err)
}

func TestRun_Unreachable(t *testing.T) {
	clearEnv(t)
	path := writeTemp(t, "g.yaml", "vertices: 4\nedges: [[1, 2, 1]]\nsource: 1\ndestination: 4\n")

	out, logs, err := runArgs(t, "", "-graph", path, "-render", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Shortest Distance from 1 to 4: unreachable\nShortest Path: none\n")
	assert.Contains(t, out, "path: none\n")
	assert.Contains(t, logs, "destination is not reachable from source")
}

func TestRun_SingleVertex(t *testing.T) {
	clearEnv(t)
	path := writeTemp(t, "g.yaml", "vertices: 1\nsource: 1\ndestination: 1\n")

	out, _, err := runArgs(t, "", "-graph", path, "-render", "none")
	require.NoError(t, err)
	assert.Equal(t, "Shortest Distance from 1 to 1: 0\nShortest Path: 1\n", out)
}

func TestRun_Generated(t *testing.T) {
	clearEnv(t)
	out, _, err := runArgs(t, "", "-gen", "path", "-n", "4", "-maxw", "1", "-render", "none")
	require.NoError(t, err)
	assert.Equal(t, "Shortest Distance from 1 to 4: 3\nShortest Path: 1 -> 2 -> 3 -> 4\n", out)

	out, _, err = runArgs(t, "", "-gen", "grid", "-n", "3", "-maxw", "1", "-src", "1", "-dst", "9", "-render", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest Distance from 1 to 9: 4\n")

	_, _, err = runArgs(t, "", "-gen", "star", "-n", "3", "-dst", "7")
	assert.Error(t, err)

	_, _, err = runArgs(t, "", "-gen", "cycle", "-n", "2")
	assert.Error(t, err)
}

func TestRun_DOTToFile(t *testing.T) {
	clearEnv(t)
	graph := writeTemp(t, "g.yaml", scenarioYAML)
	dotPath := filepath.Join(t.TempDir(), "out.dot")

	out, _, err := runArgs(t, "", "-graph", graph, "-render", "dot", "-out", dotPath)
	require.NoError(t, err)
	assert.NotContains(t, out, "graph ")

	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	dot := string(data)
	assert.True(t, strings.HasPrefix(dot, "graph"), dot)
	assert.Contains(t, dot, "Shortest Path from 1 to 6")
	assert.Equal(t, 5, strings.Count(dot, "penwidth"))
	assert.Equal(t, 5, strings.Count(dot, "red"))
	assert.Equal(t, 6, strings.Count(dot, "orange"))
}

func TestRun_ConfigFileAndEnv(t *testing.T) {
	clearEnv(t)
	graph := writeTemp(t, "g.yaml", scenarioYAML)
	cfg := writeTemp(t, "spath.yaml", "logging:\n  level: debug\n  format: json\nrender:\n  format: dot\n")
	t.Setenv("SPATH_RENDER", "none")

	out, logs, err := runArgs(t, "", "-graph", graph, "-config", cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "graph ")
	assert.Contains(t, logs, `"msg":"graph loaded"`)

	bad := writeTemp(t, "bad.yaml", "engine:\n  queue: fibonacci\n")
	_, _, err = runArgs(t, "", "-graph", graph, "-config", bad)
	assert.Error(t, err)

	_, _, err = runArgs(t, "", "-graph", graph, "-render", "svg")
	assert.Error(t, err)
}

func TestRun_FlagsOverrideInvalidEnv(t *testing.T) {
	clearEnv(t)
	graph := writeTemp(t, "g.yaml", scenarioYAML)
	t.Setenv("SPATH_QUEUE", "bogus")
	t.Setenv("SPATH_RENDER", "svg")

	_, _, err := runArgs(t, "", "-graph", graph)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	out, _, err := runArgs(t, "", "-graph", graph, "-queue", "indexed", "-render", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest Distance from 1 to 6: 9\n")

	t.Setenv("SPATH_QUEUE", "")
	t.Setenv("SPATH_RENDER", "")
	t.Setenv("SPATH_LOG_LEVEL", "loud")
	_, _, err = runArgs(t, "", "-graph", graph, "-render", "none")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParseFlags_Validation(t *testing.T) {
	cases := [][]string{
		{"-graph", "a.yaml", "-gen", "path"},
		{"-gen", "hypercube"},
		{"-gen", "random", "-p", "1.5"},
		{"-gen", "path", "-n", "0"},
		{"-gen", "path", "-maxw", "0"},
		{"-bogus"},
		{"extra"},
	}
	for _, args := range cases {
		_, err := parseFlags(args, io.Discard)
		assert.Error(t, err, "args %v", args)
	}

	f, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 6, f.n)
	assert.Equal(t, 1, f.src)
}
