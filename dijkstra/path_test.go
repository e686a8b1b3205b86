package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spath/core"
	"github.com/katalvlaran/spath/dijkstra"
)

const inf = dijkstra.Infinity

func TestReconstructPath_Valid(t *testing.T) {
	dist := []int64{0, 3, 1, 4, 7, 9}
	parent := []int{dijkstra.None, 2, 0, 1, 3, 4}

	path, err := dijkstra.ReconstructPath(dist, parent, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3, 4, 5}, path)

	path, err = dijkstra.ReconstructPath(dist, parent, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestReconstructPath_Errors(t *testing.T) {
	cases := []struct {
		name   string
		dist   []int64
		parent []int
		dest   int
		want   error
	}{
		{"length mismatch", []int64{0, 1}, []int{dijkstra.None}, 0, dijkstra.ErrCorruptParents},
		{"destination negative", []int64{0}, []int{dijkstra.None}, -1, core.ErrInvalidVertex},
		{"destination too large", []int64{0}, []int{dijkstra.None}, 1, core.ErrInvalidVertex},
		{"unreachable", []int64{0, inf}, []int{dijkstra.None, dijkstra.None}, 1, dijkstra.ErrNoPath},
		{"parent out of range", []int64{0, 1}, []int{dijkstra.None, 7}, 1, dijkstra.ErrCorruptParents},
		{"cycle", []int64{0, 1, 2}, []int{dijkstra.None, 2, 1}, 2, dijkstra.ErrCorruptParents},
		{"self parent", []int64{0, 1}, []int{dijkstra.None, 1}, 1, dijkstra.ErrCorruptParents},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := dijkstra.ReconstructPath(tc.dist, tc.parent, tc.dest)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, path)
		})
	}
}

func TestResultPathTo_WrongRoot(t *testing.T) {
	// The chain to 2 is well-formed but roots at 1, not at the source 0.
	res := &dijkstra.Result{
		Source: 0,
		Dist:   []int64{0, 5, 6},
		Parent: []int{dijkstra.None, dijkstra.None, 1},
	}
	_, err := res.PathTo(2)
	assert.ErrorIs(t, err, dijkstra.ErrCorruptParents)
}

func TestResultDistance_OutOfRange(t *testing.T) {
	res := &dijkstra.Result{Dist: []int64{0}, Parent: []int{dijkstra.None}}
	_, err := res.Distance(3)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
	assert.False(t, res.Reachable(3))
	assert.False(t, res.Reachable(-1))
}

func TestPathWeight(t *testing.T) {
	adj := mustBuild(t, []core.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 1, V: 0, Weight: 2}, // parallel edge, lighter
		{U: 1, V: 2, Weight: 3},
	}, 4)

	w, err := dijkstra.PathWeight(adj, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), w)

	w, err = dijkstra.PathWeight(adj, []int{2})
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = dijkstra.PathWeight(adj, []int{0, 2})
	assert.ErrorIs(t, err, dijkstra.ErrNotAdjacent)

	_, err = dijkstra.PathWeight(adj, []int{0, 9})
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	_, err = dijkstra.PathWeight(nil, []int{0})
	assert.ErrorIs(t, err, dijkstra.ErrNilAdjacency)
}

func TestPathWeight_RepeatedEdgesOverflow(t *testing.T) {
	half := core.MaxTotalWeight / 2
	adj := mustBuild(t, []core.Edge{{U: 0, V: 1, Weight: half}}, 2)

	w, err := dijkstra.PathWeight(adj, []int{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2*half, w)

	_, err = dijkstra.PathWeight(adj, []int{0, 1, 0, 1})
	assert.ErrorIs(t, err, core.ErrWeightOverflow)
}

func TestShortestPaths_ParallelEdgesUseLightest(t *testing.T) {
	adj := mustBuild(t, []core.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 1, V: 0, Weight: 2},
	}, 2)
	res, err := dijkstra.ShortestPaths(adj, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Dist[0])
}
