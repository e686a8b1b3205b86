package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spath/bfs"
	"github.com/katalvlaran/spath/builder"
	"github.com/katalvlaran/spath/core"
)

// mustBuild builds an adjacency or fails the test.
func mustBuild(t *testing.T, edges []core.Edge, n int) *core.Adjacency {
	t.Helper()
	adj, err := core.Build(edges, n)
	require.NoError(t, err)

	return adj
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	adj := mustBuild(t, nil, 2)
	_, err = bfs.BFS(adj, 2)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	_, err = bfs.BFS(adj, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsIgnoreWeights(t *testing.T) {
	// 0—1 (100), 1—2 (100), 0—2 (1000): every vertex is one or two hops away.
	adj := mustBuild(t, []core.Edge{
		{U: 0, V: 1, Weight: 100},
		{U: 1, V: 2, Weight: 100},
		{U: 0, V: 2, Weight: 1000},
		{U: 2, V: 3, Weight: 1},
	}, 4)

	res, err := bfs.BFS(adj, 0)
	require.NoError(t, err)

	if diff := cmp.Diff([]int{0, 1, 1, 2}, res.Depth); diff != "" {
		t.Errorf("Depth mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, res.Order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
}

func TestBFS_Disconnected(t *testing.T) {
	n, edges, err := builder.BuildEdges(nil, builder.Path(3), builder.Path(2))
	require.NoError(t, err)
	adj := mustBuild(t, edges, n)

	res, err := bfs.BFS(adj, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.False(t, res.Reached(3))
	assert.False(t, res.Reached(99))

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepth(t *testing.T) {
	adj, err := builder.Build(nil, builder.Path(6))
	require.NoError(t, err)

	res, err := bfs.BFS(adj, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, bfs.Unreached, res.Depth[3])
}

func TestBFS_FilterNeighbor(t *testing.T) {
	// Skipping heavy edges cuts the graph.
	adj := mustBuild(t, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 50},
	}, 3)
	res, err := bfs.BFS(adj, 0, bfs.WithFilterNeighbor(func(_, _ int, w int64) bool { return w < 10 }))
	require.NoError(t, err)
	assert.True(t, res.Reached(1))
	assert.False(t, res.Reached(2))
}

func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	adj := mustBuild(t, []core.Edge{
		{U: 0, V: 0, Weight: 1},
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 1, Weight: 2},
	}, 2)
	res, err := bfs.BFS(adj, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_OnVisitError(t *testing.T) {
	adj, err := builder.Build(nil, builder.Path(4))
	require.NoError(t, err)

	stop := errors.New("stop")
	_, err = bfs.BFS(adj, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancellation(t *testing.T) {
	adj, err := builder.Build(nil, builder.Path(10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(adj, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
