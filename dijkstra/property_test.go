package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spath/bfs"
	"github.com/katalvlaran/spath/builder"
	"github.com/katalvlaran/spath/core"
	"github.com/katalvlaran/spath/dijkstra"
)

// bruteForce returns, for every vertex, the minimum weight over all simple
// paths from src, or Infinity when none exists.
func bruteForce(adj *core.Adjacency, src int) []int64 {
	n := adj.VertexCount()
	best := make([]int64, n)
	for i := range best {
		best[i] = dijkstra.Infinity
	}
	onPath := make([]bool, n)

	var walk func(u int, d int64)
	walk = func(u int, d int64) {
		if d < best[u] {
			best[u] = d
		}
		onPath[u] = true
		for _, nb := range adj.Neighbors(u) {
			if !onPath[nb.To] {
				walk(nb.To, d+nb.Weight)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

// RandomGraphSuite cross-checks the engine against exhaustive enumeration
// on small random graphs.
type RandomGraphSuite struct {
	suite.Suite
	graphs []*core.Adjacency
}

func (s *RandomGraphSuite) SetupSuite() {
	for seed := int64(1); seed <= 25; seed++ {
		adj, err := builder.Build(
			[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
			builder.RandomSparse(7, 0.35),
		)
		s.Require().NoError(err)
		s.graphs = append(s.graphs, adj)
	}
}

// Every queue/settled mode must agree with brute force on every source.
func (s *RandomGraphSuite) TestDistancesMatchBruteForce() {
	for gi, adj := range s.graphs {
		for src := 0; src < adj.VertexCount(); src++ {
			want := bruteForce(adj, src)
			for _, m := range modes {
				res, err := dijkstra.ShortestPaths(adj, src, m.opts...)
				s.Require().NoError(err)
				s.Equal(want, res.Dist, "graph %d src %d mode %s", gi, src, m.name)
			}
		}
	}
}

// Every reconstructed path starts at the source, ends at the destination,
// follows real edges and weighs exactly the reported distance.
func (s *RandomGraphSuite) TestPathsAreValid() {
	for gi, adj := range s.graphs {
		res, err := dijkstra.ShortestPaths(adj, 0)
		s.Require().NoError(err)

		for v := 0; v < adj.VertexCount(); v++ {
			path, err := res.PathTo(v)
			if !res.Reachable(v) {
				s.ErrorIs(err, dijkstra.ErrNoPath)
				continue
			}
			s.Require().NoError(err, "graph %d v %d", gi, v)
			s.Equal(0, path[0])
			s.Equal(v, path[len(path)-1])

			w, err := dijkstra.PathWeight(adj, path)
			s.Require().NoError(err)
			s.Equal(res.Dist[v], w, "graph %d v %d path %v", gi, v, path)

			// Triangle inequality along parent links.
			if p := res.Parent[v]; p != dijkstra.None {
				pw, ok := adj.MinWeight(p, v)
				s.True(ok)
				s.Equal(res.Dist[p]+pw, res.Dist[v])
			}
		}
	}
}

// Reachability agrees with an unweighted breadth-first search.
func (s *RandomGraphSuite) TestReachabilityMatchesBFS() {
	for gi, adj := range s.graphs {
		res, err := dijkstra.ShortestPaths(adj, 0)
		s.Require().NoError(err)
		walk, err := bfs.BFS(adj, 0)
		s.Require().NoError(err)

		for v := 0; v < adj.VertexCount(); v++ {
			s.Equal(walk.Reached(v), res.Reachable(v), "graph %d v %d", gi, v)
		}
	}
}

func TestRandomGraphSuite(t *testing.T) {
	suite.Run(t, new(RandomGraphSuite))
}

// On a unit-weight grid the weighted distance equals the BFS hop count.
func TestShortestPaths_UnitGridMatchesBFS(t *testing.T) {
	adj, err := builder.Build(nil, builder.Grid(6, 7))
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(adj, 0, dijkstra.WithQueue(dijkstra.QueueIndexed))
	require.NoError(t, err)
	walk, err := bfs.BFS(adj, 0)
	require.NoError(t, err)

	for v := 0; v < adj.VertexCount(); v++ {
		require.Equal(t, int64(walk.Depth[v]), res.Dist[v], "vertex %d", v)
	}
}

// Decrease-key after earlier pops must land on the live heap slot: the
// indexed queue agrees with the lazy one on many seeded graphs.
func TestShortestPaths_IndexedQueueMatchesLazy(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		adj, err := builder.Build(
			[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)

		for src := 0; src < adj.VertexCount(); src++ {
			lazy, err := dijkstra.ShortestPaths(adj, src, dijkstra.WithQueue(dijkstra.QueueLazy))
			require.NoError(t, err)
			indexed, err := dijkstra.ShortestPaths(adj, src, dijkstra.WithQueue(dijkstra.QueueIndexed))
			require.NoError(t, err)

			require.Equal(t, lazy.Dist, indexed.Dist, "seed %d src %d", seed, src)
			require.Zero(t, indexed.Stats.StaleSkips, "seed %d src %d", seed, src)
		}
	}
}

// Seed 25 decreases the keys of vertices 4 and 5 after their heap slots
// moved during earlier pops.
func TestShortestPaths_IndexedQueueSeed25(t *testing.T) {
	adj, err := builder.Build(
		[]builder.Option{builder.WithSeed(25), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
		builder.RandomSparse(7, 0.35),
	)
	require.NoError(t, err)

	want := bruteForce(adj, 0)
	for _, m := range modes {
		res, err := dijkstra.ShortestPaths(adj, 0, m.opts...)
		require.NoError(t, err)
		require.Equal(t, want, res.Dist, m.name)
	}
}
