// Package spath finds and draws the shortest route between two vertices of
// a weighted undirected graph.
//
// 🚀 What is spath?
//
//	A small, dependency-light toolkit built around one question,
//	"how do I get from s to d as cheaply as possible?":
//		• Adjacency:     flat edge list → immutable per-vertex neighbor lists
//		• Shortest path: Dijkstra with a lazy or an indexed priority queue
//		• Routes:        parent-chain reconstruction, ErrNoPath when unreachable
//		• Fewest hops:   BFS over the same adjacency
//		• Rendering:     Graphviz DOT or plain text with the route highlighted
//
// Under the hood, everything is organized in flat subpackages:
//
//	core/      — Edge, Neighbor and the immutable Adjacency (Build)
//	dijkstra/  — ShortestPaths, FromEach, ReconstructPath, PathWeight
//	bfs/       — hop-count traversal and reachability
//	builder/   — deterministic generators: path, cycle, star, complete, grid, random
//	render/    — Scene, DOT, Text
//	cmd/spath/ — interactive / file / generated CLI
//
// Quick ASCII example:
//
//	    1 ─4─ 2 ─1─ 4 ─3─ 5 ─2─ 6
//	     \    |    /
//	      1   2   5
//	       \  |  /
//	         3
//
//	the lightest route from 1 to 6 is 1 → 3 → 2 → 4 → 5 → 6 with weight 9.
//
//	go install github.com/katalvlaran/spath/cmd/spath@latest
package spath
