// SPDX-License-Identifier: MIT
// Package: spath/builder

// Package builder generates deterministic edge lists for spath graphs.
//
// Every constructor yields a block of vertices numbered 0..n-1 and the
// undirected edges between them. BuildEdges runs constructors in order and
// places each block after the previous one, so
//
//	BuildEdges(nil, Path(3), Path(2))
//
// yields 5 vertices and two components: 0—1—2 and 3—4. That makes
// disconnected fixtures a one-liner.
//
// Constructors:
//
//	Path(n)            — P_n, n ≥ 1
//	Cycle(n)           — C_n, n ≥ 3
//	Star(n)            — hub 0 plus n-1 leaves, n ≥ 2
//	Complete(n)        — K_n, n ≥ 1
//	Grid(rows, cols)   — 4-neighbour lattice, vertex r*cols+c
//	RandomSparse(n, p) — each pair independently with probability p
//
// Options:
//
//	WithSeed(seed)     — deterministic RNG
//	WithRand(r)        — caller-provided RNG
//	WithWeightFn(fn)   — edge weights (DefaultWeightFn, ConstantWeightFn, UniformWeightFn)
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Branch with errors.Is.
package builder
