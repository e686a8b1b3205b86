// SPDX-License-Identifier: MIT
// Package: spath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; sentinels carry no parameters.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a constructor that
// produced an edge list core.Build rejects.
var ErrConstructFailed = errors.New("builder: construction failed")
