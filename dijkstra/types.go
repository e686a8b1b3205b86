// Package dijkstra defines the result types, sentinel errors and
// configuration options for the shortest-path engine.
//
// Options:
//
//	– WithQueue:            QueueLazy (binary heap, duplicate pushes) or QueueIndexed (decrease-key heap).
//	– WithSettledSet:       skip stale and already-settled pops (default).
//	– WithRevisits:         process every popped entry, settled or not.
//	– WithMaxDistance:      vertices farther than this stay at Infinity.
//	– WithInfEdgeThreshold: edges with weight ≥ this threshold are impassable.
//	– WithOnSettle:         callback for every processed pop.
//
// Errors (sentinel):
//
//	– ErrNilAdjacency    if the adjacency pointer is nil.
//	– ErrInvalidSource   if the source lies outside [0, V).
//	– ErrNoPath          if a destination is unreachable from the source.
//	– ErrCorruptParents  if a parent array does not form a chain back to a root.
//	– ErrNotAdjacent     if a vertex sequence steps across a non-edge.
//	– ErrOptionViolation if an option was given an invalid argument.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance of every vertex not reachable from the source.
// No finite path sum is ever reported as Infinity: relaxations that would
// reach or exceed it are discarded.
const Infinity int64 = math.MaxInt64

// None is the parent of the source and of every unreachable vertex.
const None = -1

// Sentinel errors returned by the engine and by path reconstruction.
var (
	// ErrNilAdjacency indicates that a nil *core.Adjacency was passed in.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrInvalidSource indicates that the source vertex lies outside [0, V).
	ErrInvalidSource = errors.New("dijkstra: invalid source vertex")

	// ErrNoPath indicates that the destination is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to destination")

	// ErrCorruptParents indicates a parent array that loops, points out of
	// range or disagrees in length with its distance array.
	ErrCorruptParents = errors.New("dijkstra: corrupt parent array")

	// ErrNotAdjacent indicates two consecutive path vertices share no edge.
	ErrNotAdjacent = errors.New("dijkstra: consecutive path vertices are not adjacent")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero or negative InfEdgeThreshold, which
	// would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnknownQueue indicates a QueueKind outside the known set.
	ErrUnknownQueue = errors.New("dijkstra: unknown queue kind")
)

// QueueKind selects the priority-queue discipline.
type QueueKind int

const (
	// QueueLazy is a binary heap with "lazy decrease-key": every improvement
	// pushes a fresh entry and outdated ones are left in place.
	QueueLazy QueueKind = iota

	// QueueIndexed is an indexed heap holding at most one entry per vertex;
	// improvements decrease the existing entry in place.
	QueueIndexed
)

// String returns the lower-case name used in configuration files.
func (k QueueKind) String() string {
	switch k {
	case QueueLazy:
		return "lazy"
	case QueueIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("QueueKind(%d)", int(k))
	}
}

// ParseQueueKind maps "lazy" or "indexed" to a QueueKind.
func ParseQueueKind(s string) (QueueKind, error) {
	switch s {
	case "lazy", "":
		return QueueLazy, nil
	case "indexed":
		return QueueIndexed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQueue, s)
	}
}

// Options configures one engine run.
type Options struct {
	// Queue selects the priority-queue discipline. Default QueueLazy.
	Queue QueueKind

	// Settled enables the settled-vertex set. When false, every popped entry
	// is processed (reference behaviour). Default true.
	Settled bool

	// MaxDistance caps exploration; vertices farther away keep Infinity.
	// Must be ≥ 0. Default Infinity (no cap).
	MaxDistance int64

	// InfEdgeThreshold treats edges with weight ≥ threshold as impassable.
	// Must be > 0. Default Infinity (no walls).
	InfEdgeThreshold int64

	// OnSettle is called for every processed pop with the vertex and its
	// current best distance. Never nil after DefaultOptions.
	OnSettle func(v int, dist int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the engine.
// Invalid arguments are recorded and surfaced as ErrOptionViolation when
// ShortestPaths is invoked.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given:
// lazy queue, settled set on, no distance cap, no impassable edges.
func DefaultOptions() Options {
	return Options{
		Queue:            QueueLazy,
		Settled:          true,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		OnSettle:         func(int, int64) {},
	}
}

// WithQueue selects the priority-queue discipline.
func WithQueue(kind QueueKind) Option {
	return func(o *Options) {
		if kind != QueueLazy && kind != QueueIndexed {
			o.err = fmt.Errorf("%w: %w: %d", ErrOptionViolation, ErrUnknownQueue, int(kind))
			return
		}
		o.Queue = kind
	}
}

// WithSettledSet marks vertices as settled on first processing and skips
// any later pop for them.
func WithSettledSet() Option {
	return func(o *Options) { o.Settled = true }
}

// WithRevisits disables the settled set: every popped entry is processed,
// including stale ones. Final distances are unchanged; only work differs.
func WithRevisits() Option {
	return func(o *Options) { o.Settled = false }
}

// WithMaxDistance stops exploring beyond the given distance.
//
//	d ≥ 0: vertices with distance > d keep Infinity
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats every edge whose weight is ≥ t as a wall.
//
//	t > 0: edges with weight ≥ t are skipped
//	t ≤ 0: invalid option → ErrOptionViolation
func WithInfEdgeThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadInfThreshold, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithOnSettle registers a callback run for every processed pop.
func WithOnSettle(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Pops        int // entries removed from the queue
	StaleSkips  int // pops discarded by the settled set
	Relaxations int // successful distance improvements
	Pushes      int // queue insertions or decrease-key updates
}

// Result holds the outcome of one engine run. The caller owns the slices.
//
//   - Dist[v]:   shortest distance from Source to v, or Infinity.
//   - Parent[v]: predecessor of v on one shortest path, or None.
type Result struct {
	Source int
	Dist   []int64
	Parent []int
	Stats  Stats
}
