// Package pathfind defines the solver's result type, sentinel errors, and
// functional options.
package pathfind

import (
	"errors"
	"math"

	"github.com/katalvlaran/curvenav/pathgraph"
	"github.com/katalvlaran/curvenav/pqueue"
)

// Sentinel errors returned by FindPath. All are expected, recoverable
// conditions surfaced as values; none indicates a fault in the graph.
var (
	// ErrNilGraph indicates a nil *pathgraph.Graph was passed to FindPath.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrNodeNotFound indicates the start or goal identity is not present
	// in the graph.
	ErrNodeNotFound = errors.New("pathfind: node not found in graph")

	// ErrNoPath indicates no route exists from start to goal: the frontier
	// was exhausted (or the cost cap reached) before the goal was dequeued.
	ErrNoPath = errors.New("pathfind: no path between nodes")

	// ErrBadMaxCost indicates WithMaxCost was given a negative or NaN cap.
	ErrBadMaxCost = errors.New("pathfind: max cost must be non-negative")
)

// Path is a found route: the node identities from start to goal inclusive,
// and the sum of traversed edge costs. A start-equals-goal query yields a
// single-node path of cost 0.
type Path struct {
	Nodes []pathgraph.NodeID
	Cost  float64
}

// Option is a functional option for FindPath.
type Option func(*options)

// options holds resolved solver configuration.
type options struct {
	maxCost     float64
	newFrontier func() pqueue.Queue[int]
}

// WithHeapFrontier swaps the default unsorted-list frontier for the binary
// heap backing. The returned path is identical either way; only the
// asymptotic cost changes. Worth it once graphs grow past a few hundred
// nodes.
func WithHeapFrontier() Option {
	return func(o *options) {
		o.newFrontier = func() pqueue.Queue[int] { return pqueue.NewHeap[int]() }
	}
}

// WithMaxCost caps exploration: nodes whose tentative cost would exceed
// max are never relaxed, and the search stops once the cheapest frontier
// entry exceeds it. A goal beyond the cap reports ErrNoPath.
//
// max must be ≥ 0 and not NaN; invalid values panic with ErrBadMaxCost
// (misconfiguration, detected at the call site). +Inf is the default and
// means no cap.
func WithMaxCost(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *options) {
		o.maxCost = max
	}
}

// defaultOptions returns the default configuration: no cost cap, List
// frontier.
func defaultOptions() options {
	return options{
		maxCost:     math.Inf(1),
		newFrontier: func() pqueue.Queue[int] { return pqueue.NewList[int]() },
	}
}
