package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/curvenav/pathgraph"
	"github.com/katalvlaran/curvenav/pqueue"
)

// FindPath computes the minimum-cost route from start to goal in g and
// returns it as a Path running start → goal inclusive.
//
// Outcomes:
//
//   - (Path, nil) on success; Nodes is never empty.
//   - ErrNilGraph when g is nil.
//   - ErrNodeNotFound (wrapped with the offending identity) when start or
//     goal is unknown to g. Checked up front, never left to fault on a
//     missing-key lookup.
//   - ErrNoPath when the frontier empties, or the WithMaxCost cap is
//     reached, before the goal is dequeued.
//
// start == goal short-circuits to a single-node Path of cost 0.
//
// Complexity: O(V·F + E) with the default List frontier (F = peak frontier
// size), O((V + E) log V) with WithHeapFrontier. Space: O(V + E).
func FindPath(g *pathgraph.Graph, start, goal pathgraph.NodeID, opts ...Option) (Path, error) {
	// 1) Resolve options.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return Path{}, ErrNilGraph
	}

	// 3) Resolve both identities to arena indices; unknown keys are an
	//    explicit outcome, not a fault.
	s, ok := g.Lookup(start)
	if !ok {
		return Path{}, fmt.Errorf("%w: start (%d,%d)", ErrNodeNotFound, start.Curve, start.Point)
	}
	t, ok := g.Lookup(goal)
	if !ok {
		return Path{}, fmt.Errorf("%w: goal (%d,%d)", ErrNodeNotFound, goal.Curve, goal.Point)
	}

	// 4) Identity query: the path is the node itself, cost 0.
	if s == t {
		return Path{Nodes: []pathgraph.NodeID{start}, Cost: 0}, nil
	}

	// 5) Dense per-node state sized to the arena. +Inf marks "no cost
	//    recorded yet", -1 marks "no predecessor".
	n := g.Len()
	r := &runner{
		g:        g,
		options:  cfg,
		cost:     make([]float64, n),
		cameFrom: make([]int, n),
		done:     make([]bool, n),
		frontier: cfg.newFrontier(),
	}
	for i := 0; i < n; i++ {
		r.cost[i] = math.Inf(1)
		r.cameFrom[i] = -1
	}

	// 6) Seed with the start node at cost 0 and run the main loop.
	r.cost[s] = 0
	r.frontier.Push(s, 0)
	if !r.process(t) {
		// Frontier exhausted before the goal was dequeued. This is the
		// explicit unreachable outcome; walking cameFrom from the goal here
		// would fabricate a one-node "path" that was never found.
		return Path{}, fmt.Errorf("%w: (%d,%d) to (%d,%d)",
			ErrNoPath, start.Curve, start.Point, goal.Curve, goal.Point)
	}

	// 7) Reconstruct goal → start via cameFrom, then reverse.
	return r.reconstruct(s, t), nil
}

// runner holds the mutable state of one FindPath execution. All per-node
// state is indexed by arena index.
type runner struct {
	g        *pathgraph.Graph
	options  options
	cost     []float64 // best known cost from start, +Inf if undiscovered
	cameFrom []int     // predecessor on the best known route, -1 if none
	done     []bool    // cost finalized; stale frontier entries are skipped
	frontier pqueue.Queue[int]
}

// process runs the Dijkstra main loop until the goal is finalized or the
// frontier is exhausted. Returns true when the goal was reached.
func (r *runner) process(goal int) bool {
	var u int
	var d float64
	var ok bool
	for r.frontier.Len() > 0 {
		// 1) Pop the cheapest frontier entry.
		u, d, ok = r.frontier.Pop()
		if !ok {
			break
		}

		// 2) Skip stale duplicates: a better route to u was already
		//    finalized after this entry was pushed.
		if r.done[u] {
			continue
		}

		// 3) Entries are popped in nondecreasing cost order, so once the
		//    minimum exceeds the cap nothing reachable remains under it.
		if d > r.options.maxCost {
			break
		}

		// 4) u's cost is now final.
		r.done[u] = true

		// 5) Dequeuing the goal ends the search; its cost cannot improve.
		if u == goal {
			return true
		}

		// 6) Relax every outgoing edge of u.
		r.relax(u)
	}

	return false
}

// relax attempts to improve the recorded cost of every target reachable by
// one edge from u, pushing a fresh frontier entry on each strict
// improvement (lazy decrease-key: superseded entries are left in place).
func (r *runner) relax(u int) {
	var newCost float64
	for _, e := range r.g.Edges(u) {
		newCost = r.cost[u] + e.Cost

		// Beyond the exploration cap: do not even record it.
		if newCost > r.options.maxCost {
			continue
		}

		// Strict improvement only; equal-cost routes keep the incumbent,
		// which makes tie-breaking deterministic.
		if newCost >= r.cost[e.To] {
			continue
		}

		r.cost[e.To] = newCost
		r.cameFrom[e.To] = u
		r.frontier.Push(e.To, newCost)
	}
}

// reconstruct walks cameFrom from the goal back to the start, then reverses
// the collected indices into a start → goal Path. Call only after process
// returned true; the chain is then guaranteed to terminate at start.
func (r *runner) reconstruct(start, goal int) Path {
	// 1) Collect arena indices goal → start.
	chain := make([]int, 0, 8)
	for at := goal; at != -1; at = r.cameFrom[at] {
		chain = append(chain, at)
		if at == start {
			break
		}
	}

	// 2) Reverse into creation order and resolve identities.
	nodes := make([]pathgraph.NodeID, len(chain))
	for i, idx := range chain {
		nodes[len(chain)-1-i] = r.g.ID(idx)
	}

	return Path{Nodes: nodes, Cost: r.cost[goal]}
}
