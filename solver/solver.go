// Package solver implements minimum-cost search over burrow states.
//
// Solve runs uniform-cost (Dijkstra) search over the implicit graph whose
// vertices are burrow states and whose edges are the legal moves produced
// by Moves. The graph is never materialized: successors are regenerated on
// demand for each state popped from the priority queue.
//
// Complexity:
//
//   - Time:  O((S + M) log S), where S is the number of reachable states
//     and M the number of generated moves. S is bounded by the distinct
//     arrangements of a fixed number of units over a fixed number of
//     cells — a few thousand for the deepest variant.
//   - Space: O(S + M) for the distance table and the heap under the
//     “lazy-decrease-key” strategy (duplicates pushed, stale entries
//     skipped on pop).
package solver

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/amphipod/burrow"
)

// Solve computes the minimum total cost to rearrange the start state into
// the fully sorted goal state for its depth. It accepts functional options
// to customize behavior (WithCosts, WithHeuristic).
//
// Returns:
//
//   - cost: the minimum total movement cost (0 if start is already sorted).
//   - err:  ErrBadStart or ErrBadCosts on invalid inputs, ErrNoPath if the
//     goal is unreachable. Unreachable is an inspectable result, not a
//     crash.
//
// Each call is independent and referentially transparent: the queue and
// distance table are local to the invocation and discarded on return.
func Solve(start burrow.Burrow, opts ...Option) (int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, c := range cfg.Costs {
		if c <= 0 {
			return 0, fmt.Errorf("%w: got %v", ErrBadCosts, cfg.Costs)
		}
	}

	// 2) Validate the start state and derive the goal for its depth.
	if start.Len() == 0 {
		return 0, ErrBadStart
	}
	goal, err := burrow.Goal(start.Depth())
	if err != nil {
		return 0, fmt.Errorf("%w: depth %d", ErrBadStart, start.Depth())
	}

	// 3) Initialize per-invocation state and run the main loop.
	r := &runner{
		costs: cfg.Costs,
		h:     cfg.Heuristic,
		goal:  goal,
		dist:  make(map[burrow.Key]int64, 1024),
		pq:    make(nodePQ, 0, 64),
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	costs CostTable            // Per-category step costs for move generation.
	h     Heuristic            // Optional A* lower bound; nil for plain Dijkstra.
	goal  burrow.Burrow        // Termination value for the popped state.
	dist  map[burrow.Key]int64 // Best known cost per packed state.
	pq    nodePQ               // Min-heap of *nodeItem, lazy decrease-key.
}

// init records the zero-cost start and pushes it onto the heap.
func (r *runner) init(start burrow.Burrow) {
	heap.Init(&r.pq)
	r.dist[start.Key()] = 0
	heap.Push(&r.pq, &nodeItem{state: start, cost: 0, prio: r.estimate(start, 0)})
}

// process repeatedly extracts the cheapest state and relaxes its moves.
//
// Loop termination:
//
//   - The goal state is popped: its cost is final and returned.
//   - The heap empties: the goal is unreachable, ErrNoPath.
func (r *runner) process() (int64, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority entry.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Popping the goal finalizes its minimum cost.
		if item.state == r.goal {
			return item.cost, nil
		}

		// 3) Skip stale entries: the same state may have been pushed again
		//    at a lower cost before this copy surfaced.
		if item.cost > r.dist[item.state.Key()] {
			continue
		}

		// 4) Relax every legal move out of this state.
		var next burrow.Burrow
		var candidate int64
		for _, mv := range Moves(item.state, r.costs) {
			next, candidate = mv.Next, item.cost+mv.Cost
			if best, seen := r.dist[next.Key()]; seen && candidate >= best {
				continue
			}
			r.dist[next.Key()] = candidate
			heap.Push(&r.pq, &nodeItem{
				state: next,
				cost:  candidate,
				prio:  r.estimate(next, candidate),
			})
		}
	}

	// Exhausted the reachable states without meeting the goal.
	return 0, ErrNoPath
}

// estimate computes the heap priority for a state reached at the given
// cost: the cost itself for uniform-cost search, cost plus the heuristic
// lower bound for A*.
func (r *runner) estimate(b burrow.Burrow, cost int64) int64 {
	if r.h == nil {
		return cost
	}

	return cost + r.h(b)
}

// nodeItem is one heap entry: a state, the cost it was reached at, and
// the priority it is ordered by (== cost unless a heuristic is set).
type nodeItem struct {
	state burrow.Burrow
	cost  int64
	prio  int64
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by prio
// ascending. Lazy decrease-key: improved states are pushed again and the
// outdated entries are skipped when popped. Ordering among equal
// priorities is unspecified; it affects only which of several equal-cost
// paths is explored first, never the returned minimum.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller prio → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].prio < pq[j].prio }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
