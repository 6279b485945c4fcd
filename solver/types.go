// Package solver defines core types and configuration options for the
// burrow rearrangement search.
//
// Solve computes the minimum total movement cost to rearrange a burrow
// from a start state into the fully sorted goal state, using uniform-cost
// (Dijkstra) search over the implicit graph of legal single-unit moves.
//
// Options:
//
//	– WithCosts:     per-category step costs (default 1, 10, 100, 1000).
//	– WithHeuristic: optional admissible lower bound, upgrading the search
//	                 to A*. MinCost provides one; default is nil (plain
//	                 uniform-cost search).
//
// Errors (sentinel):
//
//	– ErrNoPath   if the goal is unreachable from the start state.
//	– ErrBadStart if the start value is not a valid burrow state.
//	– ErrBadCosts if any per-category step cost is not positive.
package solver

import (
	"errors"

	"github.com/katalvlaran/amphipod/burrow"
)

// Sentinel errors returned by the solver.
var (
	// ErrNoPath indicates the queue was exhausted without reaching the goal.
	// Unreachability is surfaced as data, not a panic, so callers and tests
	// can assert on pathological inputs.
	ErrNoPath = errors.New("solver: no path from start to goal")

	// ErrBadStart indicates the start value is not a valid burrow state
	// (typically the zero Burrow).
	ErrBadStart = errors.New("solver: start state is not a valid burrow")

	// ErrBadCosts indicates a non-positive per-category step cost.
	ErrBadCosts = errors.New("solver: step costs must be positive")
)

// CostTable holds the per-step movement cost of each unit category,
// indexed by room (Amber=0 .. Desert=3).
type CostTable [burrow.RoomCount]int64

// Heuristic estimates a lower bound on the remaining cost from a state to
// the goal. It must never overestimate, or Solve may return a non-minimal
// cost. The zero estimate is always admissible.
type Heuristic func(burrow.Burrow) int64

// Options configures the behavior of Solve.
//
// Costs     – per-category step costs; every entry must be positive.
// Heuristic – optional admissible estimate; nil means plain Dijkstra.
type Options struct {
	Costs     CostTable // Per-category step cost, indexed by room
	Heuristic Heuristic // Optional A* lower bound (nil = uniform-cost)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithCosts replaces the per-category step cost table. All entries must be
// positive; non-positive costs would break Dijkstra's non-negative-weight
// requirement, so invalid tables panic at configuration time.
func WithCosts(costs CostTable) Option {
	return func(o *Options) {
		for _, c := range costs {
			if c <= 0 {
				panic(ErrBadCosts.Error())
			}
		}
		o.Costs = costs
	}
}

// WithHeuristic sets an admissible lower-bound estimate, turning the
// uniform-cost search into A*. See MinCost for the provided estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// DefaultCosts returns the canonical cost table: categories cost
// 1, 10, 100 and 1000 per elementary step, in room order.
func DefaultCosts() CostTable {
	return CostTable{1, 10, 100, 1000}
}

// DefaultOptions returns an Options struct initialized with the canonical
// cost table and no heuristic. Use this as a starting point for further
// functional-options overrides.
func DefaultOptions() Options {
	return Options{
		Costs:     DefaultCosts(),
		Heuristic: nil,
	}
}
