// Package solver provides move generation and minimum-cost search for the
// burrow rearrangement puzzle.
//
// Overview:
//
//   - Moves enumerates every legal single-unit relocation of a burrow
//     state together with its incremental cost, encoding the puzzle's
//     physical rules: a single-file corridor with seven stopping cells,
//     rooms fillable and emptiable only from the top, no passing through
//     occupied cells, and settling permitted only into a room purged of
//     foreign occupants.
//   - Solve performs uniform-cost (Dijkstra) search over the implicit
//     graph these moves define, returning the minimum total cost to reach
//     the fully sorted goal state.
//   - MinCost provides an admissible straight-line heuristic that turns
//     the search into A* via WithHeuristic.
//
// When to use:
//
//   - Solve both puzzle scenarios: solve the parsed depth-2 state, expand
//     it with burrow.Expand, and solve again.
//   - Moves on its own for analyzing a position's legal fan-out.
//
// Key properties:
//
//   - The move graph is never materialized; successors are regenerated on
//     demand per popped state.
//   - Per-category step costs are configuration (WithCosts), not baked-in
//     constants; the canonical table is 1/10/100/1000.
//   - Each Solve invocation owns its heap and distance table and discards
//     them on return: calls are independent and referentially transparent.
//   - Unreachable goals surface as ErrNoPath, never as a panic.
//
// Performance and complexity:
//
//   - Time:  O((S + M) log S) over S reachable states and M generated
//     moves; the reachable space is a few thousand states even for the
//     depth-4 variant.
//   - Space: O(S + M) for the distance map and the lazy-decrease-key heap.
//
// Error handling (sentinel errors):
//
//   - ErrNoPath:   the queue was exhausted without popping the goal.
//   - ErrBadStart: the start value is not a valid burrow state.
//   - ErrBadCosts: a per-category step cost is not positive.
//
// See package burrow for the state representation itself.
package solver
