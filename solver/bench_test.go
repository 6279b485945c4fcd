package solver_test

import (
	"testing"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/solver"
)

// BenchmarkMoves measures the move generator fan-out on the depth-2
// sample start state (28 successors).
func BenchmarkMoves(b *testing.B) {
	start, err := burrow.FromString(".......BCBDADCA")
	if err != nil {
		b.Fatalf("setup FromString failed: %v", err)
	}
	costs := solver.DefaultCosts()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solver.Moves(start, costs)
	}
}

// BenchmarkSolve_Depth2 measures the full uniform-cost search on the
// depth-2 scenario (minimum cost 12521).
func BenchmarkSolve_Depth2(b *testing.B) {
	start, err := burrow.FromString(".......BCBDADCA")
	if err != nil {
		b.Fatalf("setup FromString failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = solver.Solve(start); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Depth4 measures the expanded scenario, with and without
// the admissible heuristic.
func BenchmarkSolve_Depth4(b *testing.B) {
	small, err := burrow.FromString(".......BCBDADCA")
	if err != nil {
		b.Fatalf("setup FromString failed: %v", err)
	}
	start, err := burrow.Expand(small)
	if err != nil {
		b.Fatalf("setup Expand failed: %v", err)
	}

	b.Run("dijkstra", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := solver.Solve(start); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("astar", func(b *testing.B) {
		h := solver.WithHeuristic(solver.MinCost(solver.DefaultCosts()))
		for i := 0; i < b.N; i++ {
			if _, err := solver.Solve(start, h); err != nil {
				b.Fatal(err)
			}
		}
	})
}
