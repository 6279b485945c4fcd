package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/solver"
)

// SolveSuite exercises the uniform-cost search under various scenarios.
type SolveSuite struct {
	suite.Suite
}

// state decodes a fixture literal or fails the suite.
func (s *SolveSuite) state(fx string) burrow.Burrow {
	b, err := burrow.FromString(fx)
	require.NoError(s.T(), err, "fixture %q", fx)

	return b
}

// TestSingleSettle verifies the cheapest single-move scenarios for three
// of the four categories.
func (s *SolveSuite) TestSingleSettle() {
	cost, err := solver.Solve(s.state(".A......BCDABCD"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), cost)

	cost, err = solver.Solve(s.state(".B.....A.CDABCD"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(40), cost)

	cost, err = solver.Solve(s.state(".C.....AB.DABCD"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(600), cost)
}

// TestNearGoal verifies the two-unit unwind: Bronze must vacate room 0
// before the misplaced Amber can come home.
func (s *SolveSuite) TestNearGoal() {
	cost, err := solver.Solve(s.state(".......BACDABCD"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(46), cost)
}

// TestSampleDepth2 verifies the full depth-2 scenario.
func (s *SolveSuite) TestSampleDepth2() {
	cost, err := solver.Solve(s.state(".......BCBDADCA"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(12521), cost)
}

// TestSampleDepth4 verifies the expanded scenario end to end: the same
// solver, unchanged, on the spliced deeper layout.
func (s *SolveSuite) TestSampleDepth4() {
	expanded, err := burrow.Expand(s.state(".......BCBDADCA"))
	require.NoError(s.T(), err)

	cost, err := solver.Solve(expanded)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(44169), cost)
}

// TestGoalIsFree verifies solving an already sorted state costs nothing.
func (s *SolveSuite) TestGoalIsFree() {
	for _, depth := range []int{2, 4} {
		goal, err := burrow.Goal(depth)
		require.NoError(s.T(), err)

		cost, err := solver.Solve(goal)
		require.NoError(s.T(), err)
		require.Zero(s.T(), cost, "depth %d", depth)
	}
}

// TestDeterministic verifies repeated invocations return the identical
// minimum cost.
func (s *SolveSuite) TestDeterministic() {
	start := s.state(".......BCBDADCA")
	first, err := solver.Solve(start)
	require.NoError(s.T(), err)
	for i := 0; i < 5; i++ {
		again, errAgain := solver.Solve(start)
		require.NoError(s.T(), errAgain)
		require.Equal(s.T(), first, again)
	}
}

// TestUnreachable verifies queue exhaustion surfaces as ErrNoPath, not a
// crash: with three Copper units no state can ever match the goal.
func (s *SolveSuite) TestUnreachable() {
	_, err := solver.Solve(s.state(".......ABCDABCC"))
	require.ErrorIs(s.T(), err, solver.ErrNoPath)
}

// TestBadStart verifies the zero Burrow is rejected as data, not a panic.
func (s *SolveSuite) TestBadStart() {
	_, err := solver.Solve(burrow.Burrow{})
	require.ErrorIs(s.T(), err, solver.ErrBadStart)
}

// TestCustomCosts verifies the cost table is configuration: doubling
// every per-step cost doubles the minimum.
func (s *SolveSuite) TestCustomCosts() {
	cost, err := solver.Solve(
		s.state(".......BCBDADCA"),
		solver.WithCosts(solver.CostTable{2, 20, 200, 2000}),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2*12521), cost)
}

// TestBadCostsPanic verifies invalid tables are rejected when the option
// is applied.
func (s *SolveSuite) TestBadCostsPanic() {
	start := s.state(".......ABCDABCD")
	require.Panics(s.T(), func() {
		_, _ = solver.Solve(start, solver.WithCosts(solver.CostTable{1, 10, 0, 1000}))
	})
}

// TestHeuristicAgrees verifies the A* upgrade returns the exact minima of
// the plain uniform-cost search on every fixed scenario.
func (s *SolveSuite) TestHeuristicAgrees() {
	h := solver.WithHeuristic(solver.MinCost(solver.DefaultCosts()))

	for fx, want := range map[string]int64{
		".......BACDABCD":         46,
		".......BCBDADCA":         12521,
		".......BCBDDCBADBACADCA": 44169,
	} {
		cost, err := solver.Solve(s.state(fx), h)
		require.NoError(s.T(), err, "fixture %q", fx)
		require.Equal(s.T(), want, cost, "fixture %q", fx)
	}
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
