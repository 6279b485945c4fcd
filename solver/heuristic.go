package solver

import (
	"github.com/katalvlaran/amphipod/burrow"
)

// hallwayX maps each hallway stop to its geometric x coordinate in the
// full corridor (which has four unrepresented cells above the mouths).
// Room r's mouth sits at x = 2r+2.
var hallwayX = [burrow.HallwaySize]int64{0, 1, 3, 5, 7, 9, 10}

// MinCost returns an admissible Heuristic for the given cost table: the
// sum, over every unit not yet settled, of its category's step cost times
// the straight-line elementary steps remaining to its own room, ignoring
// all blocking. It never overestimates, so Solve with WithHeuristic(
// MinCost(costs)) returns the same minimum cost as plain uniform-cost
// search, usually after exploring fewer states.
func MinCost(costs CostTable) Heuristic {
	return func(b burrow.Burrow) int64 {
		var total int64
		depth := b.Depth()

		// Hallway units: walk to above the home room, then at least one
		// step down into it.
		for i := 0; i < burrow.HallwaySize; i++ {
			c := b.At(i)
			if c == burrow.Empty {
				continue
			}
			r := c.Room()
			dx := hallwayX[i] - mouthX(r)
			if dx < 0 {
				dx = -dx
			}
			total += costs[r] * (dx + 1)
		}

		// Room units: exiting row k costs k+1 steps to the mouth.
		for r := 0; r < burrow.RoomCount; r++ {
			for k := 0; k < depth; k++ {
				c := b.At(burrow.HallwaySize + k*burrow.RoomCount + r)
				if c == burrow.Empty {
					continue
				}
				home := c.Room()
				steps := int64(0)
				switch {
				case home != r:
					// Out to the mouth, across, and at least one step in.
					across := mouthX(r) - mouthX(home)
					if across < 0 {
						across = -across
					}
					steps = int64(k+1) + across + 1
				case !settled(b, r, burrow.HallwaySize+k*burrow.RoomCount+r):
					// Right room, but a foreigner below: out to the mouth,
					// to the nearest stop and back, and one step in again.
					steps = int64(k + 4)
				}
				total += costs[home] * steps
			}
		}

		return total
	}
}

// mouthX is the corridor x coordinate of room r's mouth.
func mouthX(r int) int64 { return int64(2*r + 2) }
