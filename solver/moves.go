package solver

import (
	"github.com/katalvlaran/amphipod/burrow"
)

// Move is one complete legal relocation of a single unit: the state after
// the move and its incremental cost. Moves are never stored between
// states; they are regenerated on demand for each state popped by the
// search (the implicit-graph pattern).
type Move struct {
	// Cost is the per-category step cost times the elementary steps
	// traveled: one per hallway cell crossed (end cells count 1, cells
	// beside a room mouth count 2, since passing a mouth is geometrically
	// longer), one per room row entered or exited, plus one for crossing
	// the mouth threshold itself.
	Cost int64
	// Next is the state with the relocation applied.
	Next burrow.Burrow
}

// Moves enumerates every legal single-unit relocation from state b under
// the given cost table. Two passes mirror the two legality rules:
//
//  1. Hallway → room (settling): a unit may enter only its own category's
//     room, only through an unobstructed stretch of hallway, and only if
//     the room holds no foreign occupant; it then drops to the deepest
//     empty cell.
//  2. Room → hallway (leaving): the top unit of a room's occupied stack
//     may exit and stop at any reachable empty hallway cell to either
//     side. Rooms whose occupants already all match their category are
//     settled and generate no exits.
//
// Relocations expose only legal stopping cells: a single Move may span
// several hallway cells.
func Moves(b burrow.Burrow, costs CostTable) []Move {
	// The depth-2 sample state fans out to 28 successors; start there.
	out := make([]Move, 0, 28)
	length := b.Len()

	// --- Pass 1: hallway units settling into their rooms. ---
hallway:
	for i := 0; i < burrow.HallwaySize; i++ {
		c := b.At(i)
		if c == burrow.Empty {
			continue
		}
		r := c.Room()

		// 1) Head for the hallway cell adjacent to the room's mouth:
		//    cell r+1 approaching from the left, r+2 from the right.
		step, target := 1, r+1
		if i > r+1 {
			step, target = -1, r+2
		}

		// 2) Walk there, accumulating elementary steps. The starting 1 is
		//    the mouth threshold crossed when entering the room later.
		//    End cells cost 1 to leave, mouth-adjacent cells 2. Any
		//    occupied cell on the way blocks this unit entirely.
		dist := int64(1)
		for h := i; h != target; {
			if h == 0 || h == burrow.HallwaySize-1 {
				dist++
			} else {
				dist += 2
			}
			h += step
			if b.At(h) != burrow.Empty {
				continue hallway
			}
		}

		// 3) Descend the room, remembering the deepest empty cell. Any
		//    foreign occupant means the room is not yet purged and the
		//    unit may not enter.
		final := -1
		for pos := burrow.HallwaySize + r; pos < length; pos += burrow.RoomCount {
			switch v := b.At(pos); {
			case v == burrow.Empty:
				final = pos
				dist++
			case v != c:
				continue hallway
			}
		}
		if final < 0 {
			// Room already full of its own kind; nowhere to settle.
			continue
		}

		out = append(out, Move{Cost: costs[r] * dist, Next: b.Swap(i, final)})
	}

	// --- Pass 2: top-of-stack room units leaving for the hallway. ---
	for r := 0; r < burrow.RoomCount; r++ {
		// 1) Find the top occupant. Exiting row 0 costs 2 elementary
		//    steps (mouth threshold plus the unrepresented cell above),
		//    each deeper row one more.
		pos, dist := burrow.HallwaySize+r, int64(2)
		for ; pos < length; pos, dist = pos+burrow.RoomCount, dist+1 {
			c := b.At(pos)
			if c == burrow.Empty {
				continue
			}

			// 2) A stack that already matches its room top to bottom is
			//    settled; no legal sequence ever benefits from unpacking it.
			if settled(b, r, pos) {
				break
			}
			cost := costs[c.Room()]

			// 3) Scan leftwards from the mouth-adjacent cell, emitting a
			//    Move per reachable empty stop. The first occupied cell
			//    (or the hallway end) stops the scan.
			for lp, ld := r+1, int64(0); b.At(lp) == burrow.Empty; {
				out = append(out, Move{Cost: cost * (dist + ld), Next: b.Swap(pos, lp)})
				if lp == 0 {
					break
				}
				lp--
				if lp == 0 {
					ld++
				} else {
					ld += 2
				}
			}

			// 4) Same scan rightwards.
			for rp, rd := r+2, int64(0); rp < burrow.HallwaySize && b.At(rp) == burrow.Empty; {
				out = append(out, Move{Cost: cost * (dist + rd), Next: b.Swap(pos, rp)})
				rp++
				if rp == burrow.HallwaySize-1 {
					rd++
				} else {
					rd += 2
				}
			}

			// Only the top occupant of a room can move.
			break
		}
	}

	return out
}

// settled reports whether every occupant of room r from cell top down to
// the bottom belongs to that room. Such a stack never needs to move again.
func settled(b burrow.Burrow, r, top int) bool {
	home := burrow.Cell(r + 1)
	for pos := top; pos < b.Len(); pos += burrow.RoomCount {
		if b.At(pos) != home {
			return false
		}
	}

	return true
}
