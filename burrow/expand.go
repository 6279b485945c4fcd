package burrow

import (
	"fmt"
)

// expandInsert is the fixed block of two room rows hidden behind the fold
// of the original diagram; splicing it under the top room row turns the
// depth-2 scenario into the depth-4 one.
const expandInsert = "DCBADBAC"

// expandOffset is where the block is spliced into the rendered state:
// right after the hallway and the top room row.
const expandOffset = HallwaySize + RoomCount

// Expand produces the deeper-room variant of a depth-2 state by splicing
// the fixed extra rows into its textual form and re-parsing. It is a pure
// data transform with no search semantics; both scenarios reuse the same
// solver unchanged. Returns ErrDepth if b is not a depth-2 state.
func Expand(b Burrow) (Burrow, error) {
	if b.Depth() != 2 {
		return Burrow{}, fmt.Errorf("%w: expansion expects depth 2, got %d", ErrDepth, b.Depth())
	}
	s := b.String()

	return FromString(s[:expandOffset] + expandInsert + s[expandOffset:])
}
