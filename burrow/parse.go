package burrow

import (
	"fmt"
	"strings"
)

// ParseDiagram converts an ASCII-art burrow diagram into its initial
// state, e.g.
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The wall rows and the (always empty) hallway row are skipped; every
// category letter in the remaining rows becomes a room cell in reading
// order, which matches the row-major room storage. The hallway cells of
// the resulting state are all Empty.
//
// Returns ErrBadDiagram if the letters do not form RoomCount rooms of
// uniform depth, or if any category does not appear exactly depth times
// (unit conservation would be violated from the start otherwise).
func ParseDiagram(input string) (Burrow, error) {
	// 1) Collect room cells: walk every line after the wall + hallway rows
	//    and keep only category letters; walls and padding are ignored.
	lines := strings.Split(input, "\n")
	if len(lines) <= 2 {
		return Burrow{}, fmt.Errorf("%w: %d lines", ErrBadDiagram, len(lines))
	}
	cells := make([]Cell, HallwaySize, HallwaySize+4*RoomCount)
	for _, line := range lines[2:] {
		for _, r := range line {
			if r < 'A' || r > 'D' {
				continue
			}
			c, _ := CellOf(r)
			cells = append(cells, c)
		}
	}

	// 2) Validate the room block shape.
	rooms := len(cells) - HallwaySize
	if rooms == 0 || rooms%RoomCount != 0 {
		return Burrow{}, fmt.Errorf("%w: %d room cells", ErrBadDiagram, rooms)
	}
	depth := rooms / RoomCount
	if depth > MaxDepth {
		return Burrow{}, fmt.Errorf("%w: depth %d exceeds %d", ErrBadDiagram, depth, MaxDepth)
	}

	// 3) Validate unit conservation: exactly depth units of each category.
	var count [RoomCount + 1]int
	for _, c := range cells[HallwaySize:] {
		count[c]++
	}
	for c := Amber; c <= Desert; c++ {
		if count[c] != depth {
			return Burrow{}, fmt.Errorf("%w: category %s appears %d times, want %d",
				ErrBadDiagram, c, count[c], depth)
		}
	}

	return New(cells)
}
