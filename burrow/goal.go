package burrow

// Goal constructs the canonical fully-sorted state for the given room
// depth: an empty hallway and each room holding exactly depth units of
// its own category. It is the termination value compared against by the
// search. Returns ErrDepth for depths outside 1..MaxDepth.
func Goal(depth int) (Burrow, error) {
	if depth < 1 || depth > MaxDepth {
		return Burrow{}, ErrDepth
	}

	// Hallway empty, then one ABCD row per depth level (rooms are stored
	// row-major, and all cells of a room share one category anyway).
	cells := make([]Cell, HallwaySize, HallwaySize+RoomCount*depth)
	for k := 0; k < depth; k++ {
		cells = append(cells, Amber, Bronze, Copper, Desert)
	}

	return New(cells)
}
