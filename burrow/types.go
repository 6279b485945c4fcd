// Package burrow defines core types, topology constants, and sentinel errors
// for the burrow subpackage of github.com/katalvlaran/amphipod.
package burrow

import (
	"errors"
)

// Sentinel errors for burrow construction and transforms.
var (
	// ErrBadCell indicates a cell value or character outside the valid alphabet.
	ErrBadCell = errors.New("burrow: cell value outside the valid alphabet")
	// ErrBadLength indicates a cell count that does not describe a hallway plus
	// four rooms of uniform depth, or exceeds the packed representation.
	ErrBadLength = errors.New("burrow: cell count does not fit the burrow topology")
	// ErrBadDiagram indicates an ASCII diagram whose room block is malformed.
	ErrBadDiagram = errors.New("burrow: malformed burrow diagram")
	// ErrDepth indicates a room depth outside the supported range.
	ErrDepth = errors.New("burrow: room depth out of range")
)

// Topology constants. The hallway has seven distinguishable stopping
// positions; the four cells directly above a room mouth cannot be stopped
// at and are therefore not represented. Rooms are stored row-major after
// the hallway: cell HallwaySize + k*RoomCount + r is row k of room r, so
// walking down a room means stepping in increments of RoomCount.
const (
	// HallwaySize is the number of hallway cells a unit may stop at.
	HallwaySize = 7
	// RoomCount is the number of side-rooms (one per unit category).
	RoomCount = 4
	// MaxDepth is the deepest room the 128-bit packed form can hold:
	// (128/cellWidth - HallwaySize) / RoomCount.
	MaxDepth = 8
)

// Cell is the content of a single burrow position: Empty or one of the
// four unit categories. Values fit in cellWidth bits.
type Cell uint8

const (
	// Empty marks an unoccupied cell.
	Empty Cell = iota
	// Amber is the category that belongs in room 0 (step cost 1).
	Amber
	// Bronze is the category that belongs in room 1 (step cost 10).
	Bronze
	// Copper is the category that belongs in room 2 (step cost 100).
	Copper
	// Desert is the category that belongs in room 3 (step cost 1000).
	Desert
)

const (
	// cellWidth is the number of bits each cell occupies in the packed form.
	cellWidth = 3
	// cellMask masks a single cell field.
	cellMask = 1<<cellWidth - 1
)

// cellRunes is the fixed render alphabet, indexed by Cell.
const cellRunes = ".ABCD"

// String renders the cell as its single-character alphabet form.
func (c Cell) String() string {
	if int(c) < len(cellRunes) {
		return cellRunes[c : c+1]
	}

	return "?"
}

// CellOf maps a character of the render alphabet back to its Cell.
// Returns ErrBadCell for any character outside ".ABCD".
func CellOf(r rune) (Cell, error) {
	switch r {
	case '.':
		return Empty, nil
	case 'A':
		return Amber, nil
	case 'B':
		return Bronze, nil
	case 'C':
		return Copper, nil
	case 'D':
		return Desert, nil
	default:
		return Empty, ErrBadCell
	}
}

// Room returns the index of the side-room this category belongs in.
// Calling Room on Empty is a programmer error and panics.
func (c Cell) Room() int {
	if c == Empty || c > Desert {
		panic("burrow: Room called on a non-category cell")
	}

	return int(c) - 1
}
