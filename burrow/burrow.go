package burrow

import (
	"fmt"
	"strings"
)

// Burrow is an immutable burrow state: a fixed-length sequence of cells
// packed into a 128-bit field, cellWidth bits per cell, most significant
// cell first. The first HallwaySize cells are the hallway stops; the rest
// are the rooms, row-major (see the topology comment in types.go).
//
// Burrow is a comparable value type: "mutators" such as Swap return a new
// value and never alias storage with their receiver. The zero Burrow has
// no cells and is not a valid state.
type Burrow struct {
	// length is the number of cells: HallwaySize + RoomCount*depth.
	length int
	// hi holds packed bits 64..127, lo holds bits 0..63. The cell at
	// position p occupies bits [3*(length-p-1), 3*(length-p-1)+3).
	hi, lo uint64
}

// Key is the packed form of a Burrow, usable as a map key in distance
// tables. Two burrows of equal length are equal iff their Keys are equal.
type Key [2]uint64

// New encodes a cell sequence into a Burrow. The sequence must describe a
// full topology (HallwaySize hallway cells plus RoomCount rooms of uniform
// depth 1..MaxDepth) and every cell must be Empty or a category; otherwise
// ErrBadLength or ErrBadCell is returned.
func New(cells []Cell) (Burrow, error) {
	// 1) Validate the overall shape before touching any bits.
	if err := checkLength(len(cells)); err != nil {
		return Burrow{}, err
	}

	// 2) Pack cells most-significant-first by shifting each one in from
	//    the right, exactly mirroring the decode order of Cells.
	b := Burrow{length: len(cells)}
	var c Cell
	for i, cc := range cells {
		c = cc
		if c > Desert {
			return Burrow{}, fmt.Errorf("%w: cell %d holds %d", ErrBadCell, i, c)
		}
		b.hi = b.hi<<cellWidth | b.lo>>(64-cellWidth)
		b.lo = b.lo<<cellWidth | uint64(c)
	}

	return b, nil
}

// FromString decodes a state literal such as ".......BCBDADCA" (hallway
// first, then room rows top to bottom). This is the fixture format used
// throughout the test suite. Returns ErrBadCell on any character outside
// the alphabet, ErrBadLength if the literal does not cover a full topology.
func FromString(s string) (Burrow, error) {
	cells := make([]Cell, 0, len(s))
	for i, r := range s {
		c, err := CellOf(r)
		if err != nil {
			return Burrow{}, fmt.Errorf("%w: character %q at offset %d", ErrBadCell, r, i)
		}
		cells = append(cells, c)
	}

	return New(cells)
}

// Len returns the total number of cells.
func (b Burrow) Len() int { return b.length }

// Depth returns the room depth of the topology.
func (b Burrow) Depth() int { return (b.length - HallwaySize) / RoomCount }

// Key returns the packed field as a comparable map key.
func (b Burrow) Key() Key { return Key{b.hi, b.lo} }

// offset returns the bit offset of position pos within the packed field.
func (b Burrow) offset(pos int) uint {
	return uint(cellWidth * (b.length - pos - 1))
}

// At returns the cell at position pos. Positions outside the topology are
// a precondition violation and panic rather than error: every caller owns
// a validated topology and never computes an out-of-range index.
func (b Burrow) At(pos int) Cell {
	if pos < 0 || pos >= b.length {
		panic(fmt.Sprintf("burrow: position %d out of range [0,%d)", pos, b.length))
	}
	off := b.offset(pos)
	switch {
	case off >= 64:
		// Field lives entirely in the high word.
		return Cell(b.hi >> (off - 64) & cellMask)
	case off > 64-cellWidth:
		// Field straddles the word boundary.
		return Cell((b.lo>>off | b.hi<<(64-off)) & cellMask)
	default:
		return Cell(b.lo >> off & cellMask)
	}
}

// set returns a copy with the cell at pos replaced by c. Internal only:
// public state transitions go through Swap so that unit conservation is
// preserved by construction.
func (b Burrow) set(pos int, c Cell) Burrow {
	off := b.offset(pos)
	v := uint64(c)
	switch {
	case off >= 64:
		sh := off - 64
		b.hi = b.hi&^(cellMask<<sh) | v<<sh
	case off > 64-cellWidth:
		// Low word keeps the bottom bits of the field, high word the rest;
		// the shifted masks discard whatever falls off either end.
		b.lo = b.lo&^(cellMask<<off) | v<<off
		b.hi = b.hi&^(cellMask>>(64-off)) | v>>(64-off)
	default:
		b.lo = b.lo&^(cellMask<<off) | v<<off
	}

	return b
}

// Swap returns a new Burrow with the cells at positions a and b exchanged.
// This is the sole state-transition primitive: a move is an exchange of an
// occupied cell with an empty one. Swap itself does not re-validate move
// legality; that is the move generator's contract.
func (b Burrow) Swap(a, pos int) Burrow {
	va, vb := b.At(a), b.At(pos)

	return b.set(a, vb).set(pos, va)
}

// Cells decodes the packed field back into its cell sequence.
// Cells(New(cs)) == cs for every valid sequence cs.
func (b Burrow) Cells() []Cell {
	cells := make([]Cell, b.length)
	for i := range cells {
		cells[i] = b.At(i)
	}

	return cells
}

// String renders the state in the fixture alphabet, one character per
// cell, e.g. ".......BCBDADCA". FromString(b.String()) == b.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for i := 0; i < b.length; i++ {
		sb.WriteString(b.At(i).String())
	}

	return sb.String()
}

// checkLength validates that n cells describe a hallway plus RoomCount
// rooms of uniform depth within the packed representation's capacity.
func checkLength(n int) error {
	if n <= HallwaySize || (n-HallwaySize)%RoomCount != 0 {
		return fmt.Errorf("%w: %d cells", ErrBadLength, n)
	}
	if depth := (n - HallwaySize) / RoomCount; depth > MaxDepth {
		return fmt.Errorf("%w: depth %d exceeds %d", ErrDepth, depth, MaxDepth)
	}

	return nil
}
