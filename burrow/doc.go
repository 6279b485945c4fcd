// Package burrow models the puzzle's burrow as a compact immutable state,
// providing the codec, goal builder, diagram parsing, and the layout
// expansion transform.
//
// What:
//
//   - Burrow packs a hallway of 7 stops plus 4 rooms of uniform depth into
//     a 128-bit field, 3 bits per cell, most significant cell first.
//   - At / Swap expose read-by-position and the atomic two-cell exchange
//     that the move generator uses as its sole transition primitive.
//   - FromString / String round-trip the ".ABCD" fixture alphabet.
//   - Goal builds the canonical fully-sorted state for a depth.
//   - ParseDiagram turns an ASCII-art diagram into the initial state.
//   - Expand splices the fixed hidden rows into a depth-2 state to produce
//     the depth-4 scenario.
//
// Why:
//
//   - The search enqueues and compares many thousands of states; a packed
//     comparable value type keeps them cheap to copy, hash, and compare.
//   - Immutability by construction: every "mutation" returns a new value,
//     so no search node ever aliases another's storage.
//
// Complexity:
//
//   - At / Swap: O(1).
//   - New / Cells / String / FromString: O(n) over the cell count.
//
// Errors:
//
//   - ErrBadCell: cell value or character outside the ".ABCD" alphabet.
//   - ErrBadLength: cell count not of the form 7 + 4·depth.
//   - ErrBadDiagram: diagram room block malformed or unbalanced.
//   - ErrDepth: depth outside 1..MaxDepth.
//
// Out-of-range position access is a precondition violation and panics;
// all callers operate on a validated, fixed topology.
package burrow
