// Package amphipod solves the burrow rearrangement puzzle: a linear
// hallway with seven stopping positions and four vertical side-rooms
// of configurable depth, populated by movable units of four categories
// with exponentially scaled per-step movement costs.
//
// 🚀 What is amphipod?
//
//	A small, focused library that brings together:
//		• Burrow state codec: 3-bit-per-cell packed, immutable value type
//		• Goal builder: the canonical fully-sorted state for any depth
//		• Move generator: every legal single-unit relocation with its cost
//		• Uniform-cost search: lazy-decrease-key min-heap Dijkstra over the
//		  implicit move graph, with an optional admissible A* heuristic
//		• Layout expansion: textual splice producing the deeper variant
//
// ✨ Why choose amphipod?
//
//   - Minimal API, clear, intuitive naming
//   - Immutable value semantics – states are never shared or aliased
//   - Pure Go – no cgo, no hidden deps
//   - Configurable – per-category cost tables and heuristics via options
//
// Under the hood, everything is organized under two subpackages:
//
//	burrow/ — packed state, parsing, rendering, goal & expansion transforms
//	solver/ — move generation and minimum-cost search over burrow states
//
// Quick ASCII example:
//
//	    #############
//	    #...........#
//	    ###B#C#B#D###
//	      #A#D#C#A#
//	      #########
//
//	parses to the state ".......BCBDADCA", which solves for cost 12521.
//
// Dive into the examples/ directory for an end-to-end walkthrough of
// both puzzle scenarios.
//
//	go get github.com/katalvlaran/amphipod
package amphipod
