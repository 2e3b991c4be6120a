// Package xword is the pure navigation and letter-entry core of an
// embeddable crossword widget: everything that decides, after a
// keystroke, click or deletion, which cell is active, which clue is
// current, and when to auto-advance.
//
// 🚀 What is xword?
//
//	A deterministic, in-memory state-transition engine over a 2D grid:
//		• Grid topology: clue numbering, word boundaries, word membership
//		• Clue index: reading-order traversal with exhaustion signalling
//		• Word analysis: completeness and cyclic next-empty-cell lookup
//		• Navigation: in-word movement, arrow jumps through black cells,
//		  skip-if-complete clue traversal with cross-orientation wrap
//		• Letter entry: immutable state snapshots + declarative actions
//
// ✨ Why choose xword?
//
//   - Pure functions – no I/O, no rendering, no timers; hosts own all
//     side effects and subscribe to the core's outputs
//   - Null-as-no-op – navigation that finds no target leaves the state
//     untouched, never panics or errors at runtime
//   - Bounded everywhere – every call is O(rows×columns) worst case,
//     with visited-set guards on cyclic clue traversal
//
// Under the hood, everything is organized into five subpackages:
//
//	puzzle/ — grid layout, clue numbering, word boundaries, letters & overlays
//	clues/  — per-orientation clue enumeration and next/previous traversal
//	word/   — fill-state analysis of the word containing a cell
//	nav/    — the selection state machine for every navigation intent
//	entry/  — single-keystroke processing into snapshots + actions
//
// Quick ASCII example:
//
//	   1 2 3 # 4 .
//	   6 . . # 7 .
//	   8 . . . . .
//
//	typing the last blank of 1-across advances straight to the next
//	clue that still has empty cells, skipping finished answers.
//
// The loading, rendering and persistence layers are deliberately
// external: they feed a parsed grid in and apply the returned
// snapshots and actions.
package xword
