// Package clues enumerates clue numbers per orientation in canonical
// reading order and supports next/previous traversal over them.
//
// What:
//
//   - Index is built once from a puzzle.Grid and caches, per
//     orientation, the ascending clue-number list the grid's numbering
//     induces.
//   - Next and Prev walk the list with the exhaustion contract used by
//     the navigation engine: a zero current number means "none yet"
//     (Next yields the first clue, Prev the last); a false ok result
//     means the orientation is exhausted, and the caller decides
//     whether to wrap into the other orientation.
//
// Why:
//
//   - Encoding "fell off the end" as (0, false) instead of wrapping
//     internally lets the engine implement cross-orientation wrap
//     without special cases.
//
// Complexity:
//
//   - New: O(R×C). Numbers: O(1). Next/Prev: O(log N) via binary search.
package clues
