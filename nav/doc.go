// Package nav computes the next active selection of a crossword in
// response to a navigation intent: cell movement, arrow movement,
// clue-to-clue jumps, clicks, and orientation toggles.
//
// What:
//
//   - Engine is built once per grid and precomputes the clue index.
//     Every intent is a pure function of (current selection, intent):
//     the engine keeps no state of its own beyond the grid.
//   - NextClue / PrevClue implement skip-if-complete traversal: they
//     visit clue numbers in reading order, skipping fully filled
//     answers, wrap into the other orientation when one is exhausted,
//     and fall back to plain cyclic traversal once every answer is
//     filled. A visited set bounds each search at the clue count, so
//     the walk terminates on every input.
//   - NextCellInWord / PrevCellInWord stop at word boundaries;
//     NextWhiteCell steps through blocked cells in a screen direction
//     and stops only at the grid edge. Arrow keys traverse the whole
//     grid, word movement does not.
//
// Why:
//
//   - Grid view, virtual keyboard and clue list all need the same
//     transition rules; one engine keeps them identical.
//
// Failure policy: intents that find no target return ok=false (or the
// unchanged selection) and never an error; callers treat that as a
// no-op, staying in place.
//
// Complexity: cell intents are O(1); clue intents are O(R×C) worst
// case, bounded by the visited set.
package nav
