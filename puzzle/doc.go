// Package puzzle provides the immutable data model of a crossword grid
// and the pure topology queries everything else is built on.
//
// What:
//
//   - Grid wraps a rectangular blocked/white cell layout; it is deep-copied
//     on construction and never mutated afterwards.
//   - Clue numbers are derived from the layout alone, once, at construction:
//     a cell is numbered iff it starts a horizontal or vertical word of
//     length ≥ 2, numbered 1-based in row-major reading order.
//   - Word-boundary queries: WordStart, IsWordStart, IsWordEnd, WordCells,
//     ClueAt.
//   - Letters holds the player's entries cell-by-cell; Solution holds the
//     correct letters; Mark and reveal overlays carry per-cell check state.
//
// Why:
//
//   - Navigation, analysis and letter entry all need the same structural
//     facts about the grid; computing them in one place keeps the higher
//     layers free of boundary arithmetic.
//
// Complexity:
//
//   - New / FromStrings: O(R×C) time and memory (numbering included).
//   - All word-boundary queries: O(L) where L is the word length.
//   - ClueAt, Number, InBounds: O(1) beyond the word-start walk.
//
// Errors:
//
//   - ErrEmptyGrid: the layout has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoWhiteCell: every cell is blocked.
//   - ErrShapeMismatch: a letters/solution matrix does not match the grid.
//
// Topology queries assume in-bounds white coordinates; that is a caller
// contract, not a recoverable runtime condition.
package puzzle
