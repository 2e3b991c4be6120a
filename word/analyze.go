package word

import (
	"github.com/katalvlaran/xword/puzzle"
)

// Analysis is the fill-state of one word relative to a queried cell.
type Analysis struct {
	// Cells is the word's cell list in word order.
	Cells []puzzle.Coord
	// EmptyCount is the number of unfilled cells in the word.
	EmptyCount int
	// Complete is true when EmptyCount == 0.
	Complete bool
	// NextEmpty is the cyclic next empty cell relative to the queried
	// cell: the first empty strictly after it in word order, else the
	// first empty strictly before it. Meaningful only when HasNextEmpty.
	NextEmpty    puzzle.Coord
	HasNextEmpty bool
}

// Analyze inspects the word containing (r, c) along dir against the
// current letters. Precondition: (r, c) is in-bounds and white.
// Complexity: O(L).
func Analyze(g *puzzle.Grid, letters puzzle.Letters, r, c int, dir puzzle.Orientation) Analysis {
	a := Analysis{Cells: g.WordCells(r, c, dir)}

	at := -1 // index of the queried cell within the word
	for i, cell := range a.Cells {
		if cell.Row == r && cell.Col == c {
			at = i
		}
		if letters.Empty(cell.Row, cell.Col) {
			a.EmptyCount++
		}
	}
	a.Complete = a.EmptyCount == 0
	if a.Complete {
		return a
	}

	// First empty strictly after the queried cell.
	for i := at + 1; i < len(a.Cells); i++ {
		if letters.Empty(a.Cells[i].Row, a.Cells[i].Col) {
			a.NextEmpty, a.HasNextEmpty = a.Cells[i], true

			return a
		}
	}
	// Cyclic fallback: first empty strictly before it.
	for i := 0; i < at; i++ {
		if letters.Empty(a.Cells[i].Row, a.Cells[i].Col) {
			a.NextEmpty, a.HasNextEmpty = a.Cells[i], true

			return a
		}
	}

	return a
}

// AnswerComplete reports whether the word of clue n along dir is fully
// filled. Returns true for unknown clue numbers, so skip-ahead searches
// pass over them.
func AnswerComplete(g *puzzle.Grid, letters puzzle.Letters, n int, dir puzzle.Orientation) bool {
	start, ok := g.ClueStart(n)
	if !ok {
		return true
	}
	for _, cell := range g.WordCells(start.Row, start.Col, dir) {
		if letters.Empty(cell.Row, cell.Col) {
			return false
		}
	}

	return true
}

// FirstEmptyInClue returns the first empty cell of clue n's word along
// dir, scanning from its start; the start cell itself when the word is
// fully filled. The ok result is false only for unknown clue numbers.
// Callers use the returned cell as a navigation target regardless of
// completeness.
func FirstEmptyInClue(g *puzzle.Grid, letters puzzle.Letters, n int, dir puzzle.Orientation) (puzzle.Coord, bool) {
	start, ok := g.ClueStart(n)
	if !ok {
		return puzzle.Coord{}, false
	}
	for _, cell := range g.WordCells(start.Row, start.Col, dir) {
		if letters.Empty(cell.Row, cell.Col) {
			return cell, true
		}
	}

	return start, true
}

// LastCell returns the final cell of clue n's word along dir. The ok
// result is false for unknown clue numbers.
func LastCell(g *puzzle.Grid, n int, dir puzzle.Orientation) (puzzle.Coord, bool) {
	start, ok := g.ClueStart(n)
	if !ok {
		return puzzle.Coord{}, false
	}
	cells := g.WordCells(start.Row, start.Col, dir)

	return cells[len(cells)-1], true
}
