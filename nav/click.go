package nav

import (
	"github.com/katalvlaran/xword/puzzle"
)

// Click selects the clicked cell. Clicking the already-active cell
// toggles orientation in place instead of moving. Otherwise the current
// orientation is kept when it has a clue at the clicked cell; failing
// that, the selection switches to whichever orientation does; failing
// both (an isolated cell), the clue number clears. Clicks on blocked or
// out-of-bounds cells are a no-op.
func (e *Engine) Click(sel Selection, r, c int) Selection {
	if !e.g.IsWhite(r, c) {
		return sel
	}
	if sel.At(r, c) {
		return e.Toggle(sel)
	}

	next := Selection{Cell: puzzle.Coord{Row: r, Col: c}, HasCell: true, Dir: sel.Dir}
	if n := e.g.ClueAt(r, c, sel.Dir); n != 0 {
		next.Clue = n

		return next
	}
	other := sel.Dir.Opposite()
	if n := e.g.ClueAt(r, c, other); n != 0 {
		next.Dir, next.Clue = other, n

		return next
	}
	// Isolated cell: no clue in either orientation, keep Dir, Clue = 0.
	return next
}

// Toggle flips the orientation without moving the cell, recomputing the
// clue number for the new orientation from the word-start cell. When
// the new orientation has no word at the cell, the previous clue number
// is kept rather than cleared.
func (e *Engine) Toggle(sel Selection) Selection {
	if !sel.HasCell {
		return sel
	}
	next := sel
	next.Dir = sel.Dir.Opposite()
	if n := e.g.ClueAt(sel.Cell.Row, sel.Cell.Col, next.Dir); n != 0 {
		next.Clue = n
	}

	return next
}

// IsPartOfActiveClue reports whether (r, c) belongs to the word of the
// active clue, so renderers can highlight the active word without
// reimplementing boundary logic.
func (e *Engine) IsPartOfActiveClue(sel Selection, r, c int) bool {
	if !sel.HasCell || sel.Clue == 0 || !e.g.IsWhite(r, c) {
		return false
	}

	return e.g.ClueAt(r, c, sel.Dir) == sel.Clue
}
