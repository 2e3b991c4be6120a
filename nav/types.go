package nav

import (
	"github.com/katalvlaran/xword/puzzle"
)

// Selection is the active (cell, clue, orientation) triple. The zero
// value means "nothing selected yet".
type Selection struct {
	// Cell is the focused cell; meaningful only when HasCell is true.
	Cell    puzzle.Coord
	HasCell bool
	// Clue is the clue number of the word containing Cell along Dir,
	// 0 when no clue applies.
	Clue int
	// Dir is the active orientation.
	Dir puzzle.Orientation
}

// At reports whether the selection sits on (r, c).
func (s Selection) At(r, c int) bool {
	return s.HasCell && s.Cell.Row == r && s.Cell.Col == c
}

// Direction is a screen direction for arrow-key movement.
type Direction uint8

const (
	// Left moves toward smaller columns.
	Left Direction = iota
	// Right moves toward larger columns.
	Right
	// Up moves toward smaller rows.
	Up
	// Down moves toward larger rows.
	Down
)

// offset returns the unit row/column offset of a screen direction.
func (d Direction) offset() (dr, dc int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default:
		return 1, 0
	}
}
