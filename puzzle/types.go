// Package puzzle defines the core types shared by the crossword packages.
package puzzle

// Orientation selects the axis a word runs along.
type Orientation uint8

const (
	// Across runs left to right within a row.
	Across Orientation = iota
	// Down runs top to bottom within a column.
	Down
)

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Across {
		return Down
	}

	return Across
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Across {
		return "across"
	}

	return "down"
}

// Coord addresses a single cell as (Row, Col), zero-based.
type Coord struct {
	Row, Col int
}

// Mark is the per-cell validation state set by a "check" action.
type Mark uint8

const (
	// Unchecked means the cell has not been validated since its last edit.
	Unchecked Mark = iota
	// Correct means the cell was validated against the solution and matched.
	// Correct cells are locked against further edits.
	Correct
	// Incorrect means the cell was validated and did not match.
	// Incorrect cells remain editable.
	Incorrect
)

// ClueTexts maps a clue number to its clue text for one orientation.
type ClueTexts map[int]string

// Letters holds the player's entries, one single-character string per
// cell, empty string for unfilled. Entries are meaningful only on white
// cells.
type Letters [][]string

// NewLetters returns an all-empty letters matrix of the given shape.
func NewLetters(rows, cols int) Letters {
	ls := make(Letters, rows)
	for r := range ls {
		ls[r] = make([]string, cols)
	}

	return ls
}

// Clone returns a deep copy, so callers can snapshot state between edits.
func (ls Letters) Clone() Letters {
	cp := make(Letters, len(ls))
	for r, row := range ls {
		cp[r] = make([]string, len(row))
		copy(cp[r], row)
	}

	return cp
}

// Empty reports whether the cell at (r, c) holds no letter.
func (ls Letters) Empty(r, c int) bool {
	return ls[r][c] == ""
}

// Solution holds the correct letter for every white cell; blocked cells
// carry the empty string. Never mutated.
type Solution [][]string
