package puzzle

// Grid is the immutable cell layout of one crossword: true = blocked
// (black) cell, false = fillable (white) cell. Clue numbers are derived
// once at construction and cached; they never change because the layout
// never changes.
type Grid struct {
	rows, cols int
	blocked    [][]bool
	numbers    [][]int
	starts     map[int]Coord
}

// gridOptions holds tunables for the string-layout adapter.
type gridOptions struct {
	blockMarker rune
}

// Option configures FromStrings via functional arguments.
type Option func(*gridOptions)

// WithBlockMarker sets the rune that marks a blocked cell in a string
// layout. The default is '#'.
func WithBlockMarker(m rune) Option {
	return func(o *gridOptions) {
		if m != 0 {
			o.blockMarker = m
		}
	}
}

// New constructs a Grid from a non-empty, rectangular blocked-cell
// matrix. The input is deep-copied to guarantee immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNoWhiteCell on invalid
// layouts.
// Complexity: O(R×C) time and memory.
func New(blocked [][]bool) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(blocked), len(blocked[0])
	white := false
	cells := make([][]bool, rows)
	for r, row := range blocked {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cells[r] = make([]bool, cols)
		copy(cells[r], row)
		for _, b := range row {
			if !b {
				white = true
			}
		}
	}
	if !white {
		return nil, ErrNoWhiteCell
	}

	g := &Grid{rows: rows, cols: cols, blocked: cells}
	g.numbers, g.starts = computeClueNumbers(g)

	return g, nil
}

// FromStrings constructs a Grid from one string per row, where the
// block marker rune ('#' unless overridden) marks a blocked cell and
// any other rune a white cell. This is the adapter for puzzle formats
// that encode the layout as marker strings.
func FromStrings(rows []string, opts ...Option) (*Grid, error) {
	o := gridOptions{blockMarker: '#'}
	for _, opt := range opts {
		opt(&o)
	}

	blocked := make([][]bool, len(rows))
	for r, row := range rows {
		line := []rune(row)
		blocked[r] = make([]bool, len(line))
		for c, ch := range line {
			blocked[r][c] = ch == o.blockMarker
		}
	}

	return New(blocked)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// IsBlocked reports whether (r, c) is a blocked (black) cell.
func (g *Grid) IsBlocked(r, c int) bool {
	return g.blocked[r][c]
}

// IsWhite reports whether (r, c) is in-bounds and fillable. Unlike
// IsBlocked it tolerates out-of-bounds coordinates, which makes it the
// right predicate for neighbor probes.
func (g *Grid) IsWhite(r, c int) bool {
	return g.InBounds(r, c) && !g.blocked[r][c]
}

// Number returns the clue number at (r, c), or 0 when no word starts
// there. Complexity: O(1).
func (g *Grid) Number(r, c int) int {
	return g.numbers[r][c]
}

// NumberMatrix returns a deep copy of the clue-number matrix, with 0 in
// every cell where no word starts. Intended for renderers drawing cell
// numbers.
func (g *Grid) NumberMatrix() [][]int {
	cp := make([][]int, g.rows)
	for r := range cp {
		cp[r] = make([]int, g.cols)
		copy(cp[r], g.numbers[r])
	}

	return cp
}

// ClueStart returns the cell carrying clue number n, and false when no
// such number was assigned. Complexity: O(1).
func (g *Grid) ClueStart(n int) (Coord, bool) {
	at, ok := g.starts[n]

	return at, ok
}

// CheckLetters validates that a letters or solution matrix matches the
// grid shape. Returns ErrShapeMismatch otherwise.
func (g *Grid) CheckLetters(m [][]string) error {
	if len(m) != g.rows {
		return ErrShapeMismatch
	}
	for _, row := range m {
		if len(row) != g.cols {
			return ErrShapeMismatch
		}
	}

	return nil
}
