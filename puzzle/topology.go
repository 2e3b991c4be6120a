package puzzle

// step returns the unit offset along an orientation axis.
func step(dir Orientation) (dr, dc int) {
	if dir == Across {
		return 0, 1
	}

	return 1, 0
}

// WordStart walks backward along dir while the preceding cell is white
// and returns the first cell of the run; (r, c) itself when it already
// sits at a boundary. Precondition: (r, c) is in-bounds and white.
// Complexity: O(L).
func (g *Grid) WordStart(r, c int, dir Orientation) Coord {
	dr, dc := step(dir)
	for g.IsWhite(r-dr, c-dc) {
		r, c = r-dr, c-dc
	}

	return Coord{Row: r, Col: c}
}

// IsWordStart reports whether (r, c) has no white predecessor along dir.
func (g *Grid) IsWordStart(r, c int, dir Orientation) bool {
	dr, dc := step(dir)

	return !g.IsWhite(r-dr, c-dc)
}

// IsWordEnd reports whether the next cell along dir is blocked or
// off-grid.
func (g *Grid) IsWordEnd(r, c int, dir Orientation) bool {
	dr, dc := step(dir)

	return !g.IsWhite(r+dr, c+dc)
}

// WordCells returns the cells of the run containing (r, c) along dir,
// in word order, including single-cell runs. Precondition: (r, c) is
// in-bounds and white.
// Complexity: O(L) time and memory.
func (g *Grid) WordCells(r, c int, dir Orientation) []Coord {
	start := g.WordStart(r, c, dir)
	dr, dc := step(dir)
	cells := make([]Coord, 0, 8)
	for cr, cc := start.Row, start.Col; g.IsWhite(cr, cc); cr, cc = cr+dr, cc+dc {
		cells = append(cells, Coord{Row: cr, Col: cc})
	}

	return cells
}

// ClueAt returns the clue number of the word containing (r, c) along
// dir, or 0 when the run has length < 2 (isolated cells get no clue).
// Precondition: (r, c) is in-bounds and white.
func (g *Grid) ClueAt(r, c int, dir Orientation) int {
	start := g.WordStart(r, c, dir)
	dr, dc := step(dir)
	if !g.IsWhite(start.Row+dr, start.Col+dc) {
		return 0
	}

	return g.numbers[start.Row][start.Col]
}
