package puzzle

// startsAcross reports whether (r, c) begins a horizontal word of
// length ≥ 2: the cell is white, has no white predecessor to its left,
// and has a white successor to its right.
func startsAcross(g *Grid, r, c int) bool {
	if g.blocked[r][c] {
		return false
	}

	return !g.IsWhite(r, c-1) && g.IsWhite(r, c+1)
}

// startsDown is the vertical counterpart of startsAcross.
func startsDown(g *Grid, r, c int) bool {
	if g.blocked[r][c] {
		return false
	}

	return !g.IsWhite(r-1, c) && g.IsWhite(r+1, c)
}

// computeClueNumbers assigns clue numbers in row-major reading order:
// a cell is numbered iff it qualifies as a word start in either
// orientation, and one shared counter serves both, so a cell starting
// both an across and a down word gets a single number.
// Complexity: O(R×C) time and memory.
func computeClueNumbers(g *Grid) ([][]int, map[int]Coord) {
	numbers := make([][]int, g.rows)
	starts := make(map[int]Coord)
	next := 1
	for r := 0; r < g.rows; r++ {
		numbers[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			if !startsAcross(g, r, c) && !startsDown(g, r, c) {
				continue
			}
			numbers[r][c] = next
			starts[next] = Coord{Row: r, Col: c}
			next++
		}
	}

	return numbers, starts
}
