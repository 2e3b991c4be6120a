package puzzle

// Puzzle bundles one grid with its clue texts and optional solution.
// It is the parsed-puzzle handoff shape: loaders build it, the
// navigation and entry packages consume the grid, renderers consume the
// clue texts.
type Puzzle struct {
	Grid     *Grid
	Across   ClueTexts
	Down     ClueTexts
	Solution Solution // nil when the puzzle ships without one
}

// NewPuzzle validates the solution shape against the grid (when
// present) and returns the assembled puzzle.
func NewPuzzle(g *Grid, across, down ClueTexts, sol Solution) (*Puzzle, error) {
	if sol != nil {
		if err := g.CheckLetters(sol); err != nil {
			return nil, err
		}
	}

	return &Puzzle{Grid: g, Across: across, Down: down, Solution: sol}, nil
}

// CheckSolution compares the player's letters against the solution.
// filled is true when every white cell holds a letter; correct is true
// when, additionally, every letter matches the solution. Blocked cells
// are ignored. Precondition: both matrices match the grid shape.
// Complexity: O(R×C).
func CheckSolution(g *Grid, letters Letters, sol Solution) (filled, correct bool) {
	filled, correct = true, true
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.blocked[r][c] {
				continue
			}
			switch {
			case letters[r][c] == "":
				filled, correct = false, false
			case letters[r][c] != sol[r][c]:
				correct = false
			}
		}
	}

	return filled, correct
}

// Filled reports whether every white cell holds a letter. Used when no
// solution is available and only fill state matters.
func Filled(g *Grid, letters Letters) bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.blocked[r][c] && letters[r][c] == "" {
				return false
			}
		}
	}

	return true
}
