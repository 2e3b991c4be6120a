package nav_test

import (
	"testing"

	"github.com/katalvlaran/xword/nav"
	"github.com/katalvlaran/xword/puzzle"
)

// benchGrid builds an open 15×15 grid with a black column every fifth
// cell, giving a realistic clue density.
func benchGrid(b *testing.B) *puzzle.Grid {
	rows := make([]string, 15)
	for r := range rows {
		line := make([]byte, 15)
		for c := range line {
			if (r+c)%7 == 3 {
				line[c] = '#'
			} else {
				line[c] = '.'
			}
		}
		rows[r] = string(line)
	}
	g, err := puzzle.FromStrings(rows)
	if err != nil {
		b.Fatalf("setup FromStrings failed: %v", err)
	}

	return g
}

// BenchmarkNextClue measures the skip-ahead search on a fully filled
// grid, the worst case: every clue is visited before the cyclic
// fallback fires.
// Complexity: O(R×C)
func BenchmarkNextClue(b *testing.B) {
	g := benchGrid(b)
	e := nav.NewEngine(g)
	letters := puzzle.NewLetters(g.Rows(), g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.IsBlocked(r, c) {
				letters[r][c] = "A"
			}
		}
	}
	sel := nav.Selection{Cell: puzzle.Coord{}, HasCell: true, Clue: 1, Dir: puzzle.Across}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.NextClue(letters, sel)
	}
}

// BenchmarkNewEngine measures engine construction including the clue
// index.
// Complexity: O(R×C)
func BenchmarkNewEngine(b *testing.B) {
	g := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nav.NewEngine(g)
	}
}
