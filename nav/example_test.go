// File: nav/example_test.go
package nav_test

import (
	"fmt"

	"github.com/katalvlaran/xword/nav"
	"github.com/katalvlaran/xword/puzzle"
)

////////////////////////////////////////////////////////////////////////////////
// Example: skip-if-complete clue traversal
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_NextClue demonstrates tabbing through a puzzle touching
// only incomplete answers.
// Scenario:
//
//   - 5×6 grid, across clues 1,4,6,7,8,...
//   - 4-, 6- and 7-across are fully filled
//   - advancing from 1-across skips them and lands on 8-across
//
// Complexity: O(R×C) worst case, bounded by the visited set.
func ExampleEngine_NextClue() {
	g, _ := puzzle.FromStrings([]string{
		"...#..",
		"...#..",
		"......",
		"#..#..",
		"......",
	})
	e := nav.NewEngine(g)
	letters := puzzle.NewLetters(g.Rows(), g.Cols())
	for _, n := range []int{4, 6, 7} {
		start, _ := g.ClueStart(n)
		for _, cell := range g.WordCells(start.Row, start.Col, puzzle.Across) {
			letters[cell.Row][cell.Col] = "A"
		}
	}

	sel := nav.Selection{Cell: puzzle.Coord{Row: 0, Col: 0}, HasCell: true, Clue: 1, Dir: puzzle.Across}
	sel = e.NextClue(letters, sel)
	fmt.Printf("clue %d-%s at (%d,%d)\n", sel.Clue, sel.Dir, sel.Cell.Row, sel.Cell.Col)

	// Output:
	// clue 8-across at (2,0)
}

////////////////////////////////////////////////////////////////////////////////
// Example: active-word highlighting
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_IsPartOfActiveClue demonstrates the pure query a
// renderer uses to highlight the active word.
func ExampleEngine_IsPartOfActiveClue() {
	g, _ := puzzle.FromStrings([]string{
		"...#..",
		"...#..",
		"......",
		"#..#..",
		"......",
	})
	e := nav.NewEngine(g)
	sel := nav.Selection{Cell: puzzle.Coord{Row: 0, Col: 1}, HasCell: true, Clue: 1, Dir: puzzle.Across}

	for c := 0; c < g.Cols(); c++ {
		if e.IsPartOfActiveClue(sel, 0, c) {
			fmt.Printf("(0,%d) ", c)
		}
	}
	// Output:
	// (0,0) (0,1) (0,2)
}
