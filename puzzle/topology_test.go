package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xword/puzzle"
)

// TestWordStart walks back to the first cell of a run in both
// orientations.
func TestWordStart(t *testing.T) {
	g := fixtureGrid(t)

	require.Equal(t, puzzle.Coord{Row: 0, Col: 0}, g.WordStart(0, 2, puzzle.Across))
	require.Equal(t, puzzle.Coord{Row: 0, Col: 4}, g.WordStart(0, 5, puzzle.Across))
	require.Equal(t, puzzle.Coord{Row: 0, Col: 1}, g.WordStart(3, 1, puzzle.Down))
	// A boundary cell is its own start.
	require.Equal(t, puzzle.Coord{Row: 2, Col: 0}, g.WordStart(2, 0, puzzle.Across))
}

// TestWordBoundaries checks IsWordStart / IsWordEnd at edges and next
// to black cells.
func TestWordBoundaries(t *testing.T) {
	g := fixtureGrid(t)

	require.True(t, g.IsWordStart(0, 0, puzzle.Across), "grid edge starts a word")
	require.True(t, g.IsWordStart(0, 4, puzzle.Across), "cell after a black cell starts a word")
	require.False(t, g.IsWordStart(0, 1, puzzle.Across))

	require.True(t, g.IsWordEnd(0, 2, puzzle.Across), "cell before a black cell ends a word")
	require.True(t, g.IsWordEnd(0, 5, puzzle.Across), "grid edge ends a word")
	require.False(t, g.IsWordEnd(0, 1, puzzle.Across))

	require.True(t, g.IsWordEnd(2, 0, puzzle.Down), "black cell below ends 1-down")
}

// TestWordCells lists runs in word order.
func TestWordCells(t *testing.T) {
	g := fixtureGrid(t)

	require.Equal(t, []puzzle.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
		g.WordCells(0, 1, puzzle.Across))
	require.Equal(t, []puzzle.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
		g.WordCells(1, 0, puzzle.Down))
	// Single-cell vertical run: (2,3) has black above and below.
	require.Equal(t, []puzzle.Coord{{Row: 2, Col: 3}}, g.WordCells(2, 3, puzzle.Down))
}

// TestClueAt resolves containing-word numbers, including the
// length-≥-2 rule: single-cell runs yield 0.
func TestClueAt(t *testing.T) {
	g := fixtureGrid(t)

	require.Equal(t, 1, g.ClueAt(0, 2, puzzle.Across))
	require.Equal(t, 4, g.ClueAt(0, 5, puzzle.Across))
	require.Equal(t, 8, g.ClueAt(2, 3, puzzle.Across))
	require.Equal(t, 0, g.ClueAt(2, 3, puzzle.Down), "isolated vertical cell has no down clue")
	require.Equal(t, 5, g.ClueAt(3, 5, puzzle.Down))
}

// TestWordRoundTrip verifies that for every white cell, walking forward
// from its word start along the orientation reaches the cell again.
func TestWordRoundTrip(t *testing.T) {
	g := fixtureGrid(t)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.IsBlocked(r, c) {
				continue
			}
			for _, dir := range []puzzle.Orientation{puzzle.Across, puzzle.Down} {
				found := false
				for _, cell := range g.WordCells(r, c, dir) {
					if cell.Row == r && cell.Col == c {
						found = true
					}
				}
				require.True(t, found, "cell (%d,%d) missing from its own %s word", r, c, dir)
			}
		}
	}
}

// TestOrientation covers Opposite and String.
func TestOrientation(t *testing.T) {
	require.Equal(t, puzzle.Down, puzzle.Across.Opposite())
	require.Equal(t, puzzle.Across, puzzle.Down.Opposite())
	require.Equal(t, "across", puzzle.Across.String())
	require.Equal(t, "down", puzzle.Down.String())
}
