package nav_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xword/nav"
	"github.com/katalvlaran/xword/puzzle"
)

//----------------------------------------------------------------------------//
// Skip-if-complete traversal
//----------------------------------------------------------------------------//

// TestNextClue_SkipsCompleted fills 1-, 4-, 6- and 7-across
// completely; advancing from 1-across must land on 8-across.
func TestNextClue_SkipsCompleted(t *testing.T) {
	e, letters := fixtureEngine(t)
	for _, n := range []int{1, 4, 6, 7} {
		fillClue(t, e, letters, n, puzzle.Across)
	}

	sel := e.NextClue(letters, at(0, 0, 1, puzzle.Across))
	require.Equal(t, 8, sel.Clue)
	require.Equal(t, puzzle.Across, sel.Dir)
	require.Equal(t, puzzle.Coord{Row: 2, Col: 0}, sel.Cell)
}

// TestNextClue_LandsOnFirstEmpty fills only (0,4) of 4-across; the jump
// from 1-across must land inside 4-across at its first blank (0,5),
// not at the clue's start cell.
func TestNextClue_LandsOnFirstEmpty(t *testing.T) {
	e, letters := fixtureEngine(t)
	letters[0][4] = "A"

	sel := e.NextClue(letters, at(0, 0, 1, puzzle.Across))
	require.Equal(t, 4, sel.Clue)
	require.Equal(t, puzzle.Coord{Row: 0, Col: 5}, sel.Cell)
}

// TestNextClue_WrapsToOtherOrientation fills every across answer after
// the current one; with the rest of across exhausted, advancing from
// 8-across must continue with the first incomplete down clue.
func TestNextClue_WrapsToOtherOrientation(t *testing.T) {
	e, letters := fixtureEngine(t)
	for _, n := range []int{9, 10, 11} {
		fillClue(t, e, letters, n, puzzle.Across)
	}

	sel := e.NextClue(letters, at(2, 0, 8, puzzle.Across))
	require.Equal(t, puzzle.Down, sel.Dir)
	require.Equal(t, 1, sel.Clue)
	require.Equal(t, puzzle.Coord{Row: 0, Col: 0}, sel.Cell)
}

// TestNextClue_AllComplete falls back to plain cycling once every
// answer is filled: the clue after the current one, ignoring
// completeness.
func TestNextClue_AllComplete(t *testing.T) {
	e, letters := fixtureEngine(t)
	for r := 0; r < e.Grid().Rows(); r++ {
		for c := 0; c < e.Grid().Cols(); c++ {
			if !e.Grid().IsBlocked(r, c) {
				letters[r][c] = "A"
			}
		}
	}

	sel := e.NextClue(letters, at(0, 0, 1, puzzle.Across))
	require.Equal(t, 4, sel.Clue)
	require.Equal(t, puzzle.Across, sel.Dir)
	require.Equal(t, puzzle.Coord{Row: 0, Col: 4}, sel.Cell, "a full word lands on its start cell")

	// Exhausting across wraps into the first down clue.
	sel = e.NextClue(letters, at(4, 0, 11, puzzle.Across))
	require.Equal(t, puzzle.Down, sel.Dir)
	require.Equal(t, 1, sel.Clue)
}

// TestNextClue_Terminates runs the jump from every clue of a fully
// filled grid; the visited-set bound must keep every call finite.
func TestNextClue_Terminates(t *testing.T) {
	e, letters := fixtureEngine(t)
	for r := 0; r < e.Grid().Rows(); r++ {
		for c := 0; c < e.Grid().Cols(); c++ {
			if !e.Grid().IsBlocked(r, c) {
				letters[r][c] = "A"
			}
		}
	}

	for _, dir := range []puzzle.Orientation{puzzle.Across, puzzle.Down} {
		for _, n := range e.Index().Numbers(dir) {
			start, _ := e.Grid().ClueStart(n)
			sel := e.NextClue(letters, at(start.Row, start.Col, n, dir))
			require.True(t, sel.HasCell)
			require.NotZero(t, sel.Clue)
		}
	}
}

// TestNextClue_NoClues leaves the selection untouched on a grid too
// small for any word.
func TestNextClue_NoClues(t *testing.T) {
	g, err := puzzle.FromStrings([]string{".#", "#."})
	require.NoError(t, err)
	e := nav.NewEngine(g)
	letters := puzzle.NewLetters(2, 2)

	sel := at(0, 0, 0, puzzle.Across)
	require.Equal(t, sel, e.NextClue(letters, sel))
}

// TestPrevClue_SkipsCompleted mirrors the forward skip: with 7-across
// filled, retreating from 8-across lands on 6-across.
func TestPrevClue_SkipsCompleted(t *testing.T) {
	e, letters := fixtureEngine(t)
	fillClue(t, e, letters, 7, puzzle.Across)

	sel := e.PrevClue(letters, at(2, 0, 8, puzzle.Across))
	require.Equal(t, 6, sel.Clue)
	require.Equal(t, puzzle.Across, sel.Dir)
	require.Equal(t, puzzle.Coord{Row: 1, Col: 0}, sel.Cell)
}

// TestPrevClue_WrapsBackward retreating from the first across clue
// continues with the last incomplete down clue.
func TestPrevClue_WrapsBackward(t *testing.T) {
	e, letters := fixtureEngine(t)

	sel := e.PrevClue(letters, at(0, 0, 1, puzzle.Across))
	require.Equal(t, puzzle.Down, sel.Dir)
	require.Equal(t, 5, sel.Clue)
}

// TestJumpToClue selects a clue directly, as a clue-list panel does.
func TestJumpToClue(t *testing.T) {
	e, letters := fixtureEngine(t)
	letters[1][4] = "A"

	sel, ok := e.JumpToClue(letters, 7, puzzle.Across)
	require.True(t, ok)
	require.Equal(t, puzzle.Coord{Row: 1, Col: 5}, sel.Cell, "lands on the first blank")

	_, ok = e.JumpToClue(letters, 2, puzzle.Across)
	require.False(t, ok, "2 is a down-only clue number")

	_, ok = e.JumpToClue(letters, 99, puzzle.Down)
	require.False(t, ok)
}
