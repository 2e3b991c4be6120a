package entry

import (
	"github.com/katalvlaran/xword/nav"
	"github.com/katalvlaran/xword/puzzle"
)

// Action is a declarative follow-up the host executes after applying a
// processed state.
type Action uint8

const (
	// AdvanceNextClue asks the host to run the skip-if-complete clue
	// jump (nav.Engine.NextClue) from the returned selection.
	AdvanceNextClue Action = iota
	// CheckCompletion asks the host to compare the full letters against
	// the solution and react to a solved puzzle.
	CheckCompletion
	// ShowError tells the host the grid is fully filled but wrong.
	ShowError
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case AdvanceNextClue:
		return "advance-next-clue"
	case CheckCompletion:
		return "check-completion"
	default:
		return "show-error"
	}
}

// State is one mutable snapshot of a puzzle in play. The grid itself
// lives in the Processor; State carries only what user actions change.
type State struct {
	// Letters holds the player's entries.
	Letters puzzle.Letters
	// Marks is the per-cell validation overlay.
	Marks [][]puzzle.Mark
	// Revealed flags cells whose letter was set by a reveal action;
	// such cells are permanently locked.
	Revealed [][]bool
	// Sel is the active selection.
	Sel nav.Selection
}

// NewState returns an all-empty state for a grid.
func NewState(g *puzzle.Grid) State {
	marks := make([][]puzzle.Mark, g.Rows())
	revealed := make([][]bool, g.Rows())
	for r := range marks {
		marks[r] = make([]puzzle.Mark, g.Cols())
		revealed[r] = make([]bool, g.Cols())
	}

	return State{
		Letters:  puzzle.NewLetters(g.Rows(), g.Cols()),
		Marks:    marks,
		Revealed: revealed,
	}
}

// Clone returns a deep copy, so each processed action yields a snapshot
// independent of its predecessor.
func (s State) Clone() State {
	cp := State{
		Letters:  s.Letters.Clone(),
		Marks:    make([][]puzzle.Mark, len(s.Marks)),
		Revealed: make([][]bool, len(s.Revealed)),
		Sel:      s.Sel,
	}
	for r := range s.Marks {
		cp.Marks[r] = make([]puzzle.Mark, len(s.Marks[r]))
		copy(cp.Marks[r], s.Marks[r])
	}
	for r := range s.Revealed {
		cp.Revealed[r] = make([]bool, len(s.Revealed[r]))
		copy(cp.Revealed[r], s.Revealed[r])
	}

	return cp
}

// Locked reports whether (r, c) is immutable to typing: revealed, or
// validated correct.
func (s State) Locked(r, c int) bool {
	return s.Revealed[r][c] || s.Marks[r][c] == puzzle.Correct
}

// Result pairs the new state snapshot with the follow-up actions. The
// state itself is the "set state" payload; Actions carry everything
// else.
type Result struct {
	State   State
	Actions []Action
}
