package entry

import (
	"github.com/katalvlaran/xword/nav"
	"github.com/katalvlaran/xword/puzzle"
	"github.com/katalvlaran/xword/word"
)

// Processor applies letter insertions and deletions for one puzzle.
// The grid and solution are fixed at construction; every call is a pure
// function of the state it receives.
type Processor struct {
	g   *puzzle.Grid
	e   *nav.Engine
	sol puzzle.Solution // nil when the puzzle ships without one
}

// NewProcessor builds a processor over an engine's grid. A non-nil
// solution is validated against the grid shape.
func NewProcessor(e *nav.Engine, sol puzzle.Solution) (*Processor, error) {
	if sol != nil {
		if err := e.Grid().CheckLetters(sol); err != nil {
			return nil, err
		}
	}

	return &Processor{g: e.Grid(), e: e, sol: sol}, nil
}

// Engine returns the navigation engine, which hosts need when executing
// the AdvanceNextClue action.
func (p *Processor) Engine() *nav.Engine { return p.e }

// Process applies one keystroke at (row, col): a non-empty letter is an
// insertion, the empty string a deletion. It returns the new snapshot
// and follow-up actions, or ok=false when the edit is blocked: the cell
// is blocked or out of bounds, or it is locked (revealed or validated
// correct). A blocked edit changes nothing.
func (p *Processor) Process(state State, row, col int, letter string) (Result, bool) {
	if !p.g.IsWhite(row, col) || state.Locked(row, col) {
		return Result{}, false
	}
	if letter == "" {
		return p.deleteLetter(state, row, col)
	}

	return p.insertLetter(state, row, col, letter)
}

// insertLetter writes the letter, clears the cell's validation mark,
// and applies the auto-advance policy: inside a still-incomplete word
// the cursor moves to the cyclic next empty cell, finishing a word
// signals the clue-level advance instead.
func (p *Processor) insertLetter(state State, row, col int, letter string) (Result, bool) {
	next := state.Clone()
	wasEmpty := state.Letters.Empty(row, col)
	next.Letters[row][col] = letter
	next.Marks[row][col] = puzzle.Unchecked
	next.Sel = p.selectionAt(next.Sel, row, col)
	dir := next.Sel.Dir

	var actions []Action
	a := word.Analyze(p.g, next.Letters, row, col, dir)
	switch {
	case a.Complete:
		if !wasEmpty && !p.g.IsWordEnd(row, col, dir) {
			// Overtyped a filled cell mid-word: pure repositioning.
			if cell, ok := p.e.NextCellInWord(row, col, dir); ok {
				next.Sel.Cell = cell
			}
		} else {
			actions = append(actions, AdvanceNextClue)
		}
		actions = append(actions, CheckCompletion)
		if p.sol != nil {
			if filled, correct := puzzle.CheckSolution(p.g, next.Letters, p.sol); filled && !correct {
				actions = append(actions, ShowError)
			}
		}
	case !wasEmpty:
		if cell, ok := p.e.NextCellInWord(row, col, dir); ok {
			next.Sel.Cell = cell
		}
	case a.HasNextEmpty:
		next.Sel.Cell = a.NextEmpty
	}

	return Result{State: next, Actions: actions}, true
}

// deleteLetter clears the cell when it holds a letter; backspacing an
// already-empty cell moves backward, clearing as it lands: to the
// previous cell of the word, or, from the word start, to the last cell
// of the nearest previous incomplete clue, crossing orientation
// boundaries when the current one is exhausted.
func (p *Processor) deleteLetter(state State, row, col int) (Result, bool) {
	next := state.Clone()
	next.Sel = p.selectionAt(next.Sel, row, col)
	dir := next.Sel.Dir

	if !next.Letters.Empty(row, col) {
		next.Letters[row][col] = ""
		next.Marks[row][col] = puzzle.Unchecked

		return Result{State: next}, true
	}

	if !p.g.IsWordStart(row, col, dir) {
		cell, _ := p.e.PrevCellInWord(row, col, dir)
		p.clearCell(&next, cell)
		next.Sel.Cell = cell

		return Result{State: next}, true
	}

	from := p.g.ClueAt(row, col, dir)
	n, d, ok := p.e.PrevIncompleteClue(next.Letters, dir, from)
	if !ok {
		// Every other answer is complete: stay in place.
		return Result{State: next}, true
	}
	cell, _ := word.LastCell(p.g, n, d)
	p.clearCell(&next, cell)
	next.Sel = nav.Selection{Cell: cell, HasCell: true, Clue: n, Dir: d}

	return Result{State: next}, true
}

// clearCell erases a landed-on cell unless it is locked; either way the
// cursor still moves there.
func (p *Processor) clearCell(s *State, cell puzzle.Coord) {
	if s.Locked(cell.Row, cell.Col) {
		return
	}
	s.Letters[cell.Row][cell.Col] = ""
	s.Marks[cell.Row][cell.Col] = puzzle.Unchecked
}

// selectionAt pins the selection to the edited cell, refreshing the
// clue number for the active orientation when the cell has one.
func (p *Processor) selectionAt(sel nav.Selection, row, col int) nav.Selection {
	sel.Cell = puzzle.Coord{Row: row, Col: col}
	sel.HasCell = true
	if n := p.g.ClueAt(row, col, sel.Dir); n != 0 {
		sel.Clue = n
	}

	return sel
}
