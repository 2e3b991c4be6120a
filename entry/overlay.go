package entry

import (
	"github.com/katalvlaran/xword/puzzle"
)

// ValidateCell checks the letter at (r, c) against the solution and
// records Correct or Incorrect on the returned snapshot. ok=false when
// the processor has no solution, the cell is blocked or out of bounds,
// or it holds no letter to check.
func (p *Processor) ValidateCell(state State, r, c int) (State, bool) {
	if p.sol == nil || !p.g.IsWhite(r, c) || state.Letters.Empty(r, c) {
		return State{}, false
	}
	next := state.Clone()
	if next.Letters[r][c] == p.sol[r][c] {
		next.Marks[r][c] = puzzle.Correct
	} else {
		next.Marks[r][c] = puzzle.Incorrect
	}

	return next, true
}

// RevealCell writes the solution letter at (r, c) and flags the cell
// revealed, locking it permanently. ok=false when the processor has no
// solution or the cell is blocked or out of bounds. Revealing an
// already-revealed cell is a harmless no-op on the copy.
func (p *Processor) RevealCell(state State, r, c int) (State, bool) {
	if p.sol == nil || !p.g.IsWhite(r, c) {
		return State{}, false
	}
	next := state.Clone()
	next.Letters[r][c] = p.sol[r][c]
	next.Marks[r][c] = puzzle.Unchecked
	next.Revealed[r][c] = true

	return next, true
}
