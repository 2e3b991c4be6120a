package nav

import (
	"github.com/katalvlaran/xword/puzzle"
	"github.com/katalvlaran/xword/word"
)

// NextClue advances the selection to the next clue whose answer still
// has empty cells, searching the current orientation first, then the
// other orientation from its start. Once every answer is filled it
// falls back to plain cyclic traversal: the clue after the current one,
// wrapping into the other orientation at the end. The landing cell is
// the clue's first empty cell, or its start cell when full.
// Returns sel unchanged when the grid has no clues at all.
func (e *Engine) NextClue(letters puzzle.Letters, sel Selection) Selection {
	if n, ok := e.nextIncomplete(letters, sel.Dir, sel.Clue); ok {
		return e.land(letters, n, sel.Dir)
	}
	if n, ok := e.nextIncomplete(letters, sel.Dir.Opposite(), 0); ok {
		return e.land(letters, n, sel.Dir.Opposite())
	}
	// Everything is filled: plain cycling, ignoring completeness.
	if n, ok := e.idx.Next(sel.Dir, sel.Clue); ok {
		return e.land(letters, n, sel.Dir)
	}
	if n, ok := e.idx.First(sel.Dir.Opposite()); ok {
		return e.land(letters, n, sel.Dir.Opposite())
	}
	if n, ok := e.idx.First(sel.Dir); ok {
		return e.land(letters, n, sel.Dir)
	}

	return sel
}

// PrevClue is the backward mirror of NextClue.
func (e *Engine) PrevClue(letters puzzle.Letters, sel Selection) Selection {
	if n, ok := e.prevIncomplete(letters, sel.Dir, sel.Clue); ok {
		return e.land(letters, n, sel.Dir)
	}
	if n, ok := e.prevIncomplete(letters, sel.Dir.Opposite(), 0); ok {
		return e.land(letters, n, sel.Dir.Opposite())
	}
	if n, ok := e.idx.Prev(sel.Dir, sel.Clue); ok {
		return e.land(letters, n, sel.Dir)
	}
	if n, ok := e.idx.Last(sel.Dir.Opposite()); ok {
		return e.land(letters, n, sel.Dir.Opposite())
	}
	if n, ok := e.idx.Last(sel.Dir); ok {
		return e.land(letters, n, sel.Dir)
	}

	return sel
}

// JumpToClue selects clue n in dir directly (a clue-list click),
// landing on its first empty cell. ok=false for numbers dir does not
// contain.
func (e *Engine) JumpToClue(letters puzzle.Letters, n int, dir puzzle.Orientation) (Selection, bool) {
	start, ok := e.g.ClueStart(n)
	if !ok || e.g.ClueAt(start.Row, start.Col, dir) != n {
		return Selection{}, false
	}

	return e.land(letters, n, dir), true
}

// PrevIncompleteClue returns the nearest clue before `from` whose
// answer still has empty cells, searching dir backward first, then the
// other orientation from its end. ok=false when every other clue is
// complete. Deletion back-navigation uses this to find the word whose
// last cell a backspace chain should land on.
func (e *Engine) PrevIncompleteClue(letters puzzle.Letters, dir puzzle.Orientation, from int) (int, puzzle.Orientation, bool) {
	if n, ok := e.prevIncomplete(letters, dir, from); ok {
		return n, dir, true
	}
	if n, ok := e.prevIncomplete(letters, dir.Opposite(), 0); ok {
		return n, dir.Opposite(), true
	}

	return 0, dir, false
}

// nextIncomplete walks clue numbers forward from `from` (0 = before the
// first) until one with empty cells is found. The visited set caps the
// walk at the clue count, guaranteeing termination on cyclic lists.
func (e *Engine) nextIncomplete(letters puzzle.Letters, dir puzzle.Orientation, from int) (int, bool) {
	visited := make(map[int]bool, e.idx.Len(dir))
	for n, ok := e.idx.Next(dir, from); ok && !visited[n]; n, ok = e.idx.Next(dir, n) {
		if !word.AnswerComplete(e.g, letters, n, dir) {
			return n, true
		}
		visited[n] = true
	}

	return 0, false
}

// prevIncomplete is the backward mirror of nextIncomplete (0 = past the
// last).
func (e *Engine) prevIncomplete(letters puzzle.Letters, dir puzzle.Orientation, from int) (int, bool) {
	visited := make(map[int]bool, e.idx.Len(dir))
	for n, ok := e.idx.Prev(dir, from); ok && !visited[n]; n, ok = e.idx.Prev(dir, n) {
		if !word.AnswerComplete(e.g, letters, n, dir) {
			return n, true
		}
		visited[n] = true
	}

	return 0, false
}

// land builds the selection for arriving at clue n in dir.
func (e *Engine) land(letters puzzle.Letters, n int, dir puzzle.Orientation) Selection {
	cell, ok := word.FirstEmptyInClue(e.g, letters, n, dir)
	if !ok {
		return Selection{}
	}

	return Selection{Cell: cell, HasCell: true, Clue: n, Dir: dir}
}
