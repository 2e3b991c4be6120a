package nav

import (
	"github.com/katalvlaran/xword/clues"
	"github.com/katalvlaran/xword/puzzle"
)

// Engine computes selection transitions for one grid. Build it once per
// puzzle; it is immutable and safe to share between callers that do not
// mutate letters concurrently.
type Engine struct {
	g   *puzzle.Grid
	idx *clues.Index
}

// NewEngine builds an engine for g, precomputing the clue index.
// Precondition: g is non-nil.
func NewEngine(g *puzzle.Grid) *Engine {
	return &Engine{g: g, idx: clues.New(g)}
}

// Grid returns the engine's grid.
func (e *Engine) Grid() *puzzle.Grid { return e.g }

// Index returns the engine's clue index.
func (e *Engine) Index() *clues.Index { return e.idx }

// NextCellInWord returns the adjacent cell after (r, c) along dir when
// it is white and in-bounds; ok=false at a word boundary, where the
// caller decides whether to cross into another clue.
func (e *Engine) NextCellInWord(r, c int, dir puzzle.Orientation) (puzzle.Coord, bool) {
	if e.g.IsWordEnd(r, c, dir) {
		return puzzle.Coord{}, false
	}
	if dir == puzzle.Across {
		return puzzle.Coord{Row: r, Col: c + 1}, true
	}

	return puzzle.Coord{Row: r + 1, Col: c}, true
}

// PrevCellInWord is the mirror of NextCellInWord.
func (e *Engine) PrevCellInWord(r, c int, dir puzzle.Orientation) (puzzle.Coord, bool) {
	if e.g.IsWordStart(r, c, dir) {
		return puzzle.Coord{}, false
	}
	if dir == puzzle.Across {
		return puzzle.Coord{Row: r, Col: c - 1}, true
	}

	return puzzle.Coord{Row: r - 1, Col: c}, true
}

// NextWhiteCell steps from (r, c) in screen direction d, passing
// through blocked cells, until it reaches a white cell; ok=false only
// when the grid edge is hit first. This is the arrow-key rule: arrows
// traverse the whole grid rather than stopping at word boundaries.
func (e *Engine) NextWhiteCell(r, c int, d Direction) (puzzle.Coord, bool) {
	dr, dc := d.offset()
	for r, c = r+dr, c+dc; e.g.InBounds(r, c); r, c = r+dr, c+dc {
		if !e.g.IsBlocked(r, c) {
			return puzzle.Coord{Row: r, Col: c}, true
		}
	}

	return puzzle.Coord{}, false
}
