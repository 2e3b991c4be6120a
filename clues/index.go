package clues

import (
	"sort"

	"github.com/katalvlaran/xword/puzzle"
)

// Index holds the clue numbers of one grid, per orientation, in
// ascending (reading) order. Immutable once built.
type Index struct {
	across []int
	down   []int
}

// New scans the grid in row-major order and collects, per orientation,
// every clue number whose cell starts a word in that orientation. The
// scan order makes both lists ascending without sorting.
// Complexity: O(R×C) time, O(N) memory.
func New(g *puzzle.Grid) *Index {
	idx := &Index{}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			n := g.Number(r, c)
			if n == 0 {
				continue
			}
			if g.IsWhite(r, c+1) && g.IsWordStart(r, c, puzzle.Across) {
				idx.across = append(idx.across, n)
			}
			if g.IsWhite(r+1, c) && g.IsWordStart(r, c, puzzle.Down) {
				idx.down = append(idx.down, n)
			}
		}
	}

	return idx
}

// list returns the number list for one orientation.
func (idx *Index) list(dir puzzle.Orientation) []int {
	if dir == puzzle.Across {
		return idx.across
	}

	return idx.down
}

// Numbers returns a copy of the ascending clue-number list for dir.
func (idx *Index) Numbers(dir puzzle.Orientation) []int {
	ns := idx.list(dir)
	cp := make([]int, len(ns))
	copy(cp, ns)

	return cp
}

// Len returns the clue count for dir.
func (idx *Index) Len(dir puzzle.Orientation) int {
	return len(idx.list(dir))
}

// First returns the smallest clue number for dir, false when dir has
// no clues.
func (idx *Index) First(dir puzzle.Orientation) (int, bool) {
	ns := idx.list(dir)
	if len(ns) == 0 {
		return 0, false
	}

	return ns[0], true
}

// Last returns the largest clue number for dir, false when dir has no
// clues.
func (idx *Index) Last(dir puzzle.Orientation) (int, bool) {
	ns := idx.list(dir)
	if len(ns) == 0 {
		return 0, false
	}

	return ns[len(ns)-1], true
}

// Next returns the clue number following current in dir. A zero
// current yields the first clue; a current not present in the list is
// treated as sitting before the first and yields the first as well.
// A false ok means the orientation is exhausted: current was the last
// clue (or dir has none), and the caller decides whether to wrap.
func (idx *Index) Next(dir puzzle.Orientation, current int) (int, bool) {
	ns := idx.list(dir)
	if len(ns) == 0 {
		return 0, false
	}
	if current == 0 {
		return ns[0], true
	}
	i := sort.SearchInts(ns, current)
	if i == len(ns) || ns[i] != current {
		return ns[0], true
	}
	if i == len(ns)-1 {
		return 0, false
	}

	return ns[i+1], true
}

// Prev is the mirror of Next: a zero current yields the last clue, an
// absent current is treated as sitting past the end, and a false ok
// means current was the first clue (or dir has none).
func (idx *Index) Prev(dir puzzle.Orientation, current int) (int, bool) {
	ns := idx.list(dir)
	if len(ns) == 0 {
		return 0, false
	}
	if current == 0 {
		return ns[len(ns)-1], true
	}
	i := sort.SearchInts(ns, current)
	if i == len(ns) || ns[i] != current {
		return ns[len(ns)-1], true
	}
	if i == 0 {
		return 0, false
	}

	return ns[i-1], true
}
