package puzzle

import "errors"

var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("puzzle: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("puzzle: all rows must have the same length")
	// ErrNoWhiteCell indicates a layout with every cell blocked.
	ErrNoWhiteCell = errors.New("puzzle: grid must contain at least one white cell")
	// ErrShapeMismatch indicates a letters or solution matrix whose
	// dimensions differ from the grid it is paired with.
	ErrShapeMismatch = errors.New("puzzle: matrix shape does not match grid")
)
