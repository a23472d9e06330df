package costfield

import "errors"

// Sentinel errors for costfield operations.
var (
	// ErrEmptyGrid indicates the mask has no rows or no columns.
	ErrEmptyGrid = errors.New("costfield: mask must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costfield: all rows must have the same length")
	// ErrPointOutOfRange indicates a source point outside the grid or with the wrong number of coordinates.
	ErrPointOutOfRange = errors.New("costfield: source point out of range")
	// ErrLabelShape indicates a label grid that does not match the location map.
	ErrLabelShape = errors.New("costfield: labels do not match location map")
)
