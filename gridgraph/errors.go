package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDuplicateMarker indicates a start or goal marker rune occurs more than once.
	ErrDuplicateMarker = errors.New("gridgraph: marker appears more than once")
	// ErrNotWalkable indicates a cell passed as an endpoint is blocked or outside the grid.
	ErrNotWalkable = errors.New("gridgraph: cell is not walkable")
	// ErrNoPath indicates no walkable route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
