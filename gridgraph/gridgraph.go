// Package gridgraph provides utilities to treat a 2D grid of integer cell
// values as a walkable map. Cells with value < WalkableThreshold are walls;
// cells with value ≥ WalkableThreshold are floor.
package gridgraph

import "github.com/katalvlaran/gridpath/astar"

// neighborOffsets are the 4 orthogonal moves, in the same order astar uses.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		WalkableThreshold: opts.WalkableThreshold,
		markers:           map[rune]astar.Cell{},
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsWalkable reports whether c is inside the grid and not a wall.
// It satisfies astar.Grid.
func (gg *GridGraph) IsWalkable(c astar.Cell) bool {
	return gg.walkable(c.X, c.Y)
}

func (gg *GridGraph) walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.WalkableThreshold
}

// Marker returns the cell recorded for marker rune r by ParseRows.
func (gg *GridGraph) Marker(r rune) (astar.Cell, bool) {
	c, ok := gg.markers[r]
	return c, ok
}

// Start returns the start marker cell, if the grid was parsed with one.
func (gg *GridGraph) Start() (astar.Cell, bool) {
	return gg.Marker(gg.startMarker)
}

// Goal returns the goal marker cell, if the grid was parsed with one.
func (gg *GridGraph) Goal() (astar.Cell, bool) {
	return gg.Marker(gg.goalMarker)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// CellAt converts a row-major index to an astar.Cell.
func (gg *GridGraph) CellAt(idx int) astar.Cell {
	x, y := gg.Coordinate(idx)
	return astar.Cell{X: x, Y: y}
}
