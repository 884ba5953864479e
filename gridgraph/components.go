package gridgraph

import (
	"sort"

	"github.com/katalvlaran/gridpath/astar"
)

// ConnectedComponents finds all 4-connected regions of walkable cells.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS discovery order. Components are ordered by their
// first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.walkable(x, y) || seen[gg.index(x, y)] {
				continue // wall or already collected
			}
			comps = append(comps, gg.flood(x, y, seen))
		}
	}
	return comps
}

// ComponentOf returns the walkable component containing c, sorted in
// row-major order. It returns nil if c is not walkable.
func (gg *GridGraph) ComponentOf(c astar.Cell) []astar.Cell {
	if !gg.IsWalkable(c) {
		return nil
	}
	comp := gg.flood(c.X, c.Y, make([]bool, gg.Width*gg.Height))
	sort.Ints(comp)

	out := make([]astar.Cell, len(comp))
	for i, idx := range comp {
		out[i] = gg.CellAt(idx)
	}
	return out
}

// flood collects every walkable cell reachable from (x0,y0), marking seen.
func (gg *GridGraph) flood(x0, y0 int, seen []bool) []int {
	i0 := gg.index(x0, y0)
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.walkable(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
