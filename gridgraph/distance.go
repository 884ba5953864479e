package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
)

// ShortestDistance returns the number of orthogonal moves on a shortest
// walkable route from one cell to another, found by exhaustive BFS.
// It is independent of package astar's search and serves as its oracle.
//
// Behavior:
//  1. Validate that both endpoints are walkable (ErrNotWalkable).
//  2. BFS from `from` over walkable cells, stopping when `to` is dequeued.
//  3. ErrNoPath if the queue drains first.
//
// Complexity: O(W·H) time and memory.
func (gg *GridGraph) ShortestDistance(from, to astar.Cell) (int, error) {
	if !gg.IsWalkable(from) {
		return 0, fmt.Errorf("%w: %s", ErrNotWalkable, from)
	}
	if !gg.IsWalkable(to) {
		return 0, fmt.Errorf("%w: %s", ErrNotWalkable, to)
	}

	dist := make([]int, gg.Width*gg.Height)
	for i := range dist {
		dist[i] = -1
	}
	src, dst := gg.index(from.X, from.Y), gg.index(to.X, to.Y)
	dist[src] = 0
	queue := []int{src}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return dist[u], nil
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.walkable(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return 0, fmt.Errorf("%w: %s → %s", ErrNoPath, from, to)
}
