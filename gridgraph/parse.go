package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
)

// ParseRows builds a GridGraph from ASCII rows, one string per grid row.
// X indexes runes within a row, Y indexes rows.
//
// Open runes (space by default) and the two marker runes become walkable
// cells with value 1; every other rune becomes a wall with value 0.
// Marker positions are available through Start, Goal and Marker.
//
// Returns ErrEmptyGrid, ErrNonRectangular (rows of differing rune counts),
// or ErrDuplicateMarker (a marker seen twice, or start and goal sharing
// one rune).
func ParseRows(rows []string, opts ...ParseOption) (*GridGraph, error) {
	po := DefaultParseOptions()
	for _, opt := range opts {
		opt(&po)
	}
	if po.StartMarker == po.GoalMarker {
		return nil, fmt.Errorf("%w: start and goal both use %q", ErrDuplicateMarker, po.StartMarker)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, len(rows))
	markers := make(map[rune]astar.Cell, 2)
	w := -1
	for y, row := range rows {
		runes := []rune(row)
		if w < 0 {
			w = len(runes)
		} else if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), w)
		}
		values[y] = make([]int, w)
		for x, r := range runes {
			switch {
			case r == po.StartMarker || r == po.GoalMarker:
				if prev, dup := markers[r]; dup {
					return nil, fmt.Errorf("%w: %q at %s and (%d,%d)", ErrDuplicateMarker, r, prev, x, y)
				}
				markers[r] = astar.Cell{X: x, Y: y}
				values[y][x] = 1
			case strings.ContainsRune(po.OpenRunes, r):
				values[y][x] = 1
			}
		}
	}

	gg, err := NewGridGraph(values, DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	gg.markers = markers
	gg.startMarker = po.StartMarker
	gg.goalMarker = po.GoalMarker

	return gg, nil
}
