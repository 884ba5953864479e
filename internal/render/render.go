// Package render draws search results onto ASCII maps.
package render

import (
	"github.com/katalvlaran/gridpath/astar"
)

// Runes written by Overlay.
const (
	ClosedRune = '.'
	PathRune   = '*'
)

// Overlay returns a copy of rows with every closed cell drawn as ClosedRune
// and every path cell drawn as PathRune, the path on top. Runes listed in
// keep (typically the start and goal markers) are never overwritten, and
// cells outside rows are ignored. rows itself is not modified.
func Overlay(rows []string, closed, path []astar.Cell, keep ...rune) []string {
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}

	paint := func(cells []astar.Cell, r rune) {
		for _, c := range cells {
			if c.Y < 0 || c.Y >= len(grid) || c.X < 0 || c.X >= len(grid[c.Y]) {
				continue
			}
			if kept(grid[c.Y][c.X], keep) {
				continue
			}
			grid[c.Y][c.X] = r
		}
	}
	paint(closed, ClosedRune)
	paint(path, PathRune)

	out := make([]string, len(grid))
	for y, row := range grid {
		out[y] = string(row)
	}
	return out
}

func kept(r rune, keep []rune) bool {
	for _, k := range keep {
		if r == k {
			return true
		}
	}
	return false
}
