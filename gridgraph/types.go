// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "github.com/katalvlaran/gridpath/astar"

// Default marker runes, matching the classic "A to B" ASCII maps.
const (
	DefaultStartMarker = 'A'
	DefaultGoalMarker  = 'B'
	DefaultOpenRunes   = " "
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// WalkableThreshold specifies the minimum cell value considered walkable.
	WalkableThreshold int
}

// DefaultGridOptions returns a GridOptions with default settings:
// WalkableThreshold=1 (values ≥1 are walkable).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WalkableThreshold: 1,
	}
}

// ParseOption configures ParseRows via functional arguments.
type ParseOption func(*ParseOptions)

// ParseOptions controls how ASCII rows are turned into cells.
type ParseOptions struct {
	// StartMarker and GoalMarker are walkable runes whose position is recorded.
	StartMarker, GoalMarker rune
	// OpenRunes lists runes treated as open floor. Every other rune,
	// except the markers, is a wall.
	OpenRunes string
}

// DefaultParseOptions returns 'A' as start, 'B' as goal, and space as floor.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		StartMarker: DefaultStartMarker,
		GoalMarker:  DefaultGoalMarker,
		OpenRunes:   DefaultOpenRunes,
	}
}

// WithStartMarker sets the rune that marks the start cell.
func WithStartMarker(r rune) ParseOption {
	return func(o *ParseOptions) { o.StartMarker = r }
}

// WithGoalMarker sets the rune that marks the goal cell.
func WithGoalMarker(r rune) ParseOption {
	return func(o *ParseOptions) { o.GoalMarker = r }
}

// WithOpenRunes replaces the set of floor runes. An empty string is ignored.
func WithOpenRunes(runes string) ParseOption {
	return func(o *ParseOptions) {
		if runes != "" {
			o.OpenRunes = runes
		}
	}
}

// GridGraph treats a 2D integer grid as a walkable map. It is immutable once
// built, so one instance may serve any number of concurrent searches.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	WalkableThreshold int
	markers           map[rune]astar.Cell
	startMarker       rune
	goalMarker        rune
}
