// Package scenario loads search scenarios (an ASCII map plus endpoints)
// from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrNoMap indicates the scenario has no map rows.
	ErrNoMap = errors.New("scenario: map is empty")
	// ErrMissingEndpoint indicates neither a coordinate nor a marker gives start or goal.
	ErrMissingEndpoint = errors.New("scenario: endpoint not given and marker not found")
	// ErrBadCoordinate indicates a start/goal entry that is not an [x, y] pair.
	ErrBadCoordinate = errors.New("scenario: coordinate must be [x, y]")
	// ErrBadMarker indicates a marker that is not exactly one character.
	ErrBadMarker = errors.New("scenario: marker must be a single character")
)

// Markers names the runes that mark start and goal on the map.
type Markers struct {
	Start string `yaml:"start,omitempty"`
	Goal  string `yaml:"goal,omitempty"`
}

// Scenario is the in-memory representation of a scenario file.
//
//	name: demo
//	map:
//	  - "+-----+"
//	  - "|A   B|"
//	  - "+-----+"
//	start: [1, 1]      # optional, overrides the start marker
//	goal: [5, 1]       # optional, overrides the goal marker
//	markers: {start: "A", goal: "B"}
//	open: " "          # runes treated as floor
//	max_steps: 0       # 0 = unlimited
type Scenario struct {
	Name     string   `yaml:"name,omitempty"`
	Map      []string `yaml:"map"`
	Start    []int    `yaml:"start,omitempty"`
	Goal     []int    `yaml:"goal,omitempty"`
	Markers  Markers  `yaml:"markers,omitempty"`
	Open     string   `yaml:"open,omitempty"`
	MaxSteps int      `yaml:"max_steps,omitempty"`
}

// Demo returns the built-in two-wall map used when no file is given.
func Demo() *Scenario {
	return &Scenario{
		Name: "demo",
		Map: []string{
			"+---------+",
			"|         |",
			"|A XX     |",
			"|XXX      |",
			"|   X     |",
			"| B       |",
			"|         |",
			"+---------+",
		},
	}
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scenario %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes scenario YAML and checks that a map is present.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("cannot parse scenario: %w", err)
	}
	if len(sc.Map) == 0 {
		return nil, ErrNoMap
	}
	return &sc, nil
}

// Marshal encodes the scenario back to YAML.
func (sc *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(sc)
}

// Build turns the scenario into a grid and resolved endpoints.
// Explicit coordinates win over markers.
func (sc *Scenario) Build() (*gridgraph.GridGraph, astar.Cell, astar.Cell, error) {
	var zero astar.Cell
	if len(sc.Map) == 0 {
		return nil, zero, zero, ErrNoMap
	}

	opts := []gridgraph.ParseOption{gridgraph.WithOpenRunes(sc.Open)}
	for _, m := range []struct {
		val string
		opt func(rune) gridgraph.ParseOption
	}{
		{sc.Markers.Start, gridgraph.WithStartMarker},
		{sc.Markers.Goal, gridgraph.WithGoalMarker},
	} {
		if m.val == "" {
			continue
		}
		if utf8.RuneCountInString(m.val) != 1 {
			return nil, zero, zero, fmt.Errorf("%w: %q", ErrBadMarker, m.val)
		}
		r, _ := utf8.DecodeRuneInString(m.val)
		opts = append(opts, m.opt(r))
	}

	gg, err := gridgraph.ParseRows(sc.Map, opts...)
	if err != nil {
		return nil, zero, zero, err
	}

	start, err := resolve("start", sc.Start, gg.Start)
	if err != nil {
		return nil, zero, zero, err
	}
	goal, err := resolve("goal", sc.Goal, gg.Goal)
	if err != nil {
		return nil, zero, zero, err
	}
	return gg, start, goal, nil
}

// StartMarker returns the configured start rune, or the gridgraph default.
func (sc *Scenario) StartMarker() rune {
	return markerRune(sc.Markers.Start, gridgraph.DefaultStartMarker)
}

// GoalMarker returns the configured goal rune, or the gridgraph default.
func (sc *Scenario) GoalMarker() rune {
	return markerRune(sc.Markers.Goal, gridgraph.DefaultGoalMarker)
}

func markerRune(s string, def rune) rune {
	if s == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// resolve prefers an explicit [x, y] pair and falls back to the marker.
func resolve(role string, xy []int, marker func() (astar.Cell, bool)) (astar.Cell, error) {
	if xy != nil {
		if len(xy) != 2 {
			return astar.Cell{}, fmt.Errorf("%w: %s has %d values", ErrBadCoordinate, role, len(xy))
		}
		return astar.Cell{X: xy[0], Y: xy[1]}, nil
	}
	if c, ok := marker(); ok {
		return c, nil
	}
	return astar.Cell{}, fmt.Errorf("%w: %s", ErrMissingEndpoint, role)
}
