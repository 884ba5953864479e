package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"Nil", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later writes to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	in := [][]int{{1, 1}}
	gg, err := gridgraph.NewGridGraph(in, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	in[0][1] = 0
	if !gg.IsWalkable(astar.Cell{X: 1, Y: 0}) {
		t.Error("mutating the input changed the grid")
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

//----------------------------------------------------------------------------//
// IsWalkable Tests
//----------------------------------------------------------------------------//

// TestIsWalkable_Threshold checks walls, floor and out-of-bounds cells.
func TestIsWalkable_Threshold(t *testing.T) {
	grid := [][]int{
		{0, 1, 2},
		{3, 0, 5},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.WalkableThreshold = 2
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	cases := []struct {
		c    astar.Cell
		want bool
	}{
		{astar.Cell{X: 0, Y: 0}, false},
		{astar.Cell{X: 1, Y: 0}, false}, // below threshold
		{astar.Cell{X: 2, Y: 0}, true},
		{astar.Cell{X: 0, Y: 1}, true},
		{astar.Cell{X: 2, Y: 1}, true},
		{astar.Cell{X: 3, Y: 1}, false}, // out of bounds
		{astar.Cell{X: 0, Y: -1}, false},
	}
	for _, tc := range cases {
		if got := gg.IsWalkable(tc.c); got != tc.want {
			t.Errorf("IsWalkable(%v) = %v; want %v", tc.c, got, tc.want)
		}
	}
}

// TestGridGraph_SatisfiesGrid is a compile-time style check that the adapter
// plugs straight into the engine.
func TestGridGraph_SatisfiesGrid(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{1}}, gridgraph.DefaultGridOptions())
	var g astar.Grid = gg
	if !g.IsWalkable(astar.Cell{}) {
		t.Error("single floor cell should be walkable")
	}
}

// TestCoordinate round-trips row-major indices.
func TestCoordinate(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	x, y := gg.Coordinate(4)
	if x != 1 || y != 1 {
		t.Errorf("Coordinate(4) = (%d,%d); want (1,1)", x, y)
	}
	if c := gg.CellAt(5); c != (astar.Cell{X: 2, Y: 1}) {
		t.Errorf("CellAt(5) = %v; want (2,1)", c)
	}
}
