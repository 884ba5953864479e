// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid.
//
// Grid (1 = floor, 0 = wall):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := NewGridGraph(grid, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_DiagonalsDoNotConnect checks that corner-touching
// cells stay separate: moves are orthogonal only.
//
// Grid:
//
//	1 0 1
//	0 1 0
//	1 0 1
//
// Expect: 5 single-cell components.
func TestConnectedComponents_DiagonalsDoNotConnect(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, _ := NewGridGraph(grid, DefaultGridOptions())

	comps := gg.ConnectedComponents()
	if len(comps) != 5 {
		t.Fatalf("got %d components; want 5", len(comps))
	}
	for i, c := range comps {
		if len(c) != 1 {
			t.Errorf("component %d size = %d; want 1", i, len(c))
		}
	}
}

// TestConnectedComponents_EmptyAndAllWall tests edge cases:
//   - completely blocked grid → zero components
//   - single floor cell → one component of size 1
func TestConnectedComponents_EmptyAndAllWall(t *testing.T) {
	gg1, _ := NewGridGraph([][]int{{0, 0}, {0, 0}}, DefaultGridOptions())
	if comps := gg1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-wall: got %d components; want 0", len(comps))
	}

	gg2, _ := NewGridGraph([][]int{{0, 1}}, DefaultGridOptions())
	comps2 := gg2.ConnectedComponents()
	if len(comps2) != 1 {
		t.Fatalf("single floor: got %d components; want 1", len(comps2))
	}
	if len(comps2[0]) != 1 || comps2[0][0] != gg2.index(1, 0) {
		t.Errorf("single floor: component = %v; want [%d]", comps2[0], gg2.index(1, 0))
	}
}

// TestComponentOf returns the sorted region around a cell, or nil for walls.
func TestComponentOf(t *testing.T) {
	gg, err := ParseRows([]string{
		"  #  ",
		" ##  ",
		"#    ",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	got := gg.ComponentOf(astar.Cell{X: 0, Y: 0})
	want := []astar.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComponentOf(0,0) = %v; want %v", got, want)
	}

	right := gg.ComponentOf(astar.Cell{X: 4, Y: 2})
	if len(right) != 8 {
		t.Errorf("ComponentOf(4,2) size = %d; want 8", len(right))
	}
	if right[0] != (astar.Cell{X: 3, Y: 0}) {
		t.Errorf("ComponentOf(4,2)[0] = %v; want (3,0)", right[0])
	}

	if c := gg.ComponentOf(astar.Cell{X: 2, Y: 0}); c != nil {
		t.Errorf("ComponentOf(wall) = %v; want nil", c)
	}
	if c := gg.ComponentOf(astar.Cell{X: -1, Y: 0}); c != nil {
		t.Errorf("ComponentOf(out of bounds) = %v; want nil", c)
	}
}
