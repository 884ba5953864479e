package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFrontier pushes nodes with the given f-scores in order,
// using the push position as the discovery sequence.
func newTestFrontier(fs ...int) (*frontier, *[]node) {
	nodes := make([]node, 0, len(fs))
	q := &frontier{nodes: &nodes}
	for i, f := range fs {
		nodes = append(nodes, node{cell: Cell{X: i}, f: f, seq: uint64(i), parent: -1})
		heap.Push(q, int32(i))
	}
	return q, &nodes
}

func popAll(q *frontier) []int32 {
	var out []int32
	for q.Len() > 0 {
		out = append(out, heap.Pop(q).(int32))
	}
	return out
}

func TestFrontier_OrdersByFThenSeq(t *testing.T) {
	q, _ := newTestFrontier(5, 3, 5, 3, 4)
	assert.Equal(t, []int32{1, 3, 4, 0, 2}, popAll(q))
}

func TestFrontier_TracksIndex(t *testing.T) {
	q, nodes := newTestFrontier(9, 8, 7, 6)
	for pos, id := range q.items {
		require.Equal(t, pos, (*nodes)[id].index)
	}
	id := heap.Pop(q).(int32)
	assert.Equal(t, -1, (*nodes)[id].index)
}

// A revised node keeps its discovery sequence, so after a decrease it still
// loses ties against nodes discovered before it.
func TestFrontier_FixAfterDecrease(t *testing.T) {
	q, nodes := newTestFrontier(6, 6, 8)

	n := &(*nodes)[2]
	n.f = 6
	heap.Fix(q, n.index)

	assert.Equal(t, []int32{0, 1, 2}, popAll(q))
}

func TestReconstruct(t *testing.T) {
	r := &runner{nodes: []node{
		{cell: Cell{X: 0}, parent: -1},
		{cell: Cell{X: 1}, parent: 0, g: 1},
		{cell: Cell{X: 9}, parent: 0, g: 1},
		{cell: Cell{X: 2}, parent: 1, g: 2},
	}}
	assert.Equal(t, []Cell{{X: 0}, {X: 1}, {X: 2}}, r.reconstruct(3))
	assert.Equal(t, []Cell{{X: 0}}, r.reconstruct(0))
}
