package astar

// nodeState tracks a node's lifecycle: Unknown (absent) → frontier → closed.
type nodeState uint8

const (
	stateFrontier nodeState = iota + 1
	stateClosed
)

// node is the per-cell search record. parent is an index into the same
// node table (-1 for the start node), never a pointer.
type node struct {
	cell   Cell
	g      int       // accumulated cost from start
	h      int       // heuristic to goal, fixed at discovery
	f      int       // g + h
	parent int32     // predecessor index, -1 for start
	seq    uint64    // discovery order, kept across revisions
	state  nodeState // frontier or closed
	index  int       // position in the frontier heap, -1 once popped
}

// frontier is a min-heap of node indices ordered by (f, seq).
// Ties on f pop the node discovered first.
type frontier struct {
	nodes *[]node
	items []int32
}

// Len returns the number of items in the heap.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by f, then by discovery sequence.
func (q *frontier) Less(i, j int) bool {
	a, b := &(*q.nodes)[q.items[i]], &(*q.nodes)[q.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Swap swaps two elements and keeps their heap positions current.
func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	(*q.nodes)[q.items[i]].index = i
	(*q.nodes)[q.items[j]].index = j
}

// Push adds a node index onto the heap. Called by heap.Push.
func (q *frontier) Push(x any) {
	id := x.(int32)
	(*q.nodes)[id].index = len(q.items)
	q.items = append(q.items, id)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (q *frontier) Pop() any {
	old := q.items
	n := len(old)
	id := old[n-1]
	q.items = old[:n-1]
	(*q.nodes)[id].index = -1

	return id
}
