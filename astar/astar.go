package astar

import (
	"container/heap"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/logging"
)

// neighborOffsets lists the 4 orthogonal moves in expansion order:
// up, down, left, right.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// FindPath searches g for a shortest 4-directional path from start to goal.
//
// Returns:
//
//   - res.Found == true with res.Path running start → goal inclusive.
//   - res.Found == false with a nil error when the goal is unreachable.
//   - err for invalid input, cancellation, or an exhausted step budget.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be walkable (ErrInvalidEndpoint).
//
// Complexity:
//
//   - Time:  O(N log N) where N = cells reachable from start.
//   - Space: O(N) for the node table, index and heap.
func FindPath(g Grid, start, goal Cell, opts ...Option) (*Result, error) {
	// 1) Validate grid
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Validate endpoints before touching any neighbor
	if !g.IsWalkable(start) {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidEndpoint, start)
	}
	if !g.IsWalkable(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrInvalidEndpoint, goal)
	}

	r := newRunner(g, start, goal, o)
	r.log.Debug("astar: search started",
		"start", start.String(), "goal", goal.String(), "max_steps", o.MaxSteps)

	res, err := r.run()
	if err != nil {
		r.log.Warn("astar: search aborted", "error", err.Error(), "expanded", len(r.closed))
		return nil, err
	}
	r.log.Info("astar: search finished",
		"found", res.Found, "cost", res.Cost, "expanded", res.Expanded())

	return res, nil
}

// runner holds the mutable state for a single search.
// Nothing in it outlives the FindPath call that created it.
type runner struct {
	grid   Grid
	goal   Cell
	opts   Options
	log    logging.Logger
	nodes  []node         // node table; parent links index into it
	lookup map[Cell]int32 // cell → node index, for frontier and closed nodes
	open   frontier
	closed []Cell
	seq    uint64
}

func newRunner(g Grid, start, goal Cell, o Options) *runner {
	r := &runner{
		grid:   g,
		goal:   goal,
		opts:   o,
		log:    o.Logger,
		nodes:  make([]node, 0, 64),
		lookup: make(map[Cell]int32, 64),
	}
	r.open.nodes = &r.nodes

	// The silent default logger gets no search id.
	if _, silent := o.Logger.(logging.NoOpLogger); !silent {
		r.log = logging.With(o.Logger, "search_id", uuid.NewString())
	}

	// Seed the frontier with the start node (no parent).
	r.discover(start, 0, -1)

	return r
}

// discover creates the node for a previously unknown cell and pushes it
// onto the frontier.
func (r *runner) discover(c Cell, g int, parent int32) {
	h := Manhattan(c, r.goal)
	id := int32(len(r.nodes))
	r.nodes = append(r.nodes, node{
		cell:   c,
		g:      g,
		h:      h,
		f:      g + h,
		parent: parent,
		seq:    r.seq,
		state:  stateFrontier,
	})
	r.seq++
	r.lookup[c] = id
	heap.Push(&r.open, id)
}

// run is the main loop: pop the best frontier node, close it, stop at the
// goal, otherwise relax its neighbors.
func (r *runner) run() (*Result, error) {
	for r.open.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}
		if r.opts.MaxSteps > 0 && len(r.closed) >= r.opts.MaxSteps {
			return nil, fmt.Errorf("%w: closed %d nodes", ErrStepBudgetExceeded, len(r.closed))
		}

		id := heap.Pop(&r.open).(int32)
		cur := &r.nodes[id]
		cur.state = stateClosed
		r.closed = append(r.closed, cur.cell)
		r.opts.OnClose(cur.cell, cur.g)

		if cur.cell == r.goal {
			path := r.reconstruct(id)
			return &Result{Found: true, Path: path, Cost: len(path) - 1, Closed: r.closed}, nil
		}

		r.expand(id)
	}

	return &Result{Found: false, Closed: r.closed}, nil
}

// expand relaxes every walkable orthogonal neighbor of the closed node id.
//
// Closed neighbors are never reopened. This is only sound because every
// step costs 1 and Manhattan distance is consistent.
func (r *runner) expand(id int32) {
	from := r.nodes[id].cell
	candidate := r.nodes[id].g + 1

	for _, d := range neighborOffsets {
		c := Cell{X: from.X + d[0], Y: from.Y + d[1]}
		if !r.grid.IsWalkable(c) {
			continue
		}

		nid, known := r.lookup[c]
		if !known {
			r.discover(c, candidate, id)
			continue
		}

		// r.nodes is not appended to below, so the pointer stays valid.
		nb := &r.nodes[nid]
		if nb.state == stateClosed {
			continue
		}
		// h is fixed per node, so comparing g is the same as comparing f.
		if candidate < nb.g {
			nb.g = candidate
			nb.f = candidate + nb.h
			nb.parent = id
			heap.Fix(&r.open, nb.index)
		}
	}
}

// reconstruct walks parent indices from id back to the start node and
// returns the cells in start → id order.
func (r *runner) reconstruct(id int32) []Cell {
	path := make([]Cell, 0, r.nodes[id].g+1)
	for at := id; at >= 0; at = r.nodes[at].parent {
		path = append(path, r.nodes[at].cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
