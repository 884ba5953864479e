// Package astar defines core types, options, and sentinel errors
// for A* search over a 4-connected grid of uniform step cost.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/logging"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal is not walkable
	// (blocked or outside the grid). The search never begins.
	ErrInvalidEndpoint = errors.New("astar: endpoint is not walkable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrStepBudgetExceeded is returned when the search closed MaxSteps
	// nodes without reaching the goal or exhausting the frontier.
	ErrStepBudgetExceeded = errors.New("astar: step budget exceeded")
)

// Cell is a grid coordinate: X is the column, Y is the row.
// Two cells are equal iff both components match, so Cell is used
// directly as a map key.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the only capability the engine needs from a map.
//
// IsWalkable must return false for out-of-bounds cells and must not change
// while a search is in flight.
type Grid interface {
	IsWalkable(c Cell) bool
}

// GridFunc adapts an ordinary function to the Grid interface.
type GridFunc func(c Cell) bool

// IsWalkable calls f(c).
func (f GridFunc) IsWalkable(c Cell) bool { return f(c) }

// Manhattan returns |Δx| + |Δy|, the heuristic used by FindPath.
// It is consistent for 4-directional unit-cost moves.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Option configures FindPath via functional arguments.
// If an Option is invalid (e.g. negative budget), it is recorded
// internally and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// Options holds parameters and hooks for a single search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// MaxSteps, if > 0, caps the number of nodes closed.
	// A value of 0 disables the budget.
	MaxSteps int

	// OnClose is invoked once per node moved to the closed set,
	// with the cell and its final g-cost.
	OnClose func(c Cell, g int)

	// Logger receives one line when a search starts and one when it ends.
	Logger logging.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no step budget
//   - no-op OnClose hook
//   - silent logger
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnClose:  func(Cell, int) {},
		Logger:   logging.NoOpLogger{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds worst-case exploration.
//
//	n > 0: close at most n nodes
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnClose registers an observer called each time a node is closed.
// The hook cannot influence the search.
func WithOnClose(fn func(c Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search:
//   - Found: whether the goal was reached. A false value with a nil error
//     is the normal "no path" outcome.
//   - Path: cells from start to goal inclusive (nil when not found).
//   - Cost: number of moves along Path.
//   - Closed: cells in the order they were closed.
type Result struct {
	Found  bool
	Path   []Cell
	Cost   int
	Closed []Cell
}

// Len returns the number of moves in the path, or -1 if no path was found.
func (r *Result) Len() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Expanded returns how many nodes were closed.
func (r *Result) Expanded() int {
	return len(r.Closed)
}
