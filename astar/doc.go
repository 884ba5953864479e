// Package astar implements A* shortest-path search on a 4-connected grid
// with uniform step cost.
//
// Overview:
//
//   - FindPath returns a shortest walkable path between two cells, or reports
//     that none exists (Result.Found == false, nil error).
//   - The grid is reached only through the Grid interface (IsWalkable), so any
//     map representation can be searched; see package gridpath/gridgraph for a
//     ready-made adapter.
//   - The heuristic is Manhattan distance, fixed. It is admissible and
//     consistent for orthogonal unit moves, which is what makes closed nodes
//     final.
//
// Ordering and determinism:
//
//   - The frontier is a binary heap keyed by (f, seq) where seq is the order
//     in which a cell was first discovered. Among equal f-scores the cell
//     discovered first is expanded first.
//   - Neighbors are enumerated up, down, left, right.
//   - Identical inputs therefore always yield the identical path.
//
// Relaxation:
//
//   - A frontier node is revised when the candidate g-cost (parent.g + 1) is
//     strictly lower than its stored g-cost. Since h never changes for a node,
//     this is equivalent to comparing f-scores.
//   - Closed nodes are never reopened. That rule would have to be relaxed if
//     step costs ever became non-uniform.
//
// Parent links are int32 indices into a per-call node table, so path
// reconstruction is a walk over a slice rather than pointer-chasing.
//
// Complexity:
//
//   - Time:  O(N log N) where N = number of cells reachable from start.
//   - Space: O(N).
//
// Options:
//
//   - WithContext(ctx):  cancellation, checked once per expansion.
//   - WithMaxSteps(n):   close at most n nodes, else ErrStepBudgetExceeded.
//   - WithOnClose(fn):   observer called once per closed node (rendering, tracing).
//   - WithLogger(l):     structured diagnostics, tagged with a per-search id.
//
// Errors (sentinel):
//
//   - ErrNilGrid            if the grid is nil.
//   - ErrInvalidEndpoint    if start or goal is blocked or out of bounds.
//   - ErrOptionViolation    if an option was given an invalid value.
//   - ErrStepBudgetExceeded if MaxSteps nodes were closed without a verdict.
//
// Concurrency:
//
//	Each call owns its state. Any number of searches may share one Grid as
//	long as the grid is not mutated while they run.
package astar
