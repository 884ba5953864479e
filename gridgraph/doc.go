// Package gridgraph treats a rectangular 2D grid of cells as the walkable
// map searched by package astar.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable WalkableThreshold.
//   - ParseRows builds a GridGraph from ASCII rows: space is open floor,
//     marker runes (start 'A', goal 'B' by default) are open and remembered,
//     every other rune is a wall.
//   - IsWalkable satisfies astar.Grid; out-of-bounds cells are never walkable.
//   - Identifies 4-connected components of walkable cells.
//   - ShortestDistance is a plain breadth-first oracle for move counts.
//
// Why:
//
//   - Game maps: route units between two tiles.
//   - Verification: cross-check heuristic search against exhaustive BFS.
//   - Topology analysis: find regions that can never reach each other.
//
// Complexity:
//
//   - NewGridGraph / ParseRows:  O(W×H), Memory: O(W×H).
//   - IsWalkable:                O(1).
//   - ConnectedComponents:       O(W×H), Memory: O(W×H).
//   - ComponentOf:               O(W×H) worst case.
//   - ShortestDistance:          O(W×H), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.WalkableThreshold: minimum value considered walkable.
//   - WithStartMarker / WithGoalMarker / WithOpenRunes for ParseRows.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDuplicateMarker: a marker rune appears more than once.
//   - ErrNotWalkable: a BFS endpoint is blocked or out of bounds.
//   - ErrNoPath: no walkable route exists between two cells.
package gridgraph
