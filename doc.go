// Package gridpath is a headless pathfinding engine for 2D grids: give it a
// map of walkable and blocked cells, a start and a goal, and it returns a
// shortest 4-directional route or tells you there is none.
//
// What lives where:
//
//	astar/     — the A* search engine: Cell, Grid contract, FindPath, options
//	gridgraph/ — a ready-made Grid: [][]int or ASCII maps, regions, BFS oracle
//	logging/   — small structured Logger interface over log/slog
//	cmd/       — the gridpath CLI (find, verify, version)
//
// Quick ASCII example:
//
//	+-----+
//	|A X  |      A → B must go around the wall:
//	|  X B|      (1,1) (1,2) (2,2) (2,3) (3,3) (4,3) (4,2) (5,2)
//	|     |
//	+-----+
//
//	gg, _ := gridgraph.ParseRows(rows)
//	start, _ := gg.Start()
//	goal, _ := gg.Goal()
//	res, err := astar.FindPath(gg, start, goal)
//
// Guarantees:
//
//   - Paths are shortest: Manhattan distance is consistent for unit moves.
//   - Output is deterministic: equal f-scores are expanded in discovery order.
//   - Searches share nothing, so one grid can serve many goroutines.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
