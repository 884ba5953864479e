// Package logging provides the minimal structured logging interface used by
// gridpath packages.
//
// The Logger interface carries the four levels the search engine and the CLI
// need (Debug, Info, Warn, Error) with slog-style key/value arguments.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping *slog.Logger
//   - NoOpLogger for silent operation (library default, tests)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", os.Stderr)
//	res, err := astar.FindPath(gg, start, goal, astar.WithLogger(logger))
package logging
