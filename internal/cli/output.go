package cli

import (
	"fmt"
	"io"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Icon semantics:
//   ✓  success
//   ✗  failure
//   ~  neutral info

// printOK prints a success line.
func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✓  %s\n", msg)
}

// printFail prints a failure line.
func printFail(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✗  %s\n", msg)
}

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ~  %s\n", msg)
}

// printMap writes map rows verbatim.
func printMap(w io.Writer, rows []string) {
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
}
