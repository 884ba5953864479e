// Package cli wires the gridpath command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
}

// NewRootCmd builds a fresh command tree. Tests use it to run commands in
// isolation; Execute uses it for the real process.
func NewRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:          "gridpath",
		Short:        "gridpath — shortest walkable paths on ASCII grids",
		SilenceUsage: true, // don't print usage on operational errors
		Long: `gridpath finds a shortest 4-directional path between two cells of an
ASCII map using A* with a Manhattan heuristic.

Maps come from a YAML scenario file (-f) or the built-in demo.`,
	}
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&gf.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(newFindCmd(gf), newVerifyCmd(gf), newVersionCmd())
	return root
}

// logger builds the structured logger selected by the global flags.
// Logs go to the command's stderr so they never mix with rendered maps.
func (gf *globalFlags) logger(cmd *cobra.Command) (logging.Logger, error) {
	level, err := logging.ParseLevel(gf.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewSlogLogger(level, gf.logFormat, cmd.ErrOrStderr()), nil
}

// Execute is called by main.go.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
