package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// errMismatch is returned when A* and BFS disagree.
var errMismatch = errors.New("verify: A* and BFS disagree")

func newVerifyCmd(gf *globalFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the A* path length against breadth-first search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, gf, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario YAML file (default: built-in demo)")
	return cmd
}

func runVerify(cmd *cobra.Command, gf *globalFlags, file string) error {
	out := cmd.OutOrStdout()
	log, err := gf.logger(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(file)
	if err != nil {
		return err
	}
	gg, start, goal, err := sc.Build()
	if err != nil {
		return err
	}

	res, err := astar.FindPath(gg, start, goal, astar.WithContext(cmd.Context()), astar.WithLogger(log))
	if err != nil {
		return err
	}
	want, bfsErr := gg.ShortestDistance(start, goal)

	switch {
	case errors.Is(bfsErr, gridgraph.ErrNoPath):
		if res.Found {
			return fmt.Errorf("%w: A* found %d moves, BFS found no path", errMismatch, res.Cost)
		}
		printOK(out, "both agree: no path")
		return nil
	case bfsErr != nil:
		return bfsErr
	case !res.Found:
		return fmt.Errorf("%w: BFS found %d moves, A* found no path", errMismatch, want)
	case res.Cost != want:
		return fmt.Errorf("%w: A* %d moves, BFS %d moves", errMismatch, res.Cost, want)
	}

	printOK(out, fmt.Sprintf("both agree: %d moves", want))
	printInfo(out, fmt.Sprintf("A* expanded %d cells", res.Expanded()))
	return nil
}
