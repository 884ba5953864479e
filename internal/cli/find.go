package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/scenario"
)

type findFlags struct {
	file     string
	maxSteps int
	noRender bool
	trace    bool
}

func newFindCmd(gf *globalFlags) *cobra.Command {
	ff := &findFlags{maxSteps: -1}
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a shortest path and draw it on the map",
		Long: `Runs A* on the scenario map and prints the map with closed cells
marked '.' and the path marked '*', followed by a summary.

An unreachable goal is reported but is not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, gf, ff)
		},
	}
	cmd.Flags().StringVarP(&ff.file, "file", "f", "", "scenario YAML file (default: built-in demo)")
	cmd.Flags().IntVar(&ff.maxSteps, "max-steps", -1, "close at most N nodes (0 = unlimited, default: scenario value)")
	cmd.Flags().BoolVar(&ff.noRender, "no-render", false, "print only the summary")
	cmd.Flags().BoolVar(&ff.trace, "trace", false, "print every cell as it is closed")
	return cmd
}

// loadScenario reads the -f file, or falls back to the demo map.
func loadScenario(file string) (*scenario.Scenario, error) {
	if file == "" {
		return scenario.Demo(), nil
	}
	return scenario.Load(file)
}

func runFind(cmd *cobra.Command, gf *globalFlags, ff *findFlags) error {
	out := cmd.OutOrStdout()
	log, err := gf.logger(cmd)
	if err != nil {
		return err
	}

	sc, err := loadScenario(ff.file)
	if err != nil {
		return err
	}
	gg, start, goal, err := sc.Build()
	if err != nil {
		return err
	}

	budget := sc.MaxSteps
	if ff.maxSteps >= 0 {
		budget = ff.maxSteps
	}
	opts := []astar.Option{
		astar.WithContext(cmd.Context()),
		astar.WithMaxSteps(budget),
		astar.WithLogger(log),
	}
	if ff.trace {
		opts = append(opts, astar.WithOnClose(func(c astar.Cell, g int) {
			fmt.Fprintf(out, "close %v g=%d\n", c, g)
		}))
	}

	res, err := astar.FindPath(gg, start, goal, opts...)
	if err != nil {
		return fmt.Errorf("find %v → %v: %w", start, goal, err)
	}

	if !ff.noRender {
		printMap(out, render.Overlay(sc.Map, res.Closed, res.Path, sc.StartMarker(), sc.GoalMarker()))
	}
	if !res.Found {
		printFail(out, fmt.Sprintf("no path from %v to %v (expanded %d)", start, goal, res.Expanded()))
		return nil
	}
	printOK(out, fmt.Sprintf("path %v → %v: %d moves, expanded %d", start, goal, res.Cost, res.Expanded()))
	return nil
}
