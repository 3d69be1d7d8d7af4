package main

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boundedlogic/clpbnr/engine"
	"github.com/boundedlogic/clpbnr/ivl"
)

// loadAndRun opens the shared --script source, parses it, constructs a
// fresh Engine with default tunables, and declares/posts every statement
// in order, per spec.md §6's "process-wide, persist across queries"
// tunables note -- each invocation of clpbnrctl is its own process and so
// its own query session.
func loadAndRun() (*engine.Engine, map[string]*ivl.Interval, error) {
	f, err := openScript()
	if err != nil {
		return nil, nil, fmt.Errorf("opening script: %w", err)
	}
	if f != nil && scriptPath != "" {
		defer f.Close()
	}

	sc, err := parseScript(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing script: %w", err)
	}

	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("constructing engine: %w", err)
	}

	vars, err := sc.run(e)
	if err != nil {
		return nil, nil, err
	}
	return e, vars, nil
}

func newDeclareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "declare",
		Short: "run the script's declare/post lines and list every declared variable's domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, vars, err := loadAndRun()
			if err != nil {
				return err
			}
			for _, name := range sortedNames(vars) {
				lo, hi, kind := e.Domain(vars[name])
				logrus.WithFields(logrus.Fields{
					"kind": kind.String(),
					"lo":   lo.String(),
					"hi":   hi.String(),
				}).Info(name)
			}
			return nil
		},
	}
}

func newPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post",
		Short: "run the script's declare/post lines and report whether every constraint stayed consistent",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := loadAndRun()
			if err != nil {
				return err
			}
			logrus.Info("all constraints posted consistently")
			return nil
		},
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [variable ...]",
		Short: "run the script, then solve/1 the named variables and print each resulting enclosure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, vars, err := loadAndRun()
			if err != nil {
				return err
			}

			targets := make([]*ivl.Interval, 0, len(args))
			for _, name := range args {
				iv, ok := vars[name]
				if !ok {
					return fmt.Errorf("solve: undeclared variable %q", name)
				}
				targets = append(targets, iv)
			}

			ctx := cmd.Context()
			count := 0
			err = e.Solve(ctx, targets, func(vs []*ivl.Interval) (bool, error) {
				count++
				fields := logrus.Fields{"solution": count}
				for i, name := range args {
					lo, hi, _ := e.Domain(vs[i])
					fields[name] = fmt.Sprintf("[%s, %s]", lo.String(), hi.String())
				}
				logrus.WithFields(fields).Info("solve")
				return false, nil
			})
			if err != nil {
				return err
			}
			if count == 0 {
				logrus.Warn("solve: no solutions found")
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "run the script, then print clpStatistics/1-style propagation counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := loadAndRun()
			if err != nil {
				return err
			}
			snap := e.Counters().Snapshot()
			logrus.WithFields(logrus.Fields{
				"narrowing_ops":         snap.NarrowingOps,
				"failures":              snap.Failures,
				"nodes_total":           snap.NodesTotal,
				"iteration_budget_used": snap.IterationBudgetUsed,
			}).Info("stats")
			return nil
		},
	}
}

func sortedNames(vars map[string]*ivl.Interval) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
