package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("clpbnrctl")
		os.Exit(1)
	}
}

// scriptPath is the shared --script/-f flag every subcommand reads its
// constraint script from; empty means stdin.
var scriptPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clpbnrctl",
		Short: "drive a CLP(BNR)-style interval constraint engine from a constraint script",
		Long: `clpbnrctl is a thin demonstration shell over package engine: each
subcommand reads the same small constraint script (declare/post lines, see
--script) and performs one spec.md §6 operation against it.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&scriptPath, "script", "f", "", "constraint script file (default: stdin)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(newDeclareCmd())
	cmd.AddCommand(newPostCmd())
	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newStatsCmd())

	return cmd
}

func openScript() (*os.File, error) {
	if scriptPath == "" {
		return os.Stdin, nil
	}
	return os.Open(scriptPath)
}
