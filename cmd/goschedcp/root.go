package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goschedcp",
		Short: "Disjunctive-scheduling bound propagation over the command line",
		Long: `goschedcp runs the detectable-precedences propagator from
pkg/disjunctive over a set of unary-resource tasks and prints the tightened
start-time bounds, without needing to embed it in a full CP model.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level propagation tracing")
	root.AddCommand(newRunCmd())
	return root
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
