package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hopfield",
		Short: "Hopfield associative memory over bipolar patterns",
		Long: `hopfield stores bipolar patterns in a Hopfield network and recalls
them from damaged probes.

Without --config it runs the built-in demo: a 3×3 checkerboard and its
complement, probed with the centre pixel flipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Scenario YAML file (defaults to the built-in demo)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRecallCmd(),
		newWeightsCmd(),
		newSimilarityCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
