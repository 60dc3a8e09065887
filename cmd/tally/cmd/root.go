package cmd

import (
	"os"

	"github.com/go-tally/tally/logging"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "tally",
		Short: "Reconciliation reporting for tabular financial data",
	}

	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug-level detail")
}

func newLogger() *logging.Logger {
	level := logging.InfoLevel
	if verbose {
		level = logging.DebugLevel
	}
	return logging.New(os.Stderr, level)
}

// Execute runs the root command, exiting non-zero on any failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
