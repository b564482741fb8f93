package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "smatch",
	Short:         "smatch — exact string matching toolkit",
	Long:          "Counts occurrences of a file-supplied pattern in a text file, with interchangeable matching algorithms and a benchmark harness for comparing them.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(algorithmsCmd)
}
