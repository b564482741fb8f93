package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/smatch/internal/match"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available matching algorithms",
	Args:  cobra.NoArgs,
	RunE:  runAlgorithms,
}

func runAlgorithms(cmd *cobra.Command, args []string) error {
	for _, a := range match.All() {
		fmt.Printf("  %-4s %s\n", a.Matcher.Name(), a.Description)
	}
	return nil
}
