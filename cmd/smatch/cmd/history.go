package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	adapter "github.com/corey/smatch/internal/adapters/bbolt"
)

var (
	historyDB    string
	historyLimit int
	historyWipe  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved bench runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.StringVar(&historyDB, "db", adapter.DefaultPath, "Bench history database path")
	f.IntVar(&historyLimit, "limit", 10, "Show at most N runs (0 = all)")
	f.BoolVar(&historyWipe, "wipe", false, "Delete all saved runs")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := adapter.NewStore(historyDB)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyWipe {
		if err := store.Wipe(); err != nil {
			return err
		}
		fmt.Println("bench history wiped")
		return nil
	}

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs. Record one with: smatch bench --save")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s vs %s  (%d/%d bytes, repeat %d)\n",
			run.Started.Local().Format(time.RFC3339),
			run.PatternFile, run.TextFile,
			run.PatternLen, run.TextLen, run.Repeat)
		for _, r := range run.Results {
			fmt.Printf("    %-4s workers=%-3d matches=%-10d avg=%.6fs min=%.6fs max=%.6fs\n",
				r.Algorithm, r.Workers, r.Matches, r.AvgSec, r.MinSec, r.MaxSec)
		}
	}
	return nil
}
