package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	adapter "github.com/corey/smatch/internal/adapters/bbolt"
	"github.com/corey/smatch/internal/bench"
	"github.com/corey/smatch/internal/ports"
	"github.com/corey/smatch/internal/textio"
)

var (
	benchAlgorithms []string
	benchWorkers    []int
	benchRepeat     int
	benchCSV        string
	benchSave       bool
	benchDB         string
)

var benchCmd = &cobra.Command{
	Use:   "bench <pattern_file> <text_file>",
	Short: "Compare matching algorithms and worker counts",
	Long:  "Runs every selected (algorithm, workers) configuration repeatedly over the same pattern/text pair and reports avg/min/max timings plus per-algorithm speedup relative to a single worker.",
	Args:  cobra.ExactArgs(2),
	RunE:  runBench,
}

func init() {
	f := benchCmd.Flags()
	f.StringSliceVar(&benchAlgorithms, "algorithms", nil, "Algorithms to bench (default all)")
	f.IntSliceVar(&benchWorkers, "workers", []int{1, 2, 4, 8}, "Worker counts to sweep")
	f.IntVar(&benchRepeat, "repeat", 3, "Timed runs per configuration")
	f.StringVar(&benchCSV, "csv", "", "Also write results to a CSV file")
	f.BoolVar(&benchSave, "save", false, "Persist the run to bench history")
	f.StringVar(&benchDB, "db", adapter.DefaultPath, "Bench history database path")
}

func runBench(cmd *cobra.Command, args []string) error {
	pattern, err := textio.Load(args[0])
	if err != nil {
		return err
	}
	text, err := textio.Load(args[1])
	if err != nil {
		return err
	}

	run, err := bench.Run(bench.Config{
		PatternFile: args[0],
		TextFile:    args[1],
		Pattern:     pattern,
		Text:        text,
		Algorithms:  benchAlgorithms,
		Workers:     benchWorkers,
		Repeat:      benchRepeat,
	})
	if err != nil {
		return err
	}

	printRun(run)

	if benchCSV != "" {
		if err := writeCSVFile(benchCSV, run); err != nil {
			return err
		}
		fmt.Printf("\nresults written to %s\n", benchCSV)
	}

	if benchSave {
		store, err := adapter.NewStore(benchDB)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveRun(run); err != nil {
			return err
		}
		fmt.Printf("\nrun saved to %s\n", benchDB)
	}
	return nil
}

func printRun(run *ports.BenchRun) {
	fmt.Printf("pattern %s (%d bytes), text %s (%d bytes), repeat %d\n\n",
		run.PatternFile, run.PatternLen, run.TextFile, run.TextLen, run.Repeat)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tWORKERS\tMATCHES\tAVG(s)\tMIN(s)\tMAX(s)")
	for _, r := range run.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%.6f\t%.6f\n",
			r.Algorithm, r.Workers, r.Matches, r.AvgSec, r.MinSec, r.MaxSec)
	}
	tw.Flush()

	printed := false
	for _, name := range benchedAlgorithms(run) {
		curve := bench.Speedups(run, name)
		if len(curve) < 2 {
			continue
		}
		if !printed {
			fmt.Println("\nspeedup vs 1 worker:")
			printed = true
		}
		fmt.Printf("  %s:", name)
		for _, s := range curve {
			if s.Workers == 1 {
				continue
			}
			fmt.Printf("  %dw %.2fx (%.0f%%)", s.Workers, s.Speedup, s.Efficiency*100)
		}
		fmt.Println()
	}
}

// benchedAlgorithms returns the distinct algorithm names of a run, in
// first-seen order.
func benchedAlgorithms(run *ports.BenchRun) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range run.Results {
		if !seen[r.Algorithm] {
			seen[r.Algorithm] = true
			names = append(names, r.Algorithm)
		}
	}
	return names
}

func writeCSVFile(path string, run *ports.BenchRun) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := bench.WriteCSV(f, run); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
