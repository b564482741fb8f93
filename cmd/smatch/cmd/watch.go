package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	adapter "github.com/corey/smatch/internal/adapters/fsnotify"
	"github.com/corey/smatch/internal/match"
)

var (
	watchAlgorithm string
	watchWorkers   int
)

var watchCmd = &cobra.Command{
	Use:   "watch <pattern_file> <text_file>",
	Short: "Re-count whenever an input file changes",
	Long:  "Runs the count once, then watches both input files and reruns the count on every change. Stop with Ctrl-C.",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringVarP(&watchAlgorithm, "algorithm", "a", "kmp", "Matching algorithm: "+strings.Join(match.Names(), ", "))
	f.IntVarP(&watchWorkers, "workers", "w", 1, "Concurrent workers (text is scanned in chunks)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	m, err := match.Lookup(watchAlgorithm)
	if err != nil {
		return err
	}
	patternFile, textFile := args[0], args[1]

	if err := reportCount(m, patternFile, textFile, watchWorkers); err != nil {
		return err
	}

	w, err := adapter.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	// Serialize reruns: a change during a long count queues one rerun
	// instead of overlapping reports.
	changes := make(chan string, 1)
	err = w.Watch([]string{patternFile, textFile}, func(path string) {
		select {
		case changes <- path:
		default:
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "watching %s and %s (Ctrl-C to stop)\n", patternFile, textFile)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case path := <-changes:
			fmt.Fprintf(os.Stderr, "%s changed\n", path)
			if err := reportCount(m, patternFile, textFile, watchWorkers); err != nil {
				// Input may be mid-replace; report and keep watching.
				fmt.Fprintf(os.Stderr, "smatch: %v\n", err)
			}
		case <-sigCh:
			return w.Stop()
		}
	}
}
