// Package bench runs repeated, timed match counts across a grid of
// (algorithm, workers) configurations and aggregates the measurements:
// fixed pattern/text pair, N repeats per configuration, avg/min/max
// seconds, speedup relative to the single-worker baseline.
package bench

import (
	"fmt"
	"time"

	"github.com/corey/smatch/internal/match"
	"github.com/corey/smatch/internal/ports"
)

// Config describes one bench run over an already-loaded pattern/text pair.
type Config struct {
	PatternFile string
	TextFile    string
	Pattern     []byte
	Text        []byte
	Algorithms  []string // registry names; empty means all
	Workers     []int    // worker counts to sweep; empty means [1]
	Repeat      int
}

// Run executes the full configuration grid. Each (algorithm, workers)
// cell is measured Repeat times; the timed region is the complete count
// call, preprocessing included. Match counts are deterministic, so the
// count from the first repeat is recorded and the rest only contribute
// timings.
func Run(cfg Config) (*ports.BenchRun, error) {
	if cfg.Repeat < 1 {
		return nil, fmt.Errorf("repeat must be >= 1, got %d", cfg.Repeat)
	}
	names := cfg.Algorithms
	if len(names) == 0 {
		names = match.Names()
	}
	workers := cfg.Workers
	if len(workers) == 0 {
		workers = []int{1}
	}
	for _, w := range workers {
		if w < 1 {
			return nil, fmt.Errorf("workers must be >= 1, got %d", w)
		}
	}

	matchers := make([]ports.Matcher, len(names))
	for i, name := range names {
		m, err := match.Lookup(name)
		if err != nil {
			return nil, err
		}
		matchers[i] = m
	}

	run := &ports.BenchRun{
		Started:     time.Now(),
		PatternFile: cfg.PatternFile,
		TextFile:    cfg.TextFile,
		PatternLen:  len(cfg.Pattern),
		TextLen:     len(cfg.Text),
		Repeat:      cfg.Repeat,
	}

	for _, m := range matchers {
		for _, w := range workers {
			run.Results = append(run.Results, measure(m, cfg.Text, cfg.Pattern, w, cfg.Repeat))
		}
	}
	return run, nil
}

func measure(m ports.Matcher, text, pattern []byte, workers, repeat int) ports.BenchResult {
	res := ports.BenchResult{
		Algorithm: m.Name(),
		Workers:   workers,
	}

	for i := 0; i < repeat; i++ {
		start := time.Now()
		count := match.CountParallel(m, text, pattern, workers)
		sec := time.Since(start).Seconds()

		if i == 0 {
			res.Matches = count
			res.MinSec = sec
			res.MaxSec = sec
		}
		if sec < res.MinSec {
			res.MinSec = sec
		}
		if sec > res.MaxSec {
			res.MaxSec = sec
		}
		res.AvgSec += sec
	}
	res.AvgSec /= float64(repeat)
	return res
}

// Speedup is one point of a per-algorithm scaling curve.
type Speedup struct {
	Workers    int
	Speedup    float64 // baseline avg / this avg
	Efficiency float64 // speedup / workers, as a fraction
}

// Speedups computes the scaling curve for one algorithm relative to its
// own 1-worker measurement. Returns nil if the run has no 1-worker
// baseline for that algorithm or the baseline time is zero.
func Speedups(run *ports.BenchRun, algorithm string) []Speedup {
	var base float64
	for _, r := range run.Results {
		if r.Algorithm == algorithm && r.Workers == 1 {
			base = r.AvgSec
			break
		}
	}
	if base <= 0 {
		return nil
	}

	var curve []Speedup
	for _, r := range run.Results {
		if r.Algorithm != algorithm || r.AvgSec <= 0 {
			continue
		}
		s := base / r.AvgSec
		curve = append(curve, Speedup{
			Workers:    r.Workers,
			Speedup:    s,
			Efficiency: s / float64(r.Workers),
		})
	}
	return curve
}
