package ports

import "time"

// RunStore persists bench runs to durable storage.
// The backing store (bbolt) keys runs by their start timestamp.
// Writes are transactional: a crash mid-write must not corrupt
// previously committed runs.
type RunStore interface {
	// SaveRun persists a completed bench run.
	SaveRun(run *BenchRun) error

	// ListRuns returns the most recent runs, newest first.
	// limit <= 0 means all. Returns an empty slice for a fresh store.
	ListRuns(limit int) ([]*BenchRun, error)

	// Wipe removes all saved runs. Idempotent: wiping an empty store
	// is not an error.
	Wipe() error

	// Close releases the underlying database.
	Close() error
}

// BenchRun is one invocation of the bench harness: a pattern/text pair
// measured across a grid of (algorithm, workers) configurations.
type BenchRun struct {
	Started     time.Time     `json:"started"`
	PatternFile string        `json:"pattern_file"`
	TextFile    string        `json:"text_file"`
	PatternLen  int           `json:"pattern_len"`
	TextLen     int           `json:"text_len"`
	Repeat      int           `json:"repeat"`
	Results     []BenchResult `json:"results"`
}

// BenchResult aggregates the repeated measurements for one
// (algorithm, workers) configuration.
type BenchResult struct {
	Algorithm string  `json:"algorithm"`
	Workers   int     `json:"workers"`
	Matches   int     `json:"matches"`
	AvgSec    float64 `json:"time"`
	MinSec    float64 `json:"min_time"`
	MaxSec    float64 `json:"max_time"`
}
