// Package bbolt implements the ports.RunStore interface using bbolt
// (embedded B+ tree). Bench runs live in a single "runs" bucket keyed by
// their start timestamp, values JSON-serialized. Writes are
// transactional — a crash mid-write cannot corrupt previously committed
// runs.
package bbolt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/smatch/internal/ports"
)

var bucketRuns = []byte("runs")

// DefaultPath is the bench-history database location, relative to the
// working directory.
const DefaultPath = ".smatch/bench.db"

// Store implements ports.RunStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path,
// creating parent directories as needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// runKey orders runs chronologically in the bucket. RFC3339Nano sorts
// lexicographically for timestamps in the same zone, so a reverse cursor
// walk yields newest-first.
func runKey(run *ports.BenchRun) []byte {
	return []byte(run.Started.UTC().Format(time.RFC3339Nano))
}

// SaveRun persists a completed bench run.
func (s *Store) SaveRun(run *ports.BenchRun) error {
	if run == nil {
		return fmt.Errorf("nil run")
	}
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		return b.Put(runKey(run), data)
	})
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(limit int) ([]*ports.BenchRun, error) {
	var runs []*ports.BenchRun

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			var run ports.BenchRun
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("unmarshal run %q: %w", k, err)
			}
			runs = append(runs, &run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Wipe removes all saved runs. Idempotent.
func (s *Store) Wipe() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketRuns); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}
