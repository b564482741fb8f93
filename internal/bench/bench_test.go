package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/smatch/internal/ports"
)

func TestRunFullGrid(t *testing.T) {
	run, err := Run(Config{
		PatternFile: "pat.txt",
		TextFile:    "text.txt",
		Pattern:     []byte("aa"),
		Text:        []byte("aaaa"),
		Algorithms:  []string{"kmp", "bf"},
		Workers:     []int{1, 2},
		Repeat:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, "pat.txt", run.PatternFile)
	assert.Equal(t, "text.txt", run.TextFile)
	assert.Equal(t, 2, run.PatternLen)
	assert.Equal(t, 4, run.TextLen)
	assert.Equal(t, 3, run.Repeat)
	require.Len(t, run.Results, 4) // 2 algorithms x 2 worker counts

	for _, r := range run.Results {
		assert.Equal(t, 3, r.Matches, "%s/%d", r.Algorithm, r.Workers)
		assert.GreaterOrEqual(t, r.MaxSec, r.AvgSec)
		assert.GreaterOrEqual(t, r.AvgSec, r.MinSec)
		assert.GreaterOrEqual(t, r.MinSec, 0.0)
	}
}

func TestRunDefaults(t *testing.T) {
	run, err := Run(Config{
		Pattern: []byte("b"),
		Text:    []byte("abba"),
		Repeat:  1,
	})
	require.NoError(t, err)

	// All registered algorithms, single worker count.
	require.Len(t, run.Results, 4)
	for _, r := range run.Results {
		assert.Equal(t, 1, r.Workers)
		assert.Equal(t, 2, r.Matches)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(Config{Repeat: 0})
	assert.ErrorContains(t, err, "repeat")

	_, err = Run(Config{Repeat: 1, Workers: []int{0}})
	assert.ErrorContains(t, err, "workers")

	_, err = Run(Config{Repeat: 1, Algorithms: []string{"nope"}})
	assert.ErrorContains(t, err, "nope")
}

func TestSpeedups(t *testing.T) {
	run := &ports.BenchRun{
		Results: []ports.BenchResult{
			{Algorithm: "kmp", Workers: 1, AvgSec: 4.0},
			{Algorithm: "kmp", Workers: 2, AvgSec: 2.0},
			{Algorithm: "kmp", Workers: 4, AvgSec: 2.0},
			{Algorithm: "bf", Workers: 1, AvgSec: 8.0},
		},
	}

	curve := Speedups(run, "kmp")
	require.Len(t, curve, 3)
	assert.Equal(t, Speedup{Workers: 1, Speedup: 1.0, Efficiency: 1.0}, curve[0])
	assert.Equal(t, Speedup{Workers: 2, Speedup: 2.0, Efficiency: 1.0}, curve[1])
	assert.Equal(t, Speedup{Workers: 4, Speedup: 2.0, Efficiency: 0.5}, curve[2])

	// No 1-worker baseline recorded for this algorithm.
	assert.Nil(t, Speedups(run, "rk"))
}

func TestWriteCSV(t *testing.T) {
	run := &ports.BenchRun{
		Results: []ports.BenchResult{
			{Algorithm: "kmp", Workers: 1, Matches: 42, AvgSec: 0.123456, MinSec: 0.1, MaxSec: 0.15},
			{Algorithm: "bm", Workers: 8, Matches: 42, AvgSec: 0.025, MinSec: 0.02, MaxSec: 0.03},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, run))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "algorithm,workers,matches,time,min_time,max_time", lines[0])
	assert.Equal(t, "kmp,1,42,0.123456,0.100000,0.150000", lines[1])
	assert.Equal(t, "bm,8,42,0.025000,0.020000,0.030000", lines[2])
}
