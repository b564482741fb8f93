package match

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		text := randomString(rng, "ab", rng.Intn(500))
		pattern := randomString(rng, "ab", 1+rng.Intn(6))
		want := KMP{}.Count(text, pattern)

		for _, workers := range []int{1, 2, 3, 4, 8, 16, 100} {
			got := CountParallel(KMP{}, text, pattern, workers)
			require.Equal(t, want, got,
				"workers=%d pattern %q in text %q", workers, pattern, text)
		}
	}
}

// Boundary matches must be counted exactly once: every chunk boundary in
// an all-"a" text straddles overlapping occurrences.
func TestCountParallelBoundaryOverlap(t *testing.T) {
	text := bytes.Repeat([]byte("a"), 1000)
	pattern := []byte("aaaa")
	want := 997

	for _, workers := range []int{1, 2, 4, 7, 32} {
		t.Run(fmt.Sprintf("workers-%d", workers), func(t *testing.T) {
			assert.Equal(t, want, CountParallel(KMP{}, text, pattern, workers))
		})
	}
}

func TestCountParallelDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0, CountParallel(KMP{}, nil, []byte("a"), 4))
	assert.Equal(t, 0, CountParallel(KMP{}, []byte("abc"), nil, 4))
	assert.Equal(t, 0, CountParallel(KMP{}, []byte("ab"), []byte("abcdef"), 4))
	assert.Equal(t, 1, CountParallel(KMP{}, []byte("abc"), []byte("abc"), 8))
}

func TestCountParallelAllMatchers(t *testing.T) {
	text := []byte("abracadabra arbadacarba abracadabra")
	pattern := []byte("abra")
	want := bruteCount(text, pattern)

	for _, m := range allMatchers() {
		assert.Equal(t, want, CountParallel(m, text, pattern, 3), m.Name())
	}
}
