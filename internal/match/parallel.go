package match

import (
	"sync"

	"github.com/corey/smatch/internal/ports"
)

// CountParallel splits the text into workers contiguous chunks and counts
// matches in each chunk concurrently with m, summing the per-chunk counts.
// Each chunk except the last is extended by len(pattern)-1 bytes so a
// match straddling a boundary is seen by the chunk that owns its starting
// index — and only by that chunk, since a chunk's own range ends where the
// next one's begins. The result equals m.Count(text, pattern) for every
// input and worker count.
func CountParallel(m ports.Matcher, text, pattern []byte, workers int) int {
	n := len(text)
	if workers <= 1 || n == 0 {
		return m.Count(text, pattern)
	}
	if workers > n {
		workers = n
	}

	overlap := len(pattern) - 1
	chunk := n / workers

	counts := make([]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = n
		}
		// Extend past the owned range so matches starting near the
		// boundary still complete. countOwned drops the ones whose
		// start index belongs to the next chunk.
		ext := end + overlap
		if ext > n {
			ext = n
		}

		wg.Add(1)
		go func(w, start, end, ext int) {
			defer wg.Done()
			counts[w] = countOwned(m, text[start:ext], pattern, end-start)
		}(w, start, end, ext)
	}
	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// countOwned counts matches in chunk whose starting index is < owned.
// Matches that begin in the overlap tail belong to the next chunk.
func countOwned(m ports.Matcher, chunk, pattern []byte, owned int) int {
	total := m.Count(chunk, pattern)
	if total == 0 {
		return 0
	}
	// Subtract matches that start at or after the owned boundary. They
	// are exactly the matches of the tail slice beginning at owned.
	if owned < len(chunk) {
		total -= m.Count(chunk[owned:], pattern)
	}
	return total
}
