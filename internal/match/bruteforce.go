package match

// BruteForce counts matches by comparing the pattern at every text
// position. O(nm) worst case. Kept as the reference oracle the faster
// matchers are tested against, and as a baseline for bench runs.
type BruteForce struct{}

// Name returns "bf".
func (BruteForce) Name() string { return "bf" }

func (BruteForce) Count(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return 0
	}

	count := 0
	for i := 0; i+m <= n; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			count++
		}
	}
	return count
}
