// Package match implements exact single-pattern string matching over raw
// byte slices. Every matcher counts all occurrences of the pattern,
// overlapping ones included, and is a pure function of its inputs: no
// retained state, no mutation, safe for concurrent reuse.
package match

// FailureTable computes the KMP failure function for pattern.
// table[i] is the length of the longest proper prefix of pattern[:i+1]
// that is also a suffix of it, so 0 <= table[i] <= i and table[0] == 0.
// An empty pattern yields an empty table. Runs in amortized O(m): j only
// grows by one per position and every fallback strictly shrinks it.
func FailureTable(pattern []byte) []int {
	if len(pattern) == 0 {
		return nil
	}

	table := make([]int, len(pattern))
	table[0] = 0
	j := 0

	for i := 1; i < len(pattern); i++ {
		for j > 0 && pattern[i] != pattern[j] {
			j = table[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		table[i] = j
	}
	return table
}

// KMP counts matches with the Knuth-Morris-Pratt algorithm: a failure
// table built from the pattern lets the scan fall back without ever
// re-reading text bytes, giving O(n+m) time and O(m) space regardless
// of alphabet.
type KMP struct{}

// Name returns "kmp".
func (KMP) Name() string { return "kmp" }

// Count scans text once, left to right. The cursor j tracks how much of
// the pattern the current text position extends; on mismatch it falls
// back through the failure table, and on a full match it falls back the
// same way so overlapping occurrences are still found.
func (KMP) Count(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return 0
	}

	table := FailureTable(pattern)

	count := 0
	j := 0
	for i := 0; i < n; i++ {
		for j > 0 && text[i] != pattern[j] {
			j = table[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == m {
			count++
			j = table[j-1]
		}
	}
	return count
}
