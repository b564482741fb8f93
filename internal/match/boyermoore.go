package match

// BoyerMoore counts matches with the Boyer-Moore-Horspool variant:
// a 256-entry bad-character table gives the shift for the text byte
// under the pattern's last position. Sublinear on typical inputs,
// O(nm) worst case on degenerate ones. The table only considers
// pattern positions 0..m-2, so the shift after a full match can never
// jump past an overlapping occurrence.
type BoyerMoore struct{}

// Name returns "bm".
func (BoyerMoore) Name() string { return "bm" }

func (BoyerMoore) Count(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return 0
	}

	// Bad-character shifts: distance from a byte's rightmost occurrence
	// (excluding the last position) to the end of the pattern.
	var skip [256]int
	for c := range skip {
		skip[c] = m
	}
	for i := 0; i < m-1; i++ {
		skip[pattern[i]] = m - 1 - i
	}

	count := 0
	i := 0
	for i+m <= n {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			count++
		}
		i += skip[text[i+m-1]]
	}
	return count
}
