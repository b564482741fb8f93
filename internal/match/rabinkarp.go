package match

import "bytes"

// primeRK is the multiplier for the Rabin-Karp rolling hash, the same
// constant the Go runtime uses in strings/bytes.
const primeRK = 16777619

// RabinKarp counts matches with a rolling polynomial hash over the text
// window. Hash collisions are resolved by verifying the window bytes, so
// the count is always exact. O(n+m) expected time.
type RabinKarp struct{}

// Name returns "rk".
func (RabinKarp) Name() string { return "rk" }

func (RabinKarp) Count(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return 0
	}

	// Hash of the pattern and of the first text window, plus
	// pow = primeRK^m for removing the byte leaving the window.
	var patHash, winHash uint32
	for i := 0; i < m; i++ {
		patHash = patHash*primeRK + uint32(pattern[i])
		winHash = winHash*primeRK + uint32(text[i])
	}
	pow := uint32(1)
	for i, sq := m, uint32(primeRK); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}

	count := 0
	if winHash == patHash && bytes.Equal(text[:m], pattern) {
		count++
	}
	for i := m; i < n; i++ {
		winHash = winHash*primeRK + uint32(text[i]) - pow*uint32(text[i-m])
		if winHash == patHash && bytes.Equal(text[i-m+1:i+1], pattern) {
			count++
		}
	}
	return count
}
