package match

import (
	"fmt"
	"strings"

	"github.com/corey/smatch/internal/ports"
)

// Algorithm pairs a matcher with a one-line description for listings.
type Algorithm struct {
	Matcher     ports.Matcher
	Description string
}

// algorithms is the registry, in display order.
var algorithms = []Algorithm{
	{KMP{}, "Knuth-Morris-Pratt: failure-table scan, O(n+m) worst case"},
	{BruteForce{}, "naive position-by-position comparison, O(nm) worst case"},
	{BoyerMoore{}, "Boyer-Moore-Horspool: bad-character skips, sublinear on typical text"},
	{RabinKarp{}, "Rabin-Karp: rolling hash with exact verification, O(n+m) expected"},
}

// Lookup resolves a registry name ("kmp", "bf", "bm", "rk") to its
// matcher. Names are case-insensitive.
func Lookup(name string) (ports.Matcher, error) {
	for _, a := range algorithms {
		if strings.EqualFold(name, a.Matcher.Name()) {
			return a.Matcher, nil
		}
	}
	return nil, fmt.Errorf("unknown algorithm %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the registered algorithm names in display order.
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Matcher.Name()
	}
	return names
}

// All returns the registry entries in display order.
func All() []Algorithm {
	return algorithms
}
