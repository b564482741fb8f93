// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Matcher counts occurrences of a single pattern in a text. Implementations
// are pure functions over the two byte slices: no retained state, no
// mutation of the inputs, identical inputs always yield identical counts.
// This makes a single Matcher safe to share across goroutines.
type Matcher interface {
	// Name returns the short registry name of the algorithm (e.g. "kmp").
	Name() string

	// Count returns the number of positions i in text such that the full
	// pattern matches starting at i. Overlapping occurrences all count.
	// An empty pattern, or a text shorter than the pattern, yields 0.
	Count(text, pattern []byte) int
}
