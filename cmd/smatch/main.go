// smatch counts exact occurrences of a pattern in a text.
// Single binary: count once, watch inputs, or benchmark the matchers.
package main

import (
	"fmt"
	"os"

	"github.com/corey/smatch/cmd/smatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "smatch: %v\n", err)
		os.Exit(1)
	}
}
