// Package textio loads pattern and text inputs from disk.
package textio

import (
	"fmt"
	"os"
)

// Load reads the whole file as raw bytes and strips any trailing newline
// and carriage-return bytes. Only the trailing run is removed — internal
// line endings and all other whitespace are preserved. Most pattern
// files end in a newline the author never meant to search for.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
		data = data[:len(data)-1]
	}
	return data, nil
}
