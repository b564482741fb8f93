package textio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadStripsTrailingLineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no trailing newline", "abc", "abc"},
		{"trailing lf", "abc\n", "abc"},
		{"trailing crlf", "abc\r\n", "abc"},
		{"multiple trailing", "abc\n\r\n\n", "abc"},
		{"internal newlines kept", "a\nb\nc\n", "a\nb\nc"},
		{"trailing space kept", "abc \n", "abc "},
		{"only newlines", "\n\r\n", ""},
		{"empty file", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestLoadMissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
