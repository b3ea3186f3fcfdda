package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNames(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coco.names")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadClassNames(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"trailing newline", "person\nbicycle\ncar\n", []string{"person", "bicycle", "car"}},
		{"no trailing newline", "person\nbicycle", []string{"person", "bicycle"}},
		{"several trailing newlines", "person\n\n\n", []string{"person"}},
		{"crlf", "person\r\ntraffic light\r\n", []string{"person", "traffic light"}},
		{"blank line kept in place", "person\n\ncar\n", []string{"person", "", "car"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := LoadClassNames(writeNames(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestLoadClassNamesErrors(t *testing.T) {
	_, err := LoadClassNames(filepath.Join(t.TempDir(), "missing.names"))
	assert.Error(t, err)

	_, err = LoadClassNames(writeNames(t, "\n\n"))
	assert.Error(t, err)
}
