package util

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadClassNames reads a newline-delimited class label list.
//
// Line order is preserved, so the label on line i names class id i. Trailing
// newlines are ignored and Windows line endings are accepted.
//
// Arguments:
// - path: Path to the label file, e.g. coco.names.
//
// Returns:
// - []string: One label per class id.
// - error: Error if the file cannot be read or holds no labels.
func LoadClassNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read class names")
	}

	text := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if text == "" {
		return nil, errors.Errorf("class names file %s is empty", path)
	}

	return strings.Split(text, "\n"), nil
}
