package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRejectsUnknownNetType(t *testing.T) {
	for _, args := range [][]string{
		{"yolo", "--net_type", "4"},
		{"yolo", "--net_type=-1"},
	} {
		err := newApp(zaptest.NewLogger(t)).Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "net_type")
	}
}

func TestRejectsUnknownFlag(t *testing.T) {
	err := newApp(zaptest.NewLogger(t)).Run([]string{"yolo", "--confidence", "0.3"})
	assert.Error(t, err)
}

// Without coco.names in the working directory construction fails before
// the image is read.
func TestMissingClassesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	err := newApp(zaptest.NewLogger(t)).Run([]string{"yolo", "--imgpath", "missing.jpg", "--net_type", "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class names")
}
