package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDarknetEngineMissingFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "yolov3.cfg")
	weights := filepath.Join(dir, "yolov3.weights")

	_, err := NewDarknetEngine(cfg, weights)
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfg)

	require.NoError(t, os.WriteFile(cfg, []byte("[net]\n"), 0o600))
	_, err = NewDarknetEngine(cfg, weights)
	require.Error(t, err)
	assert.Contains(t, err.Error(), weights)
}
