package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteDeterministic(t *testing.T) {
	first := Palette(80)
	second := Palette(80)
	require.Len(t, first, 80)
	assert.Equal(t, first, second)
}

func TestPalettePrefixStable(t *testing.T) {
	small := Palette(5)
	large := Palette(80)
	assert.Equal(t, small, large[:5])
}

func TestPaletteDistinctNeighbours(t *testing.T) {
	colors := Palette(80)
	for i := 1; i < len(colors); i++ {
		assert.NotEqual(t, colors[i-1], colors[i], "class %d shares a color with class %d", i, i-1)
		assert.Equal(t, uint8(255), colors[i].A)
	}
}

func TestPaletteEmpty(t *testing.T) {
	assert.Empty(t, Palette(0))
}
