package images

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spreads consecutive hues as far apart as possible.
const goldenAngle = 137.50776405003785

// Palette returns one color per class. The same n always yields the same
// colors in the same order.
//
// Arguments:
//   - n: Number of classes.
//
// Returns:
//   - []color.RGBA: Opaque colors indexed by class id.
func Palette(n int) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := range colors {
		hue := math.Mod(float64(i)*goldenAngle, 360)
		// Alternate value so neighbouring hues on the wheel stay apart.
		value := 0.95
		if i%2 == 1 {
			value = 0.75
		}
		r, g, b := colorful.Hsv(hue, 0.85, value).RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}
