// Package images - Box geometry and rendering helpers.
package images

import "image"

// Rect is a lightweight integer bounding box in pixel coordinates.
type Rect struct {
	// X2,Y2 are exclusive (like image.Rectangle).
	X1, Y1, X2, Y2 int
}

// FromLTWH builds a Rect from a left/top corner and a width/height.
//
// Arguments:
//   - left, top: The top-left corner in pixels.
//   - width, height: The box size in pixels.
//
// Returns:
//   - Rect: The box with X2 = left+width and Y2 = top+height.
func FromLTWH(left, top, width, height int) Rect {
	return Rect{X1: left, Y1: top, X2: left + width, Y2: top + height}
}

// Left is the x coordinate of the left edge.
func (r Rect) Left() int { return r.X1 }

// Top is the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y1 }

// Width is the horizontal extent of the box.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height is the vertical extent of the box.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Area is Width*Height. Inverted boxes report zero.
func (r Rect) Area() int {
	if r.X2 <= r.X1 || r.Y2 <= r.Y1 {
		return 0
	}
	return r.Width() * r.Height()
}

// Rectangle converts to the standard library rectangle used by gocv.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// CalculateIoU returns the Intersection over Union of two boxes, a value in
// [0,1] where 1 means the boxes are identical and 0 means they do not overlap.
//
//	IoU = Area of Intersection / Area of Union
//
// The intersection corners are the max of the top-left corners and the min of
// the bottom-right corners. Non-overlapping or touching boxes return 0 before
// any division happens.
//
// Arguments:
//   - r: The first rectangle.
//   - o: The other rectangle to compare against.
//
// Returns:
//   - float32: A value between 0.0 and 1.0 representing the IoU score.
//
// Example Usage:
//
//	rect1 := Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}
//	rect2 := Rect{X1: 5, Y1: 5, X2: 15, Y2: 15}
//	iou := CalculateIoU(rect1, rect2) // 25 / 175 = 0.142857
func CalculateIoU(r, o Rect) float32 {
	ix1 := max(r.X1, o.X1)
	iy1 := max(r.Y1, o.Y1)
	ix2 := min(r.X2, o.X2)
	iy2 := min(r.Y2, o.Y2)

	interW := ix2 - ix1
	interH := iy2 - iy1
	if interW <= 0 || interH <= 0 {
		return 0.0
	}
	interArea := interW * interH

	// Union(A, B) = Area(A) + Area(B) - Intersection(A, B)
	unionArea := r.Area() + o.Area() - interArea
	if unionArea <= 0 {
		return 0.0
	}

	return float32(interArea) / float32(unionArea)
}
