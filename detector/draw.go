package detector

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

const (
	boxThickness   = 4
	labelFont      = gocv.FontHersheySimplex
	labelScale     = 1.0
	labelThickness = 2
	// labelOffset is the gap between the label baseline and the box top.
	labelOffset = 10
)

// Label formats the text drawn above a detection.
//
// Example:
//
//	Label("person", 0.876) // "person:0.88"
func Label(className string, confidence float32) string {
	return fmt.Sprintf("%s:%.2f", className, confidence)
}

// LabelOrigin returns the baseline origin of a label drawn above a box whose
// top edge is at top. The baseline never rises above textHeight, so the text
// stays inside the image.
func LabelOrigin(left, top, textHeight int) image.Point {
	return image.Pt(left, max(top-labelOffset, textHeight))
}

func (d *Detector) draw(img *gocv.Mat, det Detection) {
	clr := d.colors[det.ClassID%len(d.colors)]
	gocv.Rectangle(img, det.Box.Rectangle(), clr, boxThickness)

	text := Label(det.Label, det.Confidence)
	size := gocv.GetTextSize(text, labelFont, labelScale, labelThickness)
	gocv.PutText(img, text, LabelOrigin(det.Box.Left(), det.Box.Top(), size.Y), labelFont, labelScale, clr, labelThickness)
}
