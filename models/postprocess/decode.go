package postprocess

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-yolo/images"
)

const (
	// boxColumns is the number of leading columns holding cx, cy, w, h.
	boxColumns = 4
	// ClassOffset is the first column holding a class score. Column 4 is the
	// objectness score, which is not used for filtering.
	ClassOffset = 5
)

// Decode scans one output tensor of a YOLO detection head.
//
// Each row holds the normalized box center and size, an objectness score and
// one score per class. A row becomes a Candidate when its best class score is
// strictly greater than threshold. The box is scaled to the frame size and
// converted to a left/top corner with truncation toward zero.
//
// Arguments:
//   - out: A 2-D float32 tensor of shape (rows, 5+classes).
//   - frame: The width and height of the source image in pixels.
//   - threshold: The confidence threshold.
//
// Returns:
//   - []Candidate: The qualifying rows in row order.
//   - error: An error if the tensor has the wrong type or shape.
func Decode(out *tensor.Dense, frame image.Point, threshold float32) ([]Candidate, error) {
	if out.Dtype() != tensor.Float32 {
		return nil, errors.Errorf("output tensor has dtype %v, want float32", out.Dtype())
	}
	shape := out.Shape()
	if shape.Dims() != 2 {
		return nil, errors.Errorf("output tensor has shape %v, want (rows, cols)", shape)
	}
	rows, cols := shape[0], shape[1]
	if cols <= ClassOffset {
		return nil, errors.Errorf("output tensor has %d columns, need more than %d", cols, ClassOffset)
	}

	data, ok := out.Data().([]float32)
	if !ok {
		return nil, errors.New("output tensor is not backed by []float32")
	}

	var candidates []Candidate
	for r := 0; r < rows; r++ {
		row := data[r*cols : (r+1)*cols]
		classID, confidence := argmax(row[ClassOffset:])
		if confidence <= threshold {
			continue
		}
		candidates = append(candidates, Candidate{
			ClassID:    classID,
			Confidence: confidence,
			Box:        DecodeBox(row[:boxColumns], frame),
		})
	}
	return candidates, nil
}

// DecodeAll decodes every head output in order and concatenates the results.
func DecodeAll(outs []*tensor.Dense, frame image.Point, threshold float32) ([]Candidate, error) {
	var candidates []Candidate
	for i, out := range outs {
		c, err := Decode(out, frame, threshold)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
		candidates = append(candidates, c...)
	}
	return candidates, nil
}

// DecodeBox converts a normalized (cx, cy, w, h) box into pixels.
//
// Example:
//
//	DecodeBox([]float32{0.5, 0.5, 0.2, 0.2}, image.Pt(100, 100))
//	// Rect{X1: 40, Y1: 40, X2: 60, Y2: 60}
func DecodeBox(box []float32, frame image.Point) images.Rect {
	fw, fh := float32(frame.X), float32(frame.Y)
	centerX := int(box[0] * fw)
	centerY := int(box[1] * fh)
	width := int(box[2] * fw)
	height := int(box[3] * fh)
	left := int(float64(centerX) - float64(width)/2)
	top := int(float64(centerY) - float64(height)/2)
	return images.FromLTWH(left, top, width, height)
}

// argmax returns the index and value of the first maximum.
func argmax(scores []float32) (int, float32) {
	best, bestScore := 0, math32.Inf(-1)
	for i, s := range scores {
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore
}
