package inference

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"
)

// Blob converts a BGR image into an NCHW network input: pixels scaled by
// 1/255, no mean subtraction, R and B swapped, resized to size without
// cropping.
func Blob(img gocv.Mat, size image.Point) gocv.Mat {
	return gocv.BlobFromImage(img, 1.0/255.0, size, gocv.NewScalar(0, 0, 0, 0), true, false)
}

// ToTensor copies a float32 output Mat into a 2-D tensor. The last Mat
// dimension becomes the columns and every leading dimension folds into rows.
//
// Arguments:
//   - m: A CV_32F Mat, typically one detection head output.
//
// Returns:
//   - *tensor.Dense: A (rows, cols) tensor that does not alias m.
//   - error: An error if m is empty or not float32.
func ToTensor(m gocv.Mat) (*tensor.Dense, error) {
	if m.Empty() {
		return nil, errors.New("output mat is empty")
	}
	if m.Type() != gocv.MatTypeCV32F {
		return nil, errors.Errorf("output mat has type %v, want CV_32F", m.Type())
	}

	src := m
	if !m.IsContinuous() {
		src = m.Clone()
		defer src.Close()
	}

	dims := src.Size()
	cols := dims[len(dims)-1]
	rows := src.Total() / cols

	data, err := src.DataPtrFloat32()
	if err != nil {
		return nil, errors.Wrap(err, "output mat data")
	}
	backing := make([]float32, rows*cols)
	copy(backing, data)

	return tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(backing)), nil
}
