// Package postprocess - turns raw network output into filtered detections.
package postprocess

import "github.com/nvr-ai/go-yolo/images"

// Candidate is a decoded output row whose best class cleared the confidence
// threshold. Candidates have not been through suppression yet.
type Candidate struct {
	// The predicted class index.
	ClassID int
	// The score of the predicted class.
	Confidence float32
	// The box in pixel coordinates of the source image.
	Box images.Rect
}
