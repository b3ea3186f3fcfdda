package postprocess

import (
	"image"
	"sort"

	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-yolo/images"
)

// Suppressor removes overlapping candidates.
type Suppressor interface {
	// Suppress returns the indices of the candidates that survive, highest
	// confidence first. Candidates scoring at or below scoreThreshold never
	// survive. A candidate is dropped when its overlap with a kept one is
	// greater than overlapThreshold.
	Suppress(candidates []Candidate, scoreThreshold, overlapThreshold float32) []int
}

// OpenCV delegates suppression to the OpenCV DNN module.
type OpenCV struct{}

// Suppress implements Suppressor with gocv.NMSBoxes.
func (OpenCV) Suppress(candidates []Candidate, scoreThreshold, overlapThreshold float32) []int {
	if len(candidates) == 0 {
		return nil
	}

	boxes := make([]image.Rectangle, len(candidates))
	scores := make([]float32, len(candidates))
	for i, c := range candidates {
		boxes[i] = c.Box.Rectangle()
		scores[i] = c.Confidence
	}
	return gocv.NMSBoxes(boxes, scores, scoreThreshold, overlapThreshold)
}

// Greedy is a pure-Go greedy NMS. Like OpenCV it ignores class ids, so
// overlapping boxes of different classes also suppress each other.
type Greedy struct{}

// Suppress implements Suppressor.
//
// Arguments:
//   - candidates: Decoded candidates in any order.
//   - scoreThreshold: Candidates at or below this confidence are discarded.
//   - overlapThreshold: IoU above which the lower-confidence box is discarded.
//
// Returns:
//   - Indices into candidates, by descending confidence. Nil if nothing survives.
func (Greedy) Suppress(candidates []Candidate, scoreThreshold, overlapThreshold float32) []int {
	order := make([]int, 0, len(candidates))
	for i, c := range candidates {
		if c.Confidence > scoreThreshold {
			order = append(order, i)
		}
	}
	if len(order) == 0 {
		return nil
	}

	// Equal scores keep their scan order.
	sort.SliceStable(order, func(a, b int) bool {
		return candidates[order[a]].Confidence > candidates[order[b]].Confidence
	})

	kept := make([]int, 0, len(order))
	used := make([]bool, len(order))
	for i, anchor := range order {
		if used[i] {
			continue
		}
		kept = append(kept, anchor)
		used[i] = true

		for j := i + 1; j < len(order); j++ {
			if used[j] {
				continue
			}
			if images.CalculateIoU(candidates[anchor].Box, candidates[order[j]].Box) > overlapThreshold {
				used[j] = true
			}
		}
	}

	return kept
}
