// Package model - Definitions for detection network configurations.
package model

import (
	"image"

	"github.com/pkg/errors"
)

// Name is the unique identifier of a network preset.
type Name string

const (
	// NameYOLOv3 is the name of the YOLOv3 network.
	NameYOLOv3 Name = "yolov3"
	// NameYOLOv4 is the name of the YOLOv4 network.
	NameYOLOv4 Name = "yolov4"
	// NameYOLOFastest is the name of the YOLO-Fastest (XL) network.
	NameYOLOFastest Name = "yolo-fastest"
	// NameYOLObile is the name of the YOLObile network.
	NameYOLObile Name = "yolobile"
)

// Config describes one Darknet network and the thresholds used to filter its
// output. Values are handed out by copy, so a Config is never shared.
type Config struct {
	// Name is the display name of the network.
	Name Name `json:"name" yaml:"name"`
	// ConfidenceThreshold is the minimum class score a detection must exceed.
	ConfidenceThreshold float32 `json:"conf_threshold" yaml:"conf_threshold"`
	// NMSThreshold is the maximum overlap tolerated between two survivors.
	NMSThreshold float32 `json:"nms_threshold" yaml:"nms_threshold"`
	// InputWidth is the width of the network input blob.
	InputWidth int `json:"input_width" yaml:"input_width"`
	// InputHeight is the height of the network input blob.
	InputHeight int `json:"input_height" yaml:"input_height"`
	// ClassesFile is the newline-delimited class label list.
	ClassesFile string `json:"classes_file" yaml:"classes_file"`
	// ModelConfiguration is the Darknet .cfg network definition.
	ModelConfiguration string `json:"model_configuration" yaml:"model_configuration"`
	// ModelWeights is the Darknet .weights file.
	ModelWeights string `json:"model_weights" yaml:"model_weights"`
}

// InputSize returns the network input dimensions as a point (width, height).
func (c Config) InputSize() image.Point {
	return image.Pt(c.InputWidth, c.InputHeight)
}

// Validate checks that the configuration is usable.
//
// Returns:
//   - An error describing the first invalid field, nil otherwise.
func (c Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return errors.Errorf("%s: confidence threshold %v outside [0,1]", c.Name, c.ConfidenceThreshold)
	}
	if c.NMSThreshold < 0 || c.NMSThreshold > 1 {
		return errors.Errorf("%s: nms threshold %v outside [0,1]", c.Name, c.NMSThreshold)
	}
	if c.InputWidth <= 0 || c.InputHeight <= 0 {
		return errors.Errorf("%s: input size %dx%d must be positive", c.Name, c.InputWidth, c.InputHeight)
	}
	if c.ClassesFile == "" {
		return errors.Errorf("%s: classes file not set", c.Name)
	}
	if c.ModelConfiguration == "" || c.ModelWeights == "" {
		return errors.Errorf("%s: network definition and weights must both be set", c.Name)
	}
	return nil
}
