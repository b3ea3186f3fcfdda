// Package models - registry of the network presets.
package models

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-yolo/models/model"
)

// ClassesFile is the label list shared by every preset.
const ClassesFile = "coco.names"

// presets is indexed by the --net_type flag value.
var presets = [...]model.Config{
	{
		Name:                model.NameYOLOv3,
		ConfidenceThreshold: 0.5,
		NMSThreshold:        0.4,
		InputWidth:          416,
		InputHeight:         416,
		ClassesFile:         ClassesFile,
		ModelConfiguration:  "yolov3/yolov3.cfg",
		ModelWeights:        "yolov3/yolov3.weights",
	},
	{
		Name:                model.NameYOLOv4,
		ConfidenceThreshold: 0.5,
		NMSThreshold:        0.4,
		InputWidth:          608,
		InputHeight:         608,
		ClassesFile:         ClassesFile,
		ModelConfiguration:  "yolov4/yolov4.cfg",
		ModelWeights:        "yolov4/yolov4.weights",
	},
	{
		Name:                model.NameYOLOFastest,
		ConfidenceThreshold: 0.5,
		NMSThreshold:        0.4,
		InputWidth:          320,
		InputHeight:         320,
		ClassesFile:         ClassesFile,
		ModelConfiguration:  "yolo-fastest/yolo-fastest-xl.cfg",
		ModelWeights:        "yolo-fastest/yolo-fastest-xl.weights",
	},
	{
		Name:                model.NameYOLObile,
		ConfidenceThreshold: 0.5,
		NMSThreshold:        0.4,
		InputWidth:          320,
		InputHeight:         320,
		ClassesFile:         ClassesFile,
		ModelConfiguration:  "yolobile/csdarknet53s-panet-spp.cfg",
		ModelWeights:        "yolobile/yolobile.weights",
	},
}

// Preset returns the configuration selected by a --net_type index.
//
// Arguments:
//   - netType: Index into the preset table, 0 through 3.
//
// Returns:
//   - model.Config: A copy of the preset.
//   - error: An error if the index is out of range.
//
// Example:
//
//	cfg, err := Preset(1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Name, cfg.InputSize()) // yolov4 (608,608)
func Preset(netType int) (model.Config, error) {
	if netType < 0 || netType >= len(presets) {
		return model.Config{}, errors.Errorf("net_type %d out of range [0,%d]", netType, len(presets)-1)
	}
	return presets[netType], nil
}

// Lookup returns the preset with the given name.
func Lookup(name model.Name) (model.Config, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Config{}, errors.Errorf("unsupported model name: %s", name)
}

// Presets returns every preset in --net_type order.
func Presets() []model.Config {
	out := make([]model.Config, len(presets))
	copy(out, presets[:])
	return out
}
