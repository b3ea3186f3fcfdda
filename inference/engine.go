// Package inference - Inference engine interface and the OpenCV DNN backend.
package inference

import (
	"os"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Engine runs a forward pass over a preprocessed blob.
type Engine interface {
	// Forward returns one Mat per output head. The caller owns the Mats and
	// must Close them.
	Forward(blob gocv.Mat) ([]gocv.Mat, error)
	// OutputNames lists the output layers Forward collects, in order.
	OutputNames() []string
	Close() error
}

// DarknetEngine executes a Darknet network through the OpenCV DNN module.
type DarknetEngine struct {
	net         gocv.Net
	outputNames []string
}

// NewDarknetEngine loads a Darknet network definition and its weights.
//
// Arguments:
//   - cfgPath: The .cfg network definition.
//   - weightsPath: The .weights file.
//
// Returns:
//   - *DarknetEngine: An engine bound to the unconnected output layers.
//   - error: An error if either file is unreadable or the network is unusable.
func NewDarknetEngine(cfgPath, weightsPath string) (*DarknetEngine, error) {
	for _, p := range []string{cfgPath, weightsPath} {
		if _, err := os.Stat(p); err != nil {
			return nil, errors.Wrapf(err, "network file %s", p)
		}
	}

	net := gocv.ReadNet(weightsPath, cfgPath)
	if net.Empty() {
		return nil, errors.Errorf("failed to load network %s with weights %s", cfgPath, weightsPath)
	}

	net.SetPreferableBackend(gocv.NetBackendOpenCV)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	names := outputLayerNames(&net)
	if len(names) == 0 {
		net.Close()
		return nil, errors.Errorf("network %s has no output layers", cfgPath)
	}

	return &DarknetEngine{net: net, outputNames: names}, nil
}

func outputLayerNames(net *gocv.Net) []string {
	var names []string
	for _, id := range net.GetUnconnectedOutLayers() {
		layer := net.GetLayer(id)
		names = append(names, layer.GetName())
		layer.Close()
	}
	return names
}

// Forward implements Engine.
func (e *DarknetEngine) Forward(blob gocv.Mat) ([]gocv.Mat, error) {
	e.net.SetInput(blob, "")
	outs := e.net.ForwardLayers(e.outputNames)
	if len(outs) != len(e.outputNames) {
		for _, o := range outs {
			o.Close()
		}
		return nil, errors.Errorf("forward returned %d outputs, want %d", len(outs), len(e.outputNames))
	}
	return outs, nil
}

// OutputNames implements Engine.
func (e *DarknetEngine) OutputNames() []string {
	return e.outputNames
}

// Close releases the network.
func (e *DarknetEngine) Close() error {
	return e.net.Close()
}
