// Package detector runs a YOLO network over an image and draws what it finds.
package detector

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-yolo/images"
	"github.com/nvr-ai/go-yolo/inference"
	"github.com/nvr-ai/go-yolo/models/model"
	"github.com/nvr-ai/go-yolo/models/postprocess"
	"github.com/nvr-ai/go-yolo/util"
)

// Detection is a candidate that survived suppression.
type Detection struct {
	postprocess.Candidate
	// Label is the class name, or unknown_<id> when the label list is short.
	Label string
}

// Detector holds one loaded network and its configuration.
//
// A Detector is not safe for concurrent Detect calls. Use one per goroutine.
type Detector struct {
	cfg        model.Config
	classes    []string
	colors     []color.RGBA
	engine     inference.Engine
	suppressor postprocess.Suppressor
	logger     *zap.Logger
}

// New loads the class labels and the network described by cfg.
//
// Arguments:
//   - cfg: The network preset, usually from models.Preset.
//   - opts: Optional logger, engine and suppressor overrides.
//
// Returns:
//   - *Detector: A ready detector. Call Close when done.
//   - error: An error if cfg is invalid or any file cannot be loaded.
func New(cfg model.Config, opts ...Option) (*Detector, error) {
	o := options{
		logger:     zap.NewNop(),
		suppressor: postprocess.OpenCV{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	classes, err := util.LoadClassNames(cfg.ClassesFile)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Net use", zap.String("net", string(cfg.Name)))

	engine := o.engine
	if engine == nil {
		engine, err = inference.NewDarknetEngine(cfg.ModelConfiguration, cfg.ModelWeights)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", cfg.Name)
		}
	}

	o.logger.Debug("network ready",
		zap.Strings("outputs", engine.OutputNames()),
		zap.Int("classes", len(classes)),
		zap.Int("input_width", cfg.InputWidth),
		zap.Int("input_height", cfg.InputHeight),
	)

	return &Detector{
		cfg:        cfg,
		classes:    classes,
		colors:     images.Palette(len(classes)),
		engine:     engine,
		suppressor: o.suppressor,
		logger:     o.logger,
	}, nil
}

// Config returns the configuration the detector was built with.
func (d *Detector) Config() model.Config {
	return d.cfg
}

// Classes returns the class labels indexed by class id.
func (d *Detector) Classes() []string {
	return append([]string(nil), d.classes...)
}

// Detect runs one forward pass over img, draws every surviving detection onto
// img in place and returns them.
//
// Arguments:
//   - img: A BGR image. It is modified only when something is detected.
//
// Returns:
//   - []Detection: Survivors in suppression order, highest confidence first.
//   - error: An error if img is empty or inference fails.
func (d *Detector) Detect(img *gocv.Mat) ([]Detection, error) {
	if img == nil || img.Empty() {
		return nil, errors.New("detect: empty image")
	}

	candidates, err := d.candidates(*img)
	if err != nil {
		return nil, err
	}

	keep := d.suppressor.Suppress(candidates, d.cfg.ConfidenceThreshold, d.cfg.NMSThreshold)
	detections := make([]Detection, 0, len(keep))
	for _, i := range keep {
		det := Detection{Candidate: candidates[i], Label: d.className(candidates[i].ClassID)}
		d.draw(img, det)
		detections = append(detections, det)
	}

	d.logger.Info("detections",
		zap.String("net", string(d.cfg.Name)),
		zap.Int("candidates", len(candidates)),
		zap.Int("kept", len(detections)),
	)
	return detections, nil
}

// candidates runs the network and decodes every head above the threshold.
func (d *Detector) candidates(img gocv.Mat) ([]postprocess.Candidate, error) {
	blob := inference.Blob(img, d.cfg.InputSize())
	defer blob.Close()

	start := time.Now()
	outs, err := d.engine.Forward(blob)
	if err != nil {
		return nil, errors.Wrap(err, "forward")
	}
	defer func() {
		for _, out := range outs {
			out.Close()
		}
	}()
	d.logger.Debug("forward", zap.Duration("elapsed", time.Since(start)), zap.Int("outputs", len(outs)))

	tensors := make([]*tensor.Dense, len(outs))
	for i, out := range outs {
		if tensors[i], err = inference.ToTensor(out); err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
	}

	return postprocess.DecodeAll(tensors, image.Pt(img.Cols(), img.Rows()), d.cfg.ConfidenceThreshold)
}

func (d *Detector) className(id int) string {
	if id >= 0 && id < len(d.classes) {
		return d.classes[id]
	}
	return fmt.Sprintf("unknown_%d", id)
}

// Close releases the network.
func (d *Detector) Close() error {
	return d.engine.Close()
}
