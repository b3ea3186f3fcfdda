package detector

import (
	"go.uber.org/zap"

	"github.com/nvr-ai/go-yolo/inference"
	"github.com/nvr-ai/go-yolo/models/postprocess"
)

type options struct {
	logger     *zap.Logger
	engine     inference.Engine
	suppressor postprocess.Suppressor
}

// Option configures a Detector.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEngine supplies an already-open engine instead of loading the
// network files named in the config. The Detector takes ownership and closes
// it in Close.
func WithEngine(engine inference.Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithSuppressor replaces the default OpenCV non-maximum suppression.
func WithSuppressor(s postprocess.Suppressor) Option {
	return func(o *options) {
		o.suppressor = s
	}
}
