package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Name:                NameYOLOv3,
		ConfidenceThreshold: 0.5,
		NMSThreshold:        0.4,
		InputWidth:          416,
		InputHeight:         416,
		ClassesFile:         "coco.names",
		ModelConfiguration:  "yolov3.cfg",
		ModelWeights:        "yolov3.weights",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"thresholds at bounds", func(c *Config) { c.ConfidenceThreshold, c.NMSThreshold = 0, 1 }, false},
		{"confidence above one", func(c *Config) { c.ConfidenceThreshold = 1.5 }, true},
		{"negative nms", func(c *Config) { c.NMSThreshold = -0.1 }, true},
		{"zero width", func(c *Config) { c.InputWidth = 0 }, true},
		{"negative height", func(c *Config) { c.InputHeight = -416 }, true},
		{"no classes", func(c *Config) { c.ClassesFile = "" }, true},
		{"no weights", func(c *Config) { c.ModelWeights = "" }, true},
		{"no definition", func(c *Config) { c.ModelConfiguration = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigInputSize(t *testing.T) {
	cfg := validConfig()
	cfg.InputWidth, cfg.InputHeight = 608, 320
	assert.Equal(t, 608, cfg.InputSize().X)
	assert.Equal(t, 320, cfg.InputSize().Y)
}
