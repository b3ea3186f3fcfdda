package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-yolo/detector"
	"github.com/nvr-ai/go-yolo/models"
)

const (
	// Flags.
	flagImagePath = "imgpath"
	flagNetType   = "net_type"

	defaultImagePath = "bus.jpg"
	windowName       = "Deep learning object detection in OpenCV"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Error("detection failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newApp(logger *zap.Logger) *cli.App {
	return &cli.App{
		Name:  "yolo",
		Usage: "detect objects in an image with a pretrained Darknet network",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagImagePath,
				Value: defaultImagePath,
				Usage: "image path",
			},
			&cli.IntFlag{
				Name:  flagNetType,
				Value: 0,
				Usage: "network preset: 0 yolov3, 1 yolov4, 2 yolo-fastest, 3 yolobile",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String(flagImagePath), c.Int(flagNetType), logger)
		},
	}
}

func run(imagePath string, netType int, logger *zap.Logger) error {
	cfg, err := models.Preset(netType)
	if err != nil {
		return err
	}

	d, err := detector.New(cfg, detector.WithLogger(logger))
	if err != nil {
		return err
	}
	defer d.Close()

	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		return errors.Errorf("read image %s", imagePath)
	}

	detections, err := d.Detect(&img)
	if err != nil {
		return err
	}
	for _, det := range detections {
		logger.Info("object",
			zap.String("label", detector.Label(det.Label, det.Confidence)),
			zap.Int("left", det.Box.Left()),
			zap.Int("top", det.Box.Top()),
			zap.Int("width", det.Box.Width()),
			zap.Int("height", det.Box.Height()),
		)
	}

	window := gocv.NewWindow(windowName)
	defer window.Close()
	window.SetWindowProperty(gocv.WindowPropertyAutosize, gocv.WindowNormal)
	window.IMShow(img)
	window.WaitKey(0)

	return nil
}
