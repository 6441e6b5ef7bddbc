// Command spectrometer runs the live spectrograph.
//
// It captures video, reduces the spectral band of every frame to an
// intensity row, calibrates it to wavelength, smooths it and labels its
// peaks, and shows the result with an optional waterfall.
//
// Usage:
//
//	spectrometer [flags]
//
// Keys:
//
//	q quit            h hold peaks       s snapshot
//	p pixel/click     c calibrate        x clear clicks
//	m measure         o/l filter order   i/k peak width
//	u/j threshold     t/g gain
//
// Examples:
//
//	spectrometer -waterfall
//	spectrometer -device 1 -calfile lab.cal
//	spectrometer -device spectrum.mp4 -order 5
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-spectro/internal/capture"
	"github.com/cwbudde/algo-spectro/internal/logger"
	"github.com/cwbudde/algo-spectro/measure/spectro"
)

type options struct {
	capture    capture.Config
	params     spectro.Params
	calFile    string
	outDir     string
	waterfall  bool
	fullscreen bool
	level      zerolog.Level
}

func parseFlags(args []string) (options, error) {
	defCap := capture.DefaultConfig()
	defParams := spectro.DefaultParams()

	fs := flag.NewFlagSet("spectrometer", flag.ContinueOnError)
	device := fs.String("device", defCap.Device, "camera index or video file/stream URL")
	width := fs.Int("width", defCap.Width, "frame width in pixels")
	height := fs.Int("height", defCap.Height, "frame height in pixels")
	fps := fs.Float64("fps", defCap.FPS, "capture frame rate")
	gain := fs.Float64("gain", defCap.Gain, "analogue gain (0-50)")
	band := fs.Int("band", defCap.Band.Height, "height of the spectral band in pixels")
	calFile := fs.String("calfile", "caldata.txt", "calibration file")
	window := fs.Int("window", defParams.SmoothingWindow, "Savitzky-Golay window length (odd)")
	order := fs.Int("order", defParams.PolyOrder, "Savitzky-Golay polynomial order")
	minDist := fs.Int("mindist", defParams.MinDistance, "minimum distance between labelled peaks in pixels")
	thresh := fs.Int("thresh", defParams.ThresholdPercent, "minimum labelled peak height in intensity counts (0-100)")
	waterfall := fs.Bool("waterfall", false, "show the waterfall window")
	fullscreen := fs.Bool("fullscreen", false, "show the spectrograph fullscreen")
	outDir := fs.String("outdir", ".", "directory for snapshots")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	debug := fs.Bool("debug", false, "shorthand for -log-level debug")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectrometer [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Live spectrograph with calibration, smoothing and peak labelling.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *waterfall && *fullscreen {
		return options{}, errors.New("-waterfall and -fullscreen are mutually exclusive")
	}

	opts := options{
		capture: capture.Config{
			Device: *device,
			Width:  *width,
			Height: *height,
			FPS:    *fps,
			Gain:   capture.ClampGain(*gain),
			Band:   capture.BandConfig{Height: *band, Rows: defCap.Band.Rows},
		},
		params: spectro.Params{
			SmoothingWindow:  *window,
			PolyOrder:        *order,
			MinDistance:      *minDist,
			ThresholdPercent: *thresh,
		},
		calFile:    *calFile,
		outDir:     *outDir,
		waterfall:  *waterfall,
		fullscreen: *fullscreen,
		level:      logger.Level(*logLevel),
	}
	if *debug {
		opts.level = zerolog.DebugLevel
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger(opts.level)
	if err := run(opts, log); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}
