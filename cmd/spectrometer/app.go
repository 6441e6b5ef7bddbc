package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"gocv.io/x/gocv"

	"github.com/cwbudde/algo-spectro/internal/capture"
	"github.com/cwbudde/algo-spectro/internal/control"
	"github.com/cwbudde/algo-spectro/internal/export"
	"github.com/cwbudde/algo-spectro/internal/logger"
	"github.com/cwbudde/algo-spectro/internal/render"
	"github.com/cwbudde/algo-spectro/measure/calib"
	"github.com/cwbudde/algo-spectro/measure/spectro"
)

const waitKeyMillis = 1

type app struct {
	opts    options
	log     logger.Logger
	src     *capture.Source
	proc    *spectro.Processor
	rend    *render.Renderer
	display *render.Display
	cursor  control.Cursor

	stdin   io.Reader
	stdout  io.Writer
	saveMsg string
	lastErr error
}

func run(opts options, log logger.Logger) error {
	procOpts := []spectro.Option{spectro.WithParams(opts.params)}
	points, err := calib.LoadFile(opts.calFile)
	switch {
	case err == nil:
		procOpts = append(procOpts, spectro.WithCalibration(points))
		log.Info("calib", "loaded calibration", logger.Fields{"file": opts.calFile, "points": len(points)})
	case errors.Is(err, os.ErrNotExist):
		log.Warning("calib", "no calibration file, using nominal axis", logger.Fields{"file": opts.calFile})
	default:
		log.Warning("calib", "ignoring unreadable calibration file", logger.Fields{"file": opts.calFile, "error": err.Error()})
	}

	proc, err := spectro.New(opts.capture.Width, procOpts...)
	if errors.Is(err, calib.ErrInvalidCalibration) {
		log.Warning("calib", "stored calibration rejected, using nominal axis", logger.Fields{"error": err.Error()})
		proc, err = spectro.New(opts.capture.Width, spectro.WithParams(opts.params))
	}
	if err != nil {
		return err
	}

	src, err := capture.Open(opts.capture)
	if err != nil {
		return err
	}
	defer src.Close()

	rend := render.NewRenderer(opts.capture.Width, opts.capture.Band.Height, proc.Axis(), opts.waterfall)
	display := render.NewDisplay(opts.capture.Width, rend.Height(), opts.waterfall, opts.fullscreen)
	defer display.Close()

	a := &app{
		opts:    opts,
		log:     log,
		src:     src,
		proc:    proc,
		rend:    rend,
		display: display,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		saveMsg: "No data saved",
	}
	display.OnMouse(a.onMouse)

	log.Info("main", "started", logger.Fields{
		"device": opts.capture.Device,
		"width":  opts.capture.Width,
		"height": opts.capture.Height,
		"params": proc.Params().String(),
	})
	return a.loop()
}

func (a *app) loop() error {
	for {
		img, err := a.src.Read()
		if err != nil {
			return fmt.Errorf("capture: %w", err)
		}

		quit, err := a.step(img)
		if err != nil {
			return err
		}
		if quit {
			a.log.Info("main", "quit", nil)
			return nil
		}
	}
}

// step processes and shows one frame, then handles input. It reports true
// when the user asked to quit.
func (a *app) step(img gocv.Mat) (bool, error) {
	band, row := a.src.Band(img)
	defer band.Close()

	a.rend.PushWaterfall(row)
	frame, err := a.proc.Process(row)
	if err != nil {
		return false, err
	}
	a.reportFilter(frame.FilterErr)

	status := render.Status{
		Calibration: a.proc.Calibrator().Summary(),
		SaveMessage: a.saveMsg,
		Gain:        a.src.Gain(),
		Held:        frame.Held,
		Params:      a.proc.Params(),
		FilterErr:   frame.FilterErr,
	}
	overlay := render.Overlay{
		Cursor:  a.cursor.Pos,
		Measure: a.cursor.Measure,
		Pixel:   a.cursor.Pixel,
		Clicks:  a.proc.Calibrator().Clicks(),
	}

	spectrum, err := a.rend.Spectrum(band, frame, status, overlay)
	if err != nil {
		return false, err
	}
	defer spectrum.Close()

	waterfall, ok, err := a.rend.Waterfall(band, status)
	if err != nil {
		return false, err
	}
	defer waterfall.Close()

	var wf *gocv.Mat
	if ok {
		wf = &waterfall
	}
	a.display.Show(spectrum, wf)

	return a.handle(control.Lookup(a.display.WaitKey(waitKeyMillis)), frame, spectrum, wf), nil
}

func (a *app) handle(cmd control.Command, frame spectro.Frame, spectrum gocv.Mat, waterfall *gocv.Mat) bool {
	switch cmd {
	case control.CmdNone:
	case control.CmdQuit:
		return true
	case control.CmdSnapshot:
		a.snapshot(frame, spectrum, waterfall)
	case control.CmdCalibrate:
		a.calibrate()
	case control.CmdClearClicks:
		a.proc.Calibrator().ClearClicks()
	case control.CmdMeasure:
		a.cursor.ToggleMeasure()
	case control.CmdPixel:
		a.cursor.TogglePixel()
		if !a.cursor.Pixel {
			a.proc.Calibrator().ClearClicks()
		}
	case control.CmdGainUp:
		a.log.Info("capture", "gain", logger.Fields{"gain": a.src.StepGain(1)})
	case control.CmdGainDown:
		a.log.Info("capture", "gain", logger.Fields{"gain": a.src.StepGain(-1)})
	default:
		params := a.proc.Apply(cmd.Action())
		a.log.Debug("spectro", cmd.String(), logger.Fields{"params": params.String(), "held": a.proc.Held()})
	}
	return false
}

func (a *app) onMouse(event, x, y int) {
	p := a.rend.PlotPoint(x, y)
	switch event {
	case render.MouseMove:
		a.cursor.Pos = p
	case render.MouseLeftDown:
		if a.cursor.AcceptsClicks() && p.In(image.Rect(0, 0, a.proc.Width(), render.GraphHeight)) {
			a.proc.Calibrator().AddClick(p.X)
		}
	}
}

func (a *app) calibrate() {
	cal := a.proc.Calibrator()
	clicks := cal.Clicks()
	if len(clicks) < 2 {
		a.log.Warning("calib", "need at least 2 clicked pixels", logger.Fields{"clicks": len(clicks)})
		return
	}

	waves, err := promptWavelengths(a.stdin, a.stdout, clicks)
	if err != nil {
		a.log.Warning("calib", "calibration cancelled", logger.Fields{"error": err.Error()})
		return
	}
	if err := cal.CommitClicks(waves); err != nil {
		a.log.Warning("calib", "calibration rejected, keeping previous axis", logger.Fields{"error": err.Error()})
		return
	}
	a.rend.SetAxis(cal.Axis())

	if err := calib.SaveFile(a.opts.calFile, cal.Points()); err != nil {
		a.log.Error("calib", err, logger.Fields{"file": a.opts.calFile})
		return
	}
	summary := cal.Summary()
	a.log.Info("calib", "calibration saved", logger.Fields{"file": a.opts.calFile, "method": summary[1], "range": summary[2]})
}

func (a *app) snapshot(frame spectro.Frame, spectrum gocv.Mat, waterfall *gocv.Mat) {
	paths, msg, err := export.Save(a.opts.outDir, time.Now(), export.Snapshot{
		Wavelengths: frame.Wavelengths,
		Intensity:   frame.Intensity,
		Spectrum:    spectrum,
		Waterfall:   waterfall,
	})
	if err != nil {
		a.log.Error("export", err, nil)
		return
	}
	a.saveMsg = msg
	a.log.Info("export", "snapshot saved", logger.Fields{"csv": paths.CSV, "png": paths.Spectrum})
}

// reportFilter logs filter config problems once per change.
func (a *app) reportFilter(err error) {
	if err == a.lastErr {
		return
	}
	if err != nil {
		a.log.Warning("spectro", "invalid filter config, keeping previous filter", logger.Fields{"error": err.Error()})
	}
	a.lastErr = err
}
