package spectro

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/dsp/core"
	"github.com/cwbudde/algo-spectro/dsp/filter/savgol"
	"github.com/cwbudde/algo-spectro/dsp/hold"
	"github.com/cwbudde/algo-spectro/dsp/interp"
	"github.com/cwbudde/algo-spectro/dsp/peak"
	"github.com/cwbudde/algo-spectro/measure/calib"
)

// Peak is a labelled local maximum.
type Peak struct {
	Pixel      int
	Wavelength float64
	Value      float64
	// Centre is the sub-pixel position of the maximum and CentreWavelength
	// the axis evaluated there.
	Centre           float64
	CentreWavelength float64
}

// Frame is the result of processing one raw row.
type Frame struct {
	// Wavelengths is the calibrated axis, one entry per pixel.
	Wavelengths []float64
	// Intensity is the conditioned trace in whole counts.
	Intensity []float64
	// Peaks are ordered by ascending pixel.
	Peaks []Peak
	// Held reports whether the trace is a held maximum rather than smoothed.
	Held bool
	// FilterErr is set when the current params do not describe a valid
	// filter; the previous filter was used instead.
	FilterErr error
}

// Processor runs the spectrum pipeline for a sensor of fixed width.
// It is not safe for concurrent use.
type Processor struct {
	width  int
	params Params
	cal    *calib.Calibrator
	hold   hold.Accumulator

	filter       *savgol.Filter
	filterWindow int
	filterOrder  int

	// rejected remembers the last params that failed to build a filter.
	rejected    [2]int
	rejectedErr error
}

// New returns a Processor for rows of width pixels.
//
// The initial params must describe a valid filter for the width; the error
// then wraps [savgol.ErrInvalidFilterConfig]. A rejected [WithCalibration]
// returns an error wrapping [calib.ErrInvalidCalibration].
func New(width int, opts ...Option) (*Processor, error) {
	cfg := applyOptions(opts...)

	cal, err := calib.NewCalibrator(width)
	if err != nil {
		return nil, err
	}
	if cfg.points != nil {
		if err := cal.Commit(cfg.points); err != nil {
			return nil, fmt.Errorf("spectro: initial calibration: %w", err)
		}
	}

	p := &Processor{width: width, params: cfg.params, cal: cal}
	if err := p.rebuildFilter(); err != nil {
		return nil, fmt.Errorf("spectro: initial params: %w", err)
	}
	p.hold.SetHeld(cfg.held)
	return p, nil
}

// Width returns the sensor width in pixels.
func (p *Processor) Width() int { return p.width }

// Params returns the current parameters.
func (p *Processor) Params() Params { return p.params }

// SetParams replaces the parameters. They take effect on the next frame.
func (p *Processor) SetParams(params Params) { p.params = params }

// Apply handles one user action between frames and returns the resulting
// parameters.
func (p *Processor) Apply(a Action) Params {
	if a == ActionToggleHold {
		p.hold.Toggle()
		return p.params
	}
	p.params = p.params.Apply(a)
	return p.params
}

// Held reports whether peak hold is active.
func (p *Processor) Held() bool { return p.hold.Held() }

// Calibrator exposes the calibration state, including pending clicks.
func (p *Processor) Calibrator() *calib.Calibrator { return p.cal }

// Axis returns the active wavelength axis.
func (p *Processor) Axis() calib.Axis { return p.cal.Axis() }

// Recalibrate commits points. A rejected set leaves the active axis in place.
func (p *Processor) Recalibrate(points []calib.Point) error {
	return p.cal.Commit(points)
}

// Process conditions one raw row and extracts its peaks.
func (p *Processor) Process(raw []float64) (Frame, error) {
	if len(raw) != p.width {
		return Frame{}, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(raw), p.width)
	}

	axis := p.cal.Axis()
	frame := Frame{
		Wavelengths: axis.Values(),
		Intensity:   make([]float64, p.width),
		Held:        p.hold.Held(),
	}

	values := p.hold.Process(raw)
	if frame.Held {
		copy(frame.Intensity, values)
	} else {
		frame.FilterErr = p.updateFilter()
		if err := p.filter.ApplyTo(frame.Intensity, values); err != nil {
			return Frame{}, fmt.Errorf("spectro: smoothing: %w", err)
		}
	}
	core.TruncCounts(frame.Intensity)

	maxValue, _ := core.Max(frame.Intensity)
	idx := peak.Find(frame.Intensity, p.params.ThresholdFraction(maxValue), p.params.MinDistance)
	frame.Peaks = make([]Peak, len(idx))
	for i, px := range idx {
		centre, _ := interp.Vertex(frame.Intensity, px)
		frame.Peaks[i] = Peak{
			Pixel:            px,
			Wavelength:       axis.At(px),
			Value:            frame.Intensity[px],
			Centre:           centre,
			CentreWavelength: axis.Eval(centre),
		}
	}
	return frame, nil
}

// updateFilter rebuilds the cached filter when the params changed. On failure
// the previous filter is kept and the error is returned until the params
// change again.
func (p *Processor) updateFilter() error {
	window, order := p.params.SmoothingWindow, p.params.PolyOrder
	if window == p.filterWindow && order == p.filterOrder {
		return nil
	}
	if p.rejectedErr != nil && p.rejected == [2]int{window, order} {
		return p.rejectedErr
	}
	if err := p.rebuildFilter(); err != nil {
		p.rejected, p.rejectedErr = [2]int{window, order}, err
		return err
	}
	p.rejectedErr = nil
	return nil
}

func (p *Processor) rebuildFilter() error {
	window, order := p.params.SmoothingWindow, p.params.PolyOrder
	if window > p.width {
		return fmt.Errorf("%w: window %d longer than width %d", savgol.ErrInvalidFilterConfig, window, p.width)
	}
	f, err := savgol.New(window, order)
	if err != nil {
		return err
	}
	p.filter = f
	p.filterWindow, p.filterOrder = window, order
	return nil
}
