package calib

import (
	"fmt"
	"slices"
)

// State is the calibration status of a [Calibrator].
type State int

const (
	// StateUncalibrated means the axis is the nominal default.
	StateUncalibrated State = iota
	// StateCalibrated means the axis was fitted from user points.
	StateCalibrated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUncalibrated:
		return "uncalibrated"
	case StateCalibrated:
		return "calibrated"
	default:
		return "unknown"
	}
}

// Calibrator owns the active wavelength axis for a sensor of fixed width and
// the pixel positions clicked while collecting new reference points.
// It is not safe for concurrent use.
type Calibrator struct {
	width  int
	state  State
	axis   Axis
	points []Point
	clicks []int
}

// NewCalibrator returns an uncalibrated Calibrator using the nominal axis
// from [DefaultPoints].
func NewCalibrator(width int) (*Calibrator, error) {
	points := DefaultPoints(width)
	axis, err := Fit(points, width)
	if err != nil {
		return nil, err
	}
	return &Calibrator{
		width:  width,
		state:  StateUncalibrated,
		axis:   axis,
		points: points,
	}, nil
}

// Width returns the sensor width in pixels.
func (c *Calibrator) Width() int { return c.width }

// State returns the calibration status.
func (c *Calibrator) State() State { return c.state }

// Axis returns the active axis.
func (c *Calibrator) Axis() Axis { return c.axis }

// Points returns a copy of the points behind the active axis.
func (c *Calibrator) Points() []Point { return slices.Clone(c.points) }

// Commit fits points and, on success, makes the result the active axis and
// moves to StateCalibrated. On failure the calibrator is left untouched and
// the error wraps [ErrInvalidCalibration].
func (c *Calibrator) Commit(points []Point) error {
	axis, err := Fit(points, c.width)
	if err != nil {
		return err
	}
	c.axis = axis
	c.points = sortedPoints(points)
	c.state = StateCalibrated
	return nil
}

// AddClick records a clicked pixel as a pending reference position.
// Positions outside [0, width) are ignored and reported as false.
func (c *Calibrator) AddClick(pixel int) bool {
	if pixel < 0 || pixel >= c.width {
		return false
	}
	c.clicks = append(c.clicks, pixel)
	return true
}

// Clicks returns a copy of the pending clicked pixels in click order.
func (c *Calibrator) Clicks() []int { return slices.Clone(c.clicks) }

// ClearClicks discards all pending clicks.
func (c *Calibrator) ClearClicks() { c.clicks = c.clicks[:0] }

// CommitClicks pairs the pending clicks with wavelengths, in click order, and
// commits them. Pending clicks are cleared only when the commit succeeds.
func (c *Calibrator) CommitClicks(wavelengths []float64) error {
	if len(wavelengths) != len(c.clicks) {
		return fmt.Errorf("%w: %d clicks but %d wavelengths", ErrInvalidCalibration, len(c.clicks), len(wavelengths))
	}
	points := make([]Point, len(c.clicks))
	for i, px := range c.clicks {
		points[i] = Point{Pixel: px, Wavelength: wavelengths[i]}
	}
	if err := c.Commit(points); err != nil {
		return err
	}
	c.ClearClicks()
	return nil
}

// Summary returns the three status lines shown next to the spectrum:
// calibration state, fit method and wavelength range.
func (c *Calibrator) Summary() [3]string {
	status := "UNCALIBRATED!"
	if c.state == StateCalibrated {
		status = "Calibrated"
	}

	var method string
	switch c.axis.Method() {
	case MethodLinear:
		method = "Linear (2-point)"
	case MethodQuadratic:
		method = "2nd Order Polyfit"
	case MethodCubic:
		method = fmt.Sprintf("3rd Order Polyfit R²=%.4f", c.axis.RSquared())
	}

	lo, hi := c.axis.Range()
	return [3]string{status, method, fmt.Sprintf("%.1f-%.1fnm", lo, hi)}
}
