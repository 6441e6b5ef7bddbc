package calib

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

var (
	// ErrInvalidCalibration is returned when a set of points cannot produce an
	// axis: too few points, duplicate or negative pixels, non-finite
	// wavelengths or a numerically singular fit.
	ErrInvalidCalibration = errors.New("calib: invalid calibration")

	// ErrInvalidWidth is returned for a sensor width that is not positive.
	ErrInvalidWidth = errors.New("calib: invalid width")

	// ErrMalformedFile is returned when persisted points cannot be parsed.
	ErrMalformedFile = errors.New("calib: malformed calibration data")
)

func validateWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	return nil
}

func validatePoints(points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidCalibration, len(points))
	}
	seen := make(map[int]struct{}, len(points))
	for _, p := range points {
		if p.Pixel < 0 {
			return fmt.Errorf("%w: negative pixel %d", ErrInvalidCalibration, p.Pixel)
		}
		if !core.IsFinite(p.Wavelength) {
			return fmt.Errorf("%w: pixel %d has non-finite wavelength", ErrInvalidCalibration, p.Pixel)
		}
		if _, dup := seen[p.Pixel]; dup {
			return fmt.Errorf("%w: duplicate pixel %d", ErrInvalidCalibration, p.Pixel)
		}
		seen[p.Pixel] = struct{}{}
	}
	return nil
}
