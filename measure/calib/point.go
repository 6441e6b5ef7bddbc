package calib

import (
	"cmp"
	"fmt"
	"slices"
)

// Point pairs a pixel column with the known wavelength observed there, in nm.
type Point struct {
	Pixel      int
	Wavelength float64
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("%dpx=%gnm", p.Pixel, p.Wavelength)
}

// sortedPoints returns a copy of points ordered by pixel.
func sortedPoints(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortFunc(out, func(a, b Point) int { return cmp.Compare(a.Pixel, b.Pixel) })
	return out
}

// DefaultPoints returns the nominal points used before any calibration has
// been made: the sensor's left edge, centre and right edge mapped to 380, 560
// and 750 nm. Sensors narrower than 2 pixels have no distinct centre and get
// only the two edge points.
func DefaultPoints(width int) []Point {
	if width < 2 {
		return []Point{
			{Pixel: 0, Wavelength: 380},
			{Pixel: max(width, 1), Wavelength: 750},
		}
	}
	return []Point{
		{Pixel: 0, Wavelength: 380},
		{Pixel: width / 2, Wavelength: 560},
		{Pixel: width, Wavelength: 750},
	}
}
