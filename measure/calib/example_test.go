package calib_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/measure/calib"
)

func ExampleFit() {
	axis, err := calib.Fit([]calib.Point{
		{Pixel: 0, Wavelength: 380},
		{Pixel: 799, Wavelength: 750},
	}, 800)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f %.1f %.1f\n", axis.At(0), axis.At(200), axis.At(799))
	// Output: 380.0 472.6 750.0
}

func ExampleCalibrator_Summary() {
	c, err := calib.NewCalibrator(800)
	if err != nil {
		panic(err)
	}
	if err := c.Commit([]calib.Point{{Pixel: 0, Wavelength: 380}, {Pixel: 799, Wavelength: 750}}); err != nil {
		panic(err)
	}
	for _, line := range c.Summary() {
		fmt.Println(line)
	}
	// Output:
	// Calibrated
	// Linear (2-point)
	// 380.0-750.0nm
}
