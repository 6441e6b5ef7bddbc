// Package calib maps sensor pixel positions to wavelengths.
//
// A calibration is a small set of reference points, each pairing a pixel
// column with the known wavelength of a line seen there. [Fit] turns the
// points into a per-pixel [Axis]:
//
//   - 2 points: straight line through both;
//   - 3 points: exact quadratic through all three;
//   - 4 or more points: least-squares cubic, with R² reported.
//
// The fit interpolates between the reference pixels and extrapolates beyond
// them. A [Calibrator] holds the active axis and only replaces it on a
// successful fit, so a bad set of points never disturbs a working axis.
//
// Points are persisted in a two-line text format: comma-separated pixels on
// the first line and comma-separated wavelengths on the second.
package calib
