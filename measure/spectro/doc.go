// Package spectro runs the per-frame spectrum pipeline.
//
// A [Processor] turns one raw intensity row per video frame into a [Frame]:
// the wavelength axis from the active calibration, the conditioned intensity
// trace and the labelled peaks. Tunable parameters live in an explicit
// [Params] value that is adjusted between frames through [Action] events.
//
// Per frame the processor
//
//  1. checks the row length against the sensor width,
//  2. folds the row into the hold accumulator,
//  3. smooths it with a Savitzky-Golay filter unless hold is active,
//  4. rounds to whole counts and extracts peaks.
//
// An invalid smoothing configuration never aborts a frame: the last working
// filter stays in use and the problem is reported in [Frame.FilterErr].
package spectro
