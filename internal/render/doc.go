// Package render draws the spectrograph and waterfall views.
//
// Pixel-level drawing (trace bars, graticule, waterfall rows) goes into a
// plain BGR [Canvas] so it can be exercised without OpenCV; text, markers,
// stacking and windows are done with gocv on top of the canvas.
package render
