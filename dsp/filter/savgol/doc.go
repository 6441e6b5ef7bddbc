// Package savgol implements Savitzky-Golay polynomial smoothing.
//
// A least-squares polynomial of a given order is fitted to every window of
// samples and the fitted centre value becomes the output sample. For a fixed
// window and order this reduces to a symmetric FIR kernel, designed once by
// [Coefficients] and applied through [dsp/conv].
//
// The trace is mirrored about its first and last sample so the output has
// exactly the input length and the boundary samples are defined:
//
//	x[-k] = x[k]
//	x[W-1+k] = x[W-1-k]
package savgol
