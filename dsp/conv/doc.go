// Package conv provides the correlation routine behind the trace filters.
//
// A [Kernel] is prepared once and applied to many traces of the same length.
// Short kernels are evaluated directly in O(N*M); long ones go through a
// whole-signal FFT from algo-fft, with the plan and the kernel spectrum
// cached between calls.
//
// # Usage
//
//	k, err := conv.NewKernel(taps)
//	out := make([]float64, len(x)-k.Len()+1)
//	err = k.CorrelateValid(out, x)
package conv
