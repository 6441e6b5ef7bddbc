package savgol

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/dsp/conv"
	"github.com/cwbudde/algo-spectro/dsp/core"
)

// Filter is a Savitzky-Golay smoother with a fixed window and order.
// The zero value is not usable; create one with [New].
// A Filter reuses internal buffers and is not safe for concurrent use.
type Filter struct {
	window int
	order  int
	kernel *conv.Kernel
	padded []float64
}

// New designs the smoothing kernel for window and order.
func New(window, order int) (*Filter, error) {
	taps, err := Coefficients(window, order)
	if err != nil {
		return nil, err
	}
	kernel, err := conv.NewKernel(taps)
	if err != nil {
		return nil, err
	}
	return &Filter{window: window, order: order, kernel: kernel}, nil
}

// Window returns the window length in samples.
func (f *Filter) Window() int { return f.window }

// Order returns the polynomial order.
func (f *Filter) Order() int { return f.order }

// Coefficients returns a copy of the smoothing kernel.
func (f *Filter) Coefficients() []float64 { return f.kernel.Taps() }

// Apply returns the smoothed trace, which has the same length as trace.
func (f *Filter) Apply(trace []float64) ([]float64, error) {
	out := make([]float64, len(trace))
	if err := f.ApplyTo(out, trace); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyTo smooths trace into dst. Both slices must have the same length and
// the window must not be longer than the trace.
func (f *Filter) ApplyTo(dst, trace []float64) error {
	n := len(trace)
	if f.window > n {
		return fmt.Errorf("%w: window %d longer than trace %d", ErrInvalidFilterConfig, f.window, n)
	}
	if len(dst) != n {
		return fmt.Errorf("%w: expected %d, got %d", conv.ErrLengthMismatch, n, len(dst))
	}

	half := f.window / 2
	f.padded = core.EnsureLen(f.padded, n+2*half)
	mirrorPad(f.padded, trace, half)

	return f.kernel.CorrelateValid(dst, f.padded)
}

// mirrorPad writes trace into dst with half samples reflected about each end.
// half must be < len(trace).
func mirrorPad(dst, trace []float64, half int) {
	n := len(trace)
	copy(dst[half:half+n], trace)
	for k := 1; k <= half; k++ {
		dst[half-k] = trace[k]
		dst[half+n-1+k] = trace[n-1-k]
	}
}

// Smooth is a one-shot helper that designs a filter and applies it.
func Smooth(trace []float64, window, order int) ([]float64, error) {
	f, err := New(window, order)
	if err != nil {
		return nil, err
	}
	return f.Apply(trace)
}
