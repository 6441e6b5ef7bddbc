package conv

import "fmt"

// Kernel is a fixed set of FIR taps prepared for repeated application to
// traces. It is not safe for concurrent use.
type Kernel struct {
	taps     []float64
	reversed []float64
	scratch  []float64
	useFFT   bool
	fft      fftState
	full     []float64
}

// NewKernel copies taps and selects the evaluation strategy from their count.
func NewKernel(taps []float64) (*Kernel, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyKernel
	}

	k := &Kernel{
		taps:     append([]float64(nil), taps...),
		reversed: make([]float64, len(taps)),
		scratch:  make([]float64, len(taps)),
		useFFT:   len(taps) > directThreshold,
	}
	for i, v := range taps {
		k.reversed[len(taps)-1-i] = v
	}
	return k, nil
}

// Len returns the number of taps.
func (k *Kernel) Len() int {
	return len(k.taps)
}

// Taps returns a copy of the kernel taps.
func (k *Kernel) Taps() []float64 {
	return append([]float64(nil), k.taps...)
}

// CorrelateValid slides the kernel over x and writes
//
//	dst[i] = sum_j x[i+j] * taps[j]
//
// for every fully overlapping position. dst must hold len(x)-Len()+1 samples.
func (k *Kernel) CorrelateValid(dst, x []float64) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	m := len(k.taps)
	if len(x) < m {
		return fmt.Errorf("%w: input %d shorter than kernel %d", ErrLengthMismatch, len(x), m)
	}
	if want := len(x) - m + 1; len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	if !k.useFFT {
		correlateValidDirect(dst, x, k.taps, k.scratch)
		return nil
	}

	// Correlation is convolution with the time-reversed taps; the valid part
	// of the full result starts at m-1.
	n := len(x) + m - 1
	if err := k.fft.prepare(k.reversed, nextPowerOf2(n)); err != nil {
		return err
	}
	if cap(k.full) < n {
		k.full = make([]float64, n)
	}
	full := k.full[:n]
	if err := k.fft.convolve(full, x); err != nil {
		return err
	}
	copy(dst, full[m-1:len(x)])
	return nil
}
