package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftState caches a plan and the zero-padded kernel spectrum for one FFT size.
type fftState struct {
	size      int
	plan      *algofft.Plan[complex128]
	kernelFFT []complex128
	work      []complex128
}

// prepare (re)builds the plan and kernel spectrum when size changes.
func (s *fftState) prepare(kernel []float64, size int) error {
	if s.plan != nil && s.size == size {
		return nil
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, size)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	spectrum := make([]complex128, size)
	if err := plan.Forward(spectrum, padded); err != nil {
		return fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	s.size = size
	s.plan = plan
	s.kernelFFT = spectrum
	s.work = make([]complex128, size)
	return nil
}

// convolve writes the full linear convolution of signal with the prepared
// kernel into dst, which must hold len(signal)+kernelLen-1 samples.
func (s *fftState) convolve(dst, signal []float64) error {
	for i := range s.work {
		s.work[i] = 0
	}
	for i, v := range signal {
		s.work[i] = complex(v, 0)
	}

	if err := s.plan.Forward(s.work, s.work); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i := range s.work {
		s.work[i] *= s.kernelFFT[i]
	}
	if err := s.plan.Inverse(s.work, s.work); err != nil {
		return fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(s.work[i])
	}
	return nil
}
