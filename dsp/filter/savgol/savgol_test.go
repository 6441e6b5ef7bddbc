package savgol

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestCoefficientsKnownTables(t *testing.T) {
	tests := []struct {
		name   string
		window int
		order  int
		want   []float64
	}{
		{"moving-average", 5, 0, []float64{0.2, 0.2, 0.2, 0.2, 0.2}},
		{"w5-quadratic", 5, 2, scale([]float64{-3, 12, 17, 12, -3}, 35)},
		{"w5-cubic", 5, 3, scale([]float64{-3, 12, 17, 12, -3}, 35)},
		{"w7-quadratic", 7, 2, scale([]float64{-2, 3, 6, 7, 6, 3, -2}, 21)},
		{"w9-quadratic", 9, 2, scale([]float64{-21, 14, 39, 54, 59, 54, 39, 14, -21}, 231)},
		{"w7-quartic", 7, 4, scale([]float64{5, -30, 75, 131, 75, -30, 5}, 231)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coefficients(tt.window, tt.order)
			if err != nil {
				t.Fatalf("Coefficients(%d, %d): %v", tt.window, tt.order, err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-10)
		})
	}
}

func TestCoefficientsSumToOne(t *testing.T) {
	for order := 0; order <= 15; order++ {
		taps, err := Coefficients(17, order)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		sum := 0.0
		for _, v := range taps {
			sum += v
		}
		if math.Abs(sum-1) > 1e-6 {
			t.Fatalf("order %d: taps sum to %g", order, sum)
		}
		for i := range taps {
			if taps[i] != taps[len(taps)-1-i] {
				t.Fatalf("order %d: taps not symmetric at %d", order, i)
			}
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		window int
		order  int
	}{
		{"even-window", 16, 3},
		{"tiny-window", 1, 0},
		{"negative-order", 17, -1},
		{"order-equals-window", 5, 5},
		{"order-above-window", 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.window, tt.order); !errors.Is(err, ErrInvalidFilterConfig) {
				t.Fatalf("New(%d, %d) error = %v, want ErrInvalidFilterConfig", tt.window, tt.order, err)
			}
		})
	}
}

func TestApplyWindowLongerThanTrace(t *testing.T) {
	f, err := New(17, 7)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Apply(make([]float64, 16)); !errors.Is(err, ErrInvalidFilterConfig) {
		t.Fatalf("error = %v, want ErrInvalidFilterConfig", err)
	}
	if _, err := f.Apply(make([]float64, 17)); err != nil {
		t.Fatalf("trace equal to window: %v", err)
	}
}

func TestApplyPreservesLength(t *testing.T) {
	f, err := New(17, 7)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{17, 18, 100, 800, 1280} {
		trace := testutil.DeterministicNoise(int64(n), 50, n)
		out, err := f.Apply(trace)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(out) != n {
			t.Fatalf("n=%d: output length %d", n, len(out))
		}
		testutil.RequireFinite(t, out)
	}
}

func TestApplyConstantIsIdentity(t *testing.T) {
	tests := []struct {
		window, order int
	}{
		{3, 0},
		{3, 2},
		{5, 2},
		{5, 4},
		{17, 0},
		{17, 7},
		{17, 15},
		{65, 2},  // FFT kernel path
		{65, 7},  // FFT kernel path
		{65, 12}, // FFT kernel path
	}
	for _, tt := range tests {
		f, err := New(tt.window, tt.order)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", tt.window, tt.order, err)
		}
		in := testutil.Flat(128, 400)
		out, err := f.Apply(in)
		if err != nil {
			t.Fatalf("window=%d order=%d: %v", tt.window, tt.order, err)
		}
		testutil.RequireSliceNearlyEqual(t, out, in, 1e-3)
	}
}

func TestApplyPreservesPolynomialInInterior(t *testing.T) {
	f, err := New(11, 3)
	if err != nil {
		t.Fatal(err)
	}

	n := 64
	in := make([]float64, n)
	for i := range in {
		x := float64(i) / 10
		in[i] = 2 - 3*x + 0.5*x*x - 0.1*x*x*x
	}
	out, err := f.Apply(in)
	if err != nil {
		t.Fatal(err)
	}

	half := f.Window() / 2
	testutil.RequireSliceNearlyEqual(t, out[half:n-half], in[half:n-half], 1e-9)
}

func TestApplyMirrorsBoundaries(t *testing.T) {
	f, err := New(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Apply([]float64{3, 0, 0, 6})
	if err != nil {
		t.Fatal(err)
	}
	// First sample averages x[1], x[0], x[1]; last averages x[2], x[3], x[2].
	want := []float64{1, 1, 2, 2}
	testutil.RequireSliceNearlyEqual(t, out, want, 1e-12)
}

func TestApplyReducesNoise(t *testing.T) {
	n := 800
	clean := testutil.Flat(10, n)
	testutil.EmissionLine(clean, 400, 20, 150)

	noisy := append([]float64(nil), clean...)
	noise := testutil.DeterministicNoise(7, 5, n)
	for i := range noisy {
		noisy[i] += noise[i]
	}

	out, err := Smooth(noisy, 17, 7)
	if err != nil {
		t.Fatal(err)
	}

	before := rmsError(noisy, clean)
	after := rmsError(out, clean)
	if after >= before {
		t.Fatalf("smoothing did not reduce error: before %g after %g", before, after)
	}
}

func TestApplyToLengthMismatch(t *testing.T) {
	f, err := New(5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.ApplyTo(make([]float64, 9), make([]float64, 10)); err == nil {
		t.Fatal("expected error for mismatched dst")
	}
}

func rmsError(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(a)))
}

func scale(x []float64, d float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / d
	}
	return out
}
