package interp

import (
	"math"
	"testing"
)

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 2, 4); got != 2.5 {
		t.Fatalf("Linear2() = %v, want 2.5", got)
	}
}

func TestParabolic(t *testing.T) {
	tests := []struct {
		name        string
		ym1, y0, y1 float64
		offset      float64
		height      float64
	}{
		{"symmetric", 1, 3, 1, 0, 3},
		{"collinear", 1, 2, 3, 0, 2},
		{"right-leaning", 0, 4, 3, 0.3, 4.225},
		{"left-leaning", 3, 4, 0, -0.3, 4.225},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, h := Parabolic(tt.ym1, tt.y0, tt.y1)
			if math.Abs(off-tt.offset) > 1e-12 || math.Abs(h-tt.height) > 1e-12 {
				t.Fatalf("Parabolic() = (%v, %v), want (%v, %v)", off, h, tt.offset, tt.height)
			}
		})
	}
}

func TestParabolicRecoversSampledParabola(t *testing.T) {
	// y = 10 - 2*(x-0.2)^2 sampled at -1, 0, 1.
	f := func(x float64) float64 { return 10 - 2*(x-0.2)*(x-0.2) }
	off, h := Parabolic(f(-1), f(0), f(1))
	if math.Abs(off-0.2) > 1e-12 || math.Abs(h-10) > 1e-12 {
		t.Fatalf("Parabolic() = (%v, %v), want (0.2, 10)", off, h)
	}
}

func TestVertexEdges(t *testing.T) {
	trace := []float64{5, 1, 7}
	if pos, h := Vertex(trace, 0); pos != 0 || h != 5 {
		t.Fatalf("Vertex(0) = (%v, %v)", pos, h)
	}
	if pos, h := Vertex(trace, 2); pos != 2 || h != 7 {
		t.Fatalf("Vertex(2) = (%v, %v)", pos, h)
	}
}
