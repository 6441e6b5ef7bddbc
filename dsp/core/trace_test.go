package core

import (
	"math"
	"testing"
)

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 2, 8)
	got := EnsureLen(buf, 6)
	if len(got) != 6 || cap(got) != 8 {
		t.Fatalf("len=%d cap=%d, want 6/8", len(got), cap(got))
	}
	got = EnsureLen(buf, 16)
	if len(got) != 16 {
		t.Fatalf("len=%d, want 16", len(got))
	}
	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestMax(t *testing.T) {
	v, i := Max([]float64{0, 10, 50, 10, 80, 80, 0})
	if v != 80 || i != 4 {
		t.Fatalf("Max = (%v, %d), want (80, 4)", v, i)
	}
	if v, i := Max(nil); v != 0 || i != -1 {
		t.Fatalf("Max(nil) = (%v, %d), want (0, -1)", v, i)
	}
}

func TestTruncCounts(t *testing.T) {
	x := []float64{127.5, 127.99, -0.2, 3.9999999, 255, -4.7, 5.0000001}
	TruncCounts(x)
	want := []float64{127, 127, 0, 4, 255, -4, 5}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, x[i], want[i])
		}
	}
	if math.Signbit(x[2]) {
		t.Fatal("negative zero survived truncation")
	}
}

func TestFromBytes(t *testing.T) {
	got := FromBytes(nil, []byte{0, 5, 255})
	want := []float64{0, 5, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
