package hold

import (
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestTrackingPassesThrough(t *testing.T) {
	var acc Accumulator
	raw := []float64{1, 2, 3}
	got := acc.Process(raw)
	testutil.RequireSliceNearlyEqual(t, got, raw, 0)
	if acc.Held() {
		t.Fatal("zero value should be tracking")
	}
}

func TestHeldKeepsRunningMaximum(t *testing.T) {
	var acc Accumulator
	if s := acc.Toggle(); s != Held {
		t.Fatalf("Toggle() = %v, want held", s)
	}

	acc.Process([]float64{1, 5, 2})
	acc.Process([]float64{3, 4, 2})
	got := acc.Process([]float64{0, 0, 7})
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 5, 7}, 0)
}

func TestEnteringHeldDiscardsPreviousMaximum(t *testing.T) {
	var acc Accumulator
	acc.SetHeld(true)
	acc.Process([]float64{9, 9, 9})

	acc.Toggle()
	if acc.Held() {
		t.Fatal("expected tracking after second toggle")
	}
	got := acc.Process([]float64{1, 1, 1})
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1, 1}, 0)

	acc.Toggle()
	got = acc.Process([]float64{2, 0, 2})
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 0, 2}, 0)
}

func TestSetHeldWhileHeldKeepsMaximum(t *testing.T) {
	var acc Accumulator
	acc.SetHeld(true)
	acc.Process([]float64{4, 4})
	acc.SetHeld(true)
	got := acc.Process([]float64{1, 1})
	testutil.RequireSliceNearlyEqual(t, got, []float64{4, 4}, 0)
}

func TestLengthChangeRestarts(t *testing.T) {
	var acc Accumulator
	acc.SetHeld(true)
	acc.Process([]float64{10, 10})
	got := acc.Process([]float64{1, 2, 3})
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2, 3}, 0)
}

func TestHeldDoesNotAliasInput(t *testing.T) {
	var acc Accumulator
	acc.SetHeld(true)
	raw := []float64{1, 2}
	acc.Process(raw)
	raw[0] = 100
	got := acc.Process([]float64{0, 0})
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2}, 0)
}
