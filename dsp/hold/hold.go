package hold

import "github.com/cwbudde/algo-spectro/dsp/core"

// State is the accumulator mode.
type State int

const (
	// Tracking passes every trace through unchanged.
	Tracking State = iota
	// Held reports the running per-sample maximum.
	Held
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Tracking:
		return "tracking"
	case Held:
		return "held"
	default:
		return "unknown"
	}
}

// Accumulator tracks the hold state and the running maximum.
// The zero value is a usable accumulator in the Tracking state.
type Accumulator struct {
	state State
	peak  []float64
	fresh bool
}

// State returns the current mode.
func (a *Accumulator) State() State { return a.state }

// Held reports whether the accumulator is in the Held state.
func (a *Accumulator) Held() bool { return a.state == Held }

// Toggle switches between Tracking and Held and returns the new state.
func (a *Accumulator) Toggle() State {
	a.SetHeld(a.state != Held)
	return a.state
}

// SetHeld enters or leaves the Held state. Entering Held discards any
// previously accumulated maximum.
func (a *Accumulator) SetHeld(held bool) {
	if held {
		if a.state != Held {
			a.fresh = true
		}
		a.state = Held
		return
	}
	a.state = Tracking
}

// Process feeds one trace. In Tracking it returns raw itself; in Held it
// folds raw into the running maximum and returns the accumulator's buffer,
// which stays valid until the next call. A trace of a different length
// restarts the maximum.
func (a *Accumulator) Process(raw []float64) []float64 {
	if a.state != Held {
		return raw
	}
	if a.fresh || len(a.peak) != len(raw) {
		a.peak = core.EnsureLen(a.peak, len(raw))
		copy(a.peak, raw)
		a.fresh = false
		return a.peak
	}
	for i, v := range raw {
		if v > a.peak[i] {
			a.peak[i] = v
		}
	}
	return a.peak
}
