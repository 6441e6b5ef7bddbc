package spectro

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

const (
	defaultSmoothingWindow  = 17
	defaultPolyOrder        = 7
	defaultMinDistance      = 50
	defaultThresholdPercent = 20

	// MaxPolyOrder is the highest order reachable through actions.
	MaxPolyOrder = 15
	// MaxMinDistance is the largest peak spacing reachable through actions.
	MaxMinDistance = 100
	// MaxThresholdPercent is the largest relative threshold.
	MaxThresholdPercent = 100
)

// Params holds the live-tunable processing parameters.
type Params struct {
	// SmoothingWindow is the Savitzky-Golay window length in pixels.
	SmoothingWindow int
	// PolyOrder is the Savitzky-Golay polynomial order.
	PolyOrder int
	// MinDistance is the minimum spacing between labelled peaks in pixels.
	MinDistance int
	// ThresholdPercent is the minimum peak height in intensity counts
	// (0-100).
	ThresholdPercent int
}

// DefaultParams returns a 17-pixel, 7th-order smoother with peaks at least 50
// pixels apart and 20% of the maximum tall.
func DefaultParams() Params {
	return Params{
		SmoothingWindow:  defaultSmoothingWindow,
		PolyOrder:        defaultPolyOrder,
		MinDistance:      defaultMinDistance,
		ThresholdPercent: defaultThresholdPercent,
	}
}

// ThresholdFraction expresses ThresholdPercent as a fraction of max, the
// trace maximum, clamped to [0, 1]. A non-positive max yields 0.
func (p Params) ThresholdFraction(max float64) float64 {
	if !(max > 0) {
		return 0
	}
	return core.Clamp(float64(p.ThresholdPercent)/max, 0, 1)
}

// String implements fmt.Stringer.
func (p Params) String() string {
	return fmt.Sprintf("window=%d order=%d mindist=%d thresh=%d",
		p.SmoothingWindow, p.PolyOrder, p.MinDistance, p.ThresholdPercent)
}

// Action is a discrete parameter adjustment requested by the user.
type Action int

const (
	ActionNone Action = iota
	ActionSmoothUp
	ActionSmoothDown
	ActionDistanceUp
	ActionDistanceDown
	ActionThresholdUp
	ActionThresholdDown
	ActionToggleHold
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionSmoothUp:      "smooth-up",
	ActionSmoothDown:    "smooth-down",
	ActionDistanceUp:    "distance-up",
	ActionDistanceDown:  "distance-down",
	ActionThresholdUp:   "threshold-up",
	ActionThresholdDown: "threshold-down",
	ActionToggleHold:    "toggle-hold",
}

// String implements fmt.Stringer.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Apply returns p with the field addressed by a stepped by one and clamped to
// its range. Actions that do not address a parameter return p unchanged.
func (p Params) Apply(a Action) Params {
	switch a {
	case ActionSmoothUp:
		p.PolyOrder = core.ClampInt(p.PolyOrder+1, 0, MaxPolyOrder)
	case ActionSmoothDown:
		p.PolyOrder = core.ClampInt(p.PolyOrder-1, 0, MaxPolyOrder)
	case ActionDistanceUp:
		p.MinDistance = core.ClampInt(p.MinDistance+1, 0, MaxMinDistance)
	case ActionDistanceDown:
		p.MinDistance = core.ClampInt(p.MinDistance-1, 0, MaxMinDistance)
	case ActionThresholdUp:
		p.ThresholdPercent = core.ClampInt(p.ThresholdPercent+1, 0, MaxThresholdPercent)
	case ActionThresholdDown:
		p.ThresholdPercent = core.ClampInt(p.ThresholdPercent-1, 0, MaxThresholdPercent)
	}
	return p
}
