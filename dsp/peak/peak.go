package peak

import (
	"slices"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

// Find returns the indices of the peaks of trace in ascending order.
//
// thresholdFraction is clamped to [0, 1] and scales the trace maximum to give
// the minimum peak height. A candidate is dropped when it lies closer than
// minDistance samples to a peak that was already kept; candidates are visited
// by descending value with ties going to the lower index. A trace whose
// maximum is not positive has no peaks.
func Find(trace []float64, thresholdFraction float64, minDistance int) []int {
	if len(trace) < 3 {
		return []int{}
	}
	maxValue, _ := core.Max(trace)
	if !(maxValue > 0) {
		return []int{}
	}

	threshold := core.Clamp(thresholdFraction, 0, 1) * maxValue
	candidates := Candidates(trace, threshold)
	if minDistance <= 1 || len(candidates) < 2 {
		return candidates
	}
	return Suppress(trace, candidates, minDistance)
}

// Candidates returns every strict local maximum of trace whose value is at
// least threshold, in ascending order.
func Candidates(trace []float64, threshold float64) []int {
	out := []int{}
	for i := 1; i < len(trace)-1; i++ {
		v := trace[i]
		if v > trace[i-1] && v > trace[i+1] && v >= threshold {
			out = append(out, i)
		}
	}
	return out
}

// Suppress applies non-maximum suppression to candidates (indices into trace)
// and returns the survivors in ascending order.
func Suppress(trace []float64, candidates []int, minDistance int) []int {
	order := slices.Clone(candidates)
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case trace[a] > trace[b]:
			return -1
		case trace[a] < trace[b]:
			return 1
		default:
			return a - b
		}
	})

	kept := make([]int, 0, len(order))
	for _, c := range order {
		if tooClose(kept, c, minDistance) {
			continue
		}
		kept = append(kept, c)
	}
	slices.Sort(kept)
	return kept
}

func tooClose(kept []int, idx, minDistance int) bool {
	for _, k := range kept {
		d := idx - k
		if d < 0 {
			d = -d
		}
		if d < minDistance {
			return true
		}
	}
	return false
}
