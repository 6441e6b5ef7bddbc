// Package core holds the small numeric and slice helpers shared by the
// spectrum pipeline: clamping of live-tunable parameters, tolerant float
// comparison and whole-count rounding of intensity traces.
package core
