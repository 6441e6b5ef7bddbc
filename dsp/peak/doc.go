// Package peak finds labelled local maxima in an intensity trace.
//
// A sample is a candidate when it is strictly greater than both neighbours and
// at least a fraction of the trace maximum. Candidates closer than a minimum
// distance to a stronger peak are suppressed. Plateaus and the two end
// samples are never peaks.
package peak
