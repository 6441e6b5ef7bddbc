// Package hold implements a peak-hold accumulator for live intensity traces.
//
// In the Tracking state traces pass through unchanged. In the Held state the
// accumulator keeps the per-sample maximum of every trace seen since the hold
// was activated.
package hold
