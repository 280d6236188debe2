package domain

import (
	"fmt"
	"math"
)

// Threshold bounds for the minimum-magnitude filter.
const (
	MinThreshold  = 0.0
	MaxThreshold  = 8.0
	ThresholdStep = 0.5
)

// ValidateThreshold checks that v lies in [MinThreshold, MaxThreshold] and on
// a ThresholdStep boundary.
func ValidateThreshold(v float64) error {
	if math.IsNaN(v) || v < MinThreshold || v > MaxThreshold {
		return fmt.Errorf("threshold %g out of range [%g, %g]", v, MinThreshold, MaxThreshold)
	}
	if steps := v / ThresholdStep; steps != math.Trunc(steps) {
		return fmt.Errorf("threshold %g is not a multiple of %g", v, ThresholdStep)
	}
	return nil
}

// StepThreshold moves v by n steps, clamped to the valid range.
func StepThreshold(v float64, n int) float64 {
	next := v + float64(n)*ThresholdStep
	return math.Max(MinThreshold, math.Min(MaxThreshold, next))
}

// FilterByMagnitude returns the events whose magnitude is at least threshold,
// preserving order. The input slice is not modified.
func FilterByMagnitude(events []SeismicEvent, threshold float64) []SeismicEvent {
	out := make([]SeismicEvent, 0, len(events))
	for _, e := range events {
		if e.Magnitude >= threshold {
			out = append(out, e)
		}
	}
	return out
}
