// internal/schedule/deviation.go
package schedule

import (
	"math"
	"time"
)

// RawMinutes is the rounded signed minute difference between two instants.
// Positive means actual came after expected.
func RawMinutes(actual, expected time.Time) int {
	return int(math.Round(actual.Sub(expected).Minutes()))
}

// ApplyTolerance snaps a raw deviation inside the tolerance band to zero and
// shifts anything outside it inward by the tolerance. The result is zero
// exactly when |raw| <= tolerance; otherwise it keeps raw's sign with the
// magnitude reduced by exactly the tolerance.
func ApplyTolerance(raw, toleranceMin int) int {
	switch {
	case abs(raw) <= toleranceMin:
		return 0
	case raw > 0:
		return raw - toleranceMin
	default:
		return raw + toleranceMin
	}
}

// Deviation computes the tolerance-banded signed minute deviation of actual
// from expected. Callers build both instants on the same calendar date so
// only the time of day matters.
func Deviation(actual, expected time.Time, toleranceMin int) int {
	return ApplyTolerance(RawMinutes(actual, expected), toleranceMin)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
