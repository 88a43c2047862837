// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
)

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// RelativeError returns |got-want|/|want|, or |got| when want is zero.
func RelativeError(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// WithinRelativeTolerance checks that got is within the default relative
// tolerance of want.
func WithinRelativeTolerance(got, want float64) bool {
	return RelativeError(got, want) <= constants.RelativeTolerance
}
