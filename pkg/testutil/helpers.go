// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/mathutil"
)

// FindResultByYear finds the first result for year in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResultByYear(results []eoq.Result, year int) *eoq.Result {
	for i := range results {
		if results[i].Year != nil && *results[i].Year == year {
			return &results[i]
		}
	}
	return nil
}

// AlmostEqual reports whether got is within the engine's relative tolerance
// of want.
func AlmostEqual(got, want float64) bool {
	return mathutil.WithinRelativeTolerance(got, want)
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
