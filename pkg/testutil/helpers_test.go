package testutil

import (
	"testing"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
)

func TestFindResultByYear(t *testing.T) {
	// Create test data
	results := []eoq.Result{
		{Year: IntPtr(2021), AnnualDemand: 1000},
		{AnnualDemand: 1500},
		{Year: IntPtr(2022), AnnualDemand: 2000},
		{Year: IntPtr(2022), AnnualDemand: 2500},
	}

	tests := []struct {
		name           string
		year           int
		expectFound    bool
		expectedDemand float64
	}{
		{
			name:           "Find existing year 2021",
			year:           2021,
			expectFound:    true,
			expectedDemand: 1000,
		},
		{
			name:           "Duplicate year returns first",
			year:           2022,
			expectFound:    true,
			expectedDemand: 2000,
		},
		{
			name:        "Search for missing year",
			year:        2030,
			expectFound: false,
		},
		{
			name:        "Zero year does not match undated result",
			year:        0,
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindResultByYear(results, tt.year)

			if tt.expectFound {
				if result == nil {
					t.Errorf("FindResultByYear() expected to find year %d but got nil", tt.year)
					return
				}
				if *result.Year != tt.year {
					t.Errorf("FindResultByYear() returned year %d, expected %d", *result.Year, tt.year)
				}
				if result.AnnualDemand != tt.expectedDemand {
					t.Errorf("FindResultByYear() returned demand %v, expected %v",
						result.AnnualDemand, tt.expectedDemand)
				}
			} else if result != nil {
				t.Errorf("FindResultByYear() expected nil for year %d but got %+v", tt.year, result)
			}
		})
	}
}

func TestFindResultByYearNilResults(t *testing.T) {
	if result := FindResultByYear(nil, 2022); result != nil {
		t.Errorf("FindResultByYear() with nil results should return nil, got %v", result)
	}
}

func TestFindResultByYearReturnsPointer(t *testing.T) {
	// Test that FindResultByYear returns a pointer to the actual element
	results := []eoq.Result{{Year: IntPtr(2022), EOQ: 200}}

	found := FindResultByYear(results, 2022)
	if found == nil {
		t.Fatalf("FindResultByYear() returned nil")
	}

	found.EOQ = 300
	if results[0].EOQ != 300 {
		t.Errorf("FindResultByYear() should return pointer into the slice")
	}
}

func TestAlmostEqual(t *testing.T) {
	if !AlmostEqual(200.0000001, 200) {
		t.Error("expected values within relative tolerance to be equal")
	}
	if AlmostEqual(200.01, 200) {
		t.Error("expected values outside relative tolerance to differ")
	}
}
