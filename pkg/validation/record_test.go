package validation

import (
	"math"
	"testing"
)

func TestPositiveNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
		valid    bool
	}{
		{"Positive float", 12.5, 12.5, true},
		{"Positive int", 1000, 1000, true},
		{"Positive int64", int64(7), 7, true},
		{"Positive uint", uint(3), 3, true},
		{"Positive float32", float32(0.5), 0.5, true},
		{"Zero", 0.0, 0, false},
		{"Zero int", 0, 0, false},
		{"Negative", -5.0, 0, false},
		{"Negative int", -5, 0, false},
		{"Numeric string", "100", 0, false},
		{"Boolean", true, 0, false},
		{"Nil", nil, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Infinity", math.Inf(1), 0, false},
		{"Very small positive", 1e-300, 1e-300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PositiveNumber(tt.input)
			if ok != tt.valid {
				t.Fatalf("PositiveNumber(%v) ok = %v, expected %v", tt.input, ok, tt.valid)
			}
			if got != tt.expected {
				t.Errorf("PositiveNumber(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCheckYear(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		minYear  int
		expected int
		valid    bool
	}{
		{"Recent year", 2020, 1900, 2020, true},
		{"Year as float", 2020.0, 1900, 2020, true},
		{"Floor is exclusive", 1900, 1900, 1900, false},
		{"Below floor", 1899, 1900, 1899, false},
		{"Zero year", 0, 1900, 0, false},
		{"Fractional year", 2020.5, 1900, 0, false},
		{"String year", "2020", 1900, 0, false},
		{"Custom floor", 1950, 1949, 1950, true},
		{"Custom floor rejects", 1949, 1949, 1949, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CheckYear(tt.input, tt.minYear)
			if ok != tt.valid {
				t.Fatalf("CheckYear(%v, %d) ok = %v, expected %v", tt.input, tt.minYear, ok, tt.valid)
			}
			if got != tt.expected {
				t.Errorf("CheckYear(%v, %d) = %d, expected %d", tt.input, tt.minYear, got, tt.expected)
			}
		})
	}
}

func TestReasonMessage(t *testing.T) {
	if ReasonInvalidYear.Message() == string(ReasonInvalidYear) {
		t.Error("expected a descriptive message for invalid_year")
	}
	if ReasonInvalidValues.Message() == string(ReasonInvalidValues) {
		t.Error("expected a descriptive message for invalid_values")
	}
	if got := Reason("other").Message(); got != "other" {
		t.Errorf("unknown reason message = %q, expected the raw reason", got)
	}
}
