package mathutil

import (
	"math"
	"testing"
)

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Negative values within tolerance", -1.0, -1.05, 0.1, true},
		{"Zero tolerance exact match", 1.0, 1.0, 0.0, true},
		{"Zero tolerance no match", 1.0, 1.001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestRelativeError(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		want     float64
		expected float64
	}{
		{"Equal", 5, 5, 0},
		{"Ten percent high", 110, 100, 0.1},
		{"Ten percent low", 90, 100, 0.1},
		{"Zero want", 0.5, 0, 0.5},
		{"Negative want", -90, -100, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RelativeError(tt.got, tt.want)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("RelativeError(%v, %v) = %v, expected %v", tt.got, tt.want, result, tt.expected)
			}
		})
	}

	if !WithinRelativeTolerance(math.Sqrt(50000), 223.60679775) {
		t.Error("expected sqrt(50000) to be within relative tolerance of 223.60679775")
	}
	if WithinRelativeTolerance(223.6, 223.60679775) {
		t.Error("expected 223.6 to be outside relative tolerance")
	}
}
