package validation

import (
	"math"
)

// Reason classifies why a record was rejected. Presentation layers map it to
// a localized message.
type Reason string

const (
	// ReasonInvalidYear marks a record whose year is not above the configured floor.
	ReasonInvalidYear Reason = "invalid_year"

	// ReasonInvalidValues marks a record with a non-positive or non-numeric
	// demand, setup cost or holding cost.
	ReasonInvalidValues Reason = "invalid_values"
)

// Message returns the default English description of the reason.
func (r Reason) Message() string {
	switch r {
	case ReasonInvalidYear:
		return "year is not a valid calendar year"
	case ReasonInvalidValues:
		return "demand, setup cost and holding cost must be positive numbers"
	default:
		return string(r)
	}
}

// Number converts a decoded value into a float64. Only numeric kinds are
// accepted; strings and booleans are not numbers.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// PositiveNumber is the single predicate applied to every numeric record
// field: the value must be numeric, finite and strictly greater than zero.
func PositiveNumber(v interface{}) (float64, bool) {
	n, ok := Number(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	return n, true
}

// Integer converts a decoded value into an int when it is a whole number.
func Integer(v interface{}) (int, bool) {
	n, ok := Number(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, false
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

// CheckYear reports whether v is a whole-number year strictly above minYear.
func CheckYear(v interface{}, minYear int) (int, bool) {
	year, ok := Integer(v)
	if !ok {
		return 0, false
	}
	return year, year > minYear
}
