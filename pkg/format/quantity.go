package format

import "github.com/shopspring/decimal"

// Whole returns the quantity rounded to the nearest integer, halves away from
// zero, with no separators (e.g., "224"). Quantities beyond the int64 range
// keep every digit.
func Whole(quantity float64) string {
	return decimal.NewFromFloat(quantity).Round(0).String()
}
