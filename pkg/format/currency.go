// Package format renders amounts for display.
package format

import (
	"strings"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// Fixed returns the amount with exactly two decimals and no separators
// (e.g., "-1234.57"). The amount is rounded from its shortest decimal
// representation, so 1.005 becomes "1.01".
func Fixed(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(constants.DecimalPlaces)
}

// Currency returns a currency string with the given symbol and thousands
// separators (e.g., "-€1,234.56").
func Currency(amount float64, symbol string) string {
	formatted := NumericCurrency(amount)
	if strings.HasPrefix(formatted, "-") {
		return "-" + symbol + formatted[1:]
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	fixed := Fixed(amount)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	if fixed == "0.00" {
		sign = ""
	}
	return sign + groupThousands(fixed)
}

func groupThousands(formatted string) string {
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
