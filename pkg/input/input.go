// Package input turns manually entered text into EOQ input parameters.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/validation"
)

// InvalidYearError reports a year that is not a whole number or is not above
// the configured floor.
type InvalidYearError struct {
	Value   string
	MinYear *int
}

func (e *InvalidYearError) Error() string {
	if e.MinYear != nil {
		return fmt.Sprintf("invalid year %q: must be a whole number greater than %d", e.Value, *e.MinYear)
	}
	return fmt.Sprintf("invalid year %q: must be a whole number", e.Value)
}

// ParseNumber parses a decimal number, accepting a comma as the decimal
// separator.
func ParseNumber(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if normalized == "" {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseFloat(normalized, 64)
}

// ParseYear parses an optional year. An empty string yields nil.
func ParseYear(text string, minYear *int) (*int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		if minYear != nil {
			return nil, &InvalidYearError{Value: text, MinYear: minYear}
		}
		return nil, nil
	}

	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, &InvalidYearError{Value: text, MinYear: minYear}
	}
	if minYear != nil {
		if _, ok := validation.CheckYear(year, *minYear); !ok {
			return nil, &InvalidYearError{Value: text, MinYear: minYear}
		}
	}
	return &year, nil
}

// ParseParameters builds input parameters from form text. The returned
// parameters always satisfy the engine's positivity contract.
func ParseParameters(year, demand, setupCost, holdingCost string, minYear *int) (eoq.InputParameters, error) {
	parsedYear, err := ParseYear(year, minYear)
	if err != nil {
		return eoq.InputParameters{}, err
	}

	params := eoq.InputParameters{Year: parsedYear}
	for _, f := range []struct {
		name string
		text string
		dst  *float64
	}{
		{eoq.ParamAnnualDemand, demand, &params.AnnualDemand},
		{eoq.ParamSetupCost, setupCost, &params.SetupCost},
		{eoq.ParamHoldingCost, holdingCost, &params.HoldingCost},
	} {
		v, err := ParseNumber(f.text)
		if err != nil {
			return eoq.InputParameters{}, fmt.Errorf("invalid %s %q: %w", f.name, f.text, err)
		}
		if _, ok := validation.PositiveNumber(v); !ok {
			return eoq.InputParameters{}, &eoq.InvalidParameterError{Field: f.name, Value: v}
		}
		*f.dst = v
	}
	return params, nil
}
