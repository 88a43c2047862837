// Package eoq computes the Economic Order Quantity and the inventory costs
// derived from it.
package eoq

import (
	"fmt"
	"math"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
)

// Parameter names reported by InvalidParameterError.
const (
	ParamAnnualDemand = "annual_demand"
	ParamSetupCost    = "setup_cost"
	ParamHoldingCost  = "holding_cost"
)

// InputParameters holds one computation request.
type InputParameters struct {
	Year         *int
	AnnualDemand float64
	SetupCost    float64
	HoldingCost  float64
}

// Result holds the values derived from one set of input parameters. Values are
// stored unrounded; rounding is left to the display layer.
type Result struct {
	Year              *int
	AnnualDemand      float64
	EOQ               float64
	OrderingCost      float64
	HoldingCostTotal  float64
	TotalCost         float64
	OrdersPerYear     float64
	DaysBetweenOrders float64
}

// HasYear reports whether the result carries a reference year.
func (r Result) HasYear() bool {
	return r.Year != nil
}

// InvalidParameterError reports a parameter that is not a finite, strictly
// positive number.
type InvalidParameterError struct {
	Field string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: must be a positive number", e.Field, e.Value)
}

// Compute derives the EOQ and its costs from annual demand, setup cost per
// order and holding cost per unit per year.
func Compute(demand, setupCost, holdingCost float64) (Result, error) {
	for _, p := range []struct {
		field string
		value float64
	}{
		{ParamAnnualDemand, demand},
		{ParamSetupCost, setupCost},
		{ParamHoldingCost, holdingCost},
	} {
		if !isPositiveFinite(p.value) {
			return Result{}, &InvalidParameterError{Field: p.field, Value: p.value}
		}
	}

	eoq := math.Sqrt((2 * demand * setupCost) / holdingCost)
	if !isPositiveFinite(eoq) {
		// Underflow or overflow of the intermediate product.
		return Result{}, &InvalidParameterError{Field: ParamAnnualDemand, Value: demand}
	}

	orderingCost := (demand / eoq) * setupCost
	holdingCostTotal := (eoq / 2) * holdingCost
	ordersPerYear := demand / eoq

	result := Result{
		AnnualDemand:      demand,
		EOQ:               eoq,
		OrderingCost:      orderingCost,
		HoldingCostTotal:  holdingCostTotal,
		TotalCost:         orderingCost + holdingCostTotal,
		OrdersPerYear:     ordersPerYear,
		DaysBetweenOrders: constants.DaysPerYear / ordersPerYear,
	}
	if !isPositiveFinite(result.TotalCost) || !isPositiveFinite(result.DaysBetweenOrders) {
		return Result{}, &InvalidParameterError{Field: ParamAnnualDemand, Value: demand}
	}
	return result, nil
}

// ComputeParams runs Compute on the given parameters and carries the year
// through to the result.
func ComputeParams(params InputParameters) (Result, error) {
	result, err := Compute(params.AnnualDemand, params.SetupCost, params.HoldingCost)
	if err != nil {
		return Result{}, err
	}
	if params.Year != nil {
		year := *params.Year
		result.Year = &year
	}
	return result, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
