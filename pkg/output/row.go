package output

import (
	"strconv"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/format"
)

// Columns are the table headings, in display order.
var Columns = []string{
	"Year",
	"Annual Demand (pcs)",
	"EOQ (pcs)",
	"Ordering Cost",
	"Holding Cost",
	"Total Cost",
	"Orders/Year",
	"Days Between Orders",
}

// Row is the display record of one result: quantities rounded to the nearest
// integer and costs fixed to two decimals. Both are kept as decimal text so
// very large quantities render without overflow.
type Row struct {
	Year              string `json:"year"`
	AnnualDemand      string `json:"annualDemand"`
	EOQ               string `json:"eoq"`
	OrderingCost      string `json:"orderingCost"`
	HoldingCost       string `json:"holdingCost"`
	TotalCost         string `json:"totalCost"`
	OrdersPerYear     string `json:"ordersPerYear"`
	DaysBetweenOrders string `json:"daysBetweenOrders"`
}

// NewRow builds the display record of a result.
func NewRow(r eoq.Result) Row {
	year := ""
	if r.Year != nil {
		year = strconv.Itoa(*r.Year)
	}
	return Row{
		Year:              year,
		AnnualDemand:      format.Whole(r.AnnualDemand),
		EOQ:               format.Whole(r.EOQ),
		OrderingCost:      format.Fixed(r.OrderingCost),
		HoldingCost:       format.Fixed(r.HoldingCostTotal),
		TotalCost:         format.Fixed(r.TotalCost),
		OrdersPerYear:     format.Whole(r.OrdersPerYear),
		DaysBetweenOrders: format.Whole(r.DaysBetweenOrders),
	}
}

// NewRows builds the display records of results, preserving order.
func NewRows(results []eoq.Result) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, NewRow(r))
	}
	return rows
}

func (r Row) values() []string {
	return []string{
		r.Year,
		r.AnnualDemand,
		r.EOQ,
		r.OrderingCost,
		r.HoldingCost,
		r.TotalCost,
		r.OrdersPerYear,
		r.DaysBetweenOrders,
	}
}
