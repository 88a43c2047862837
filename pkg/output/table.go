package output

import (
	"github.com/Miroslaw-3/EOQ-Calculator/internal/batch"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
)

// Table holds the results shown to the user. Rows are kept sorted by year
// unless KeepOrder is set, in which case they stay in arrival order.
type Table struct {
	KeepOrder bool

	results []eoq.Result
}

func (t *Table) arrange(results []eoq.Result) []eoq.Result {
	if t.KeepOrder {
		return results
	}
	return batch.SortByYear(results)
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.results)
}

// Results returns a copy of the table contents.
func (t *Table) Results() []eoq.Result {
	out := make([]eoq.Result, len(t.results))
	copy(out, t.results)
	return out
}

// Rows returns the display records of the table contents.
func (t *Table) Rows() []Row {
	return NewRows(t.results)
}

// Add appends a single result, such as a manual entry.
func (t *Table) Add(r eoq.Result) {
	t.results = t.arrange(append(t.results, r))
}

// Merge adds the results of a new batch. Existing rows sharing a year with
// the batch are replaced by the batch's rows. It returns the number of rows
// replaced.
func (t *Table) Merge(results []eoq.Result) int {
	incoming := make(map[int]struct{}, len(results))
	for _, r := range results {
		if r.Year != nil {
			incoming[*r.Year] = struct{}{}
		}
	}

	kept := make([]eoq.Result, 0, len(t.results)+len(results))
	replaced := 0
	for _, r := range t.results {
		if r.Year != nil {
			if _, ok := incoming[*r.Year]; ok {
				replaced++
				continue
			}
		}
		kept = append(kept, r)
	}

	t.results = t.arrange(append(kept, results...))
	return replaced
}

// Clear removes every row.
func (t *Table) Clear() {
	t.results = nil
}
