// Package batch runs the EOQ engine over a list of yearly records, keeping the
// valid results and classifying the rejected records.
package batch

import (
	"sort"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/validation"
	"go.uber.org/zap"
)

// Record is one raw entry of a record source.
type Record map[string]interface{}

// fieldAliases lists the accepted keys for each field, canonical name first.
var fieldAliases = map[string][]string{
	constants.FieldYear:         {constants.FieldYear, "anno"},
	constants.FieldAnnualDemand: {constants.FieldAnnualDemand, "domanda_annua"},
	constants.FieldSetupCost:    {constants.FieldSetupCost, "costo_setup"},
	constants.FieldHoldingCost:  {constants.FieldHoldingCost, "costo_mantenimento"},
}

// Get returns the value stored under field or one of its aliases. Missing
// fields default to 0.
func (r Record) Get(field string) (interface{}, bool) {
	for _, key := range aliasesFor(field) {
		if v, ok := r[key]; ok {
			return v, true
		}
	}
	return 0, false
}

func aliasesFor(field string) []string {
	if aliases, ok := fieldAliases[field]; ok {
		return aliases
	}
	return []string{field}
}

// Policy configures record validation. A nil MinYear disables the year rule.
type Policy struct {
	MinYear *int
}

// StrictPolicy returns a policy requiring years strictly above minYear.
func StrictPolicy(minYear int) Policy {
	return Policy{MinYear: &minYear}
}

// Skipped identifies a record rejected by validation.
type Skipped struct {
	Index  int
	Year   *int
	Reason validation.Reason
}

// Outcome is the result of processing a collection of records. LoadError is
// mutually exclusive with Results and Skipped.
type Outcome struct {
	Results   []eoq.Result
	Skipped   []Skipped
	Total     int
	LoadError error
}

// SkippedYears returns the years of the records skipped for the given reason,
// in input order. Records without a year are omitted.
func (o Outcome) SkippedYears(reason validation.Reason) []int {
	var years []int
	for _, s := range o.Skipped {
		if s.Reason == reason && s.Year != nil {
			years = append(years, *s.Year)
		}
	}
	return years
}

// Processor validates records and runs the EOQ engine on the valid ones.
type Processor struct {
	logger *zap.Logger
	policy Policy
}

// NewProcessor creates a Processor with the given validation policy.
func NewProcessor(logger *zap.Logger, policy Policy) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger, policy: policy}
}

// Policy returns the validation policy in force.
func (p *Processor) Policy() Policy {
	return p.policy
}

// ProcessFile loads the records at path and processes them. A load error
// short-circuits before any record is processed.
func (p *Processor) ProcessFile(path string) Outcome {
	records, err := LoadRecords(path)
	if err != nil {
		p.logger.Error("failed to load record source",
			zap.String("op", "batch.ProcessFile"),
			zap.String("path", path),
			zap.Error(err),
		)
		return Outcome{LoadError: err}
	}
	return p.Process(records)
}

// Process validates each record in order and computes the EOQ for the valid
// ones. Invalid records are skipped and reported, never fatal.
func (p *Processor) Process(records []Record) Outcome {
	outcome := Outcome{
		Results: make([]eoq.Result, 0, len(records)),
		Total:   len(records),
	}

	for i, record := range records {
		result, skip := p.processRecord(i, record)
		if skip != nil {
			fields := []zap.Field{
				zap.String("op", "batch.Process"),
				zap.Int("index", i),
				zap.String("reason", string(skip.Reason)),
			}
			if skip.Year != nil {
				fields = append(fields, zap.Int("year", *skip.Year))
			}
			p.logger.Warn("skipping record", fields...)
			outcome.Skipped = append(outcome.Skipped, *skip)
			continue
		}
		outcome.Results = append(outcome.Results, result)
	}

	p.logger.Debug("processed records",
		zap.String("op", "batch.Process"),
		zap.Int("total", outcome.Total),
		zap.Int("computed", len(outcome.Results)),
		zap.Int("skipped", len(outcome.Skipped)),
	)
	return outcome
}

func (p *Processor) processRecord(index int, record Record) (eoq.Result, *Skipped) {
	rawYear, present := record.Get(constants.FieldYear)
	var year *int
	if y, ok := validation.Integer(rawYear); ok && present {
		year = &y
	}

	// A missing year reads as 0 and so never passes the strict rule.
	if p.policy.MinYear != nil {
		if _, ok := validation.CheckYear(rawYear, *p.policy.MinYear); !ok {
			return eoq.Result{}, &Skipped{Index: index, Year: year, Reason: validation.ReasonInvalidYear}
		}
	}

	var values [3]float64
	for j, field := range []string{constants.FieldAnnualDemand, constants.FieldSetupCost, constants.FieldHoldingCost} {
		raw, _ := record.Get(field)
		v, ok := validation.PositiveNumber(raw)
		if !ok {
			return eoq.Result{}, &Skipped{Index: index, Year: year, Reason: validation.ReasonInvalidValues}
		}
		values[j] = v
	}

	result, err := eoq.ComputeParams(eoq.InputParameters{
		Year:         year,
		AnnualDemand: values[0],
		SetupCost:    values[1],
		HoldingCost:  values[2],
	})
	if err != nil {
		p.logger.Debug("engine rejected record",
			zap.String("op", "batch.processRecord"),
			zap.Int("index", index),
			zap.Error(err),
		)
		return eoq.Result{}, &Skipped{Index: index, Year: year, Reason: validation.ReasonInvalidValues}
	}
	return result, nil
}

// SortByYear returns a copy of results sorted ascending by year. The sort is
// stable and results without a year keep their relative order after all
// dated results.
func SortByYear(results []eoq.Result) []eoq.Result {
	sorted := make([]eoq.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Year, sorted[j].Year
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return sorted
}
