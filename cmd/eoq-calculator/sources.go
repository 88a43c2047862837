package main

import (
	"fmt"
	"strings"

	"github.com/Miroslaw-3/EOQ-Calculator/internal/batch"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/output"
	"go.uber.org/zap"
)

// sourceOutcome pairs a record source with the outcome of processing it.
type sourceOutcome struct {
	Source  string
	Outcome batch.Outcome
}

// loadSources processes each source in order and merges its results into
// table, so a later source replaces earlier rows sharing a year. It stops at
// the first source that fails to load and returns the outcomes gathered so far,
// including the failed one.
func loadSources(logger *zap.Logger, processor *batch.Processor, sources []string, table *output.Table) ([]sourceOutcome, error) {
	outcomes := make([]sourceOutcome, 0, len(sources))
	for _, source := range sources {
		o := processor.ProcessFile(source)
		outcomes = append(outcomes, sourceOutcome{Source: source, Outcome: o})
		if o.LoadError != nil {
			return outcomes, fmt.Errorf("failed to process %s: %w", source, o.LoadError)
		}

		replaced := table.Merge(o.Results)
		logger.Debug("Merged record source",
			zap.String("op", "loadSources"),
			zap.String("source", source),
			zap.Int("rows", len(o.Results)),
			zap.Int("replaced", replaced),
		)
	}
	return outcomes, nil
}

// summarize renders the summary of every processed source. Each summary is
// headed by its source when there is more than one.
func summarize(outcomes []sourceOutcome) string {
	if len(outcomes) == 1 {
		return output.Summary(outcomes[0].Outcome)
	}
	parts := make([]string, 0, len(outcomes))
	for _, so := range outcomes {
		parts = append(parts, so.Source+":\n"+output.Summary(so.Outcome))
	}
	return strings.Join(parts, "\n")
}
