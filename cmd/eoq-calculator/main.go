package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/Miroslaw-3/EOQ-Calculator/internal/batch"
	"github.com/Miroslaw-3/EOQ-Calculator/internal/config"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/input"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/output"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/validation"
	"go.uber.org/zap"
)

// loadConfiguration reads the config file. A missing file at the default
// location falls back to the built-in defaults.
func loadConfiguration(path string) (*config.Configuration, error) {
	if path == constants.DefaultConfigFile {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.LoadConfiguration("")
		}
	}
	return config.LoadConfiguration(path)
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	recordsFlag := flag.String("records", "", "record source override (.json, .yaml, .csv, .xlsx); separate several with commas")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	sortFlag := flag.Bool("sort", true, "sort results by year")
	minYearFlag := flag.Int("min-year", 0, "minimum year override; years must be strictly greater")
	noYearCheck := flag.Bool("no-year-check", false, "accept records with any or no year")
	manual := flag.Bool("manual", false, "compute a single set of parameters instead of a batch")
	yearFlag := flag.String("year", "", "manual mode: reference year")
	demandFlag := flag.String("demand", "", "manual mode: annual demand in pieces")
	setupFlag := flag.String("setup", "", "manual mode: setup cost per order")
	holdingFlag := flag.String("holding", "", "manual mode: holding cost per piece per year")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	conf, err := loadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Apply CLI overrides before validating
	if *recordsFlag != "" {
		conf.Batch.Source = *recordsFlag
	}
	if set["sort"] {
		conf.Output.SortByYear = *sortFlag
	}
	if set["min-year"] {
		conf.Batch.MinYear = *minYearFlag
	}
	if *noYearCheck {
		conf.Batch.StrictYear = false
	}
	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}

	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	policy := conf.Policy()

	table := &output.Table{KeepOrder: !conf.Output.SortByYear}
	var outcomes []sourceOutcome
	if *manual {
		params, err := input.ParseParameters(*yearFlag, *demandFlag, *setupFlag, *holdingFlag, policy.MinYear)
		if err != nil {
			logger.Fatal("invalid manual input",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		result, err := eoq.ComputeParams(params)
		if err != nil {
			logger.Fatal("failed to compute EOQ",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		table.Add(result)
	} else {
		sources := conf.Batch.Sources()
		if len(sources) == 0 {
			logger.Fatal("no record source configured",
				zap.String("op", "main"),
			)
		}
		processor := batch.NewProcessor(logger, policy)
		outcomes, err = loadSources(logger, processor, sources, table)
		if err != nil {
			fmt.Fprintln(os.Stderr, summarize(outcomes))
			logger.Fatal("failed to process record source",
				zap.String("op", "main"),
				zap.Strings("sources", sources),
				zap.Error(err),
			)
		}
	}

	rows := table.Rows()

	switch conf.Output.Format {
	case constants.OutputFormatPretty:
		output.PrettyFormat(rows, conf.Output.CurrencySymbol)
	case constants.OutputFormatCSV:
		output.CsvFormat(rows)
	case constants.OutputFormatJSON:
		output.JSONFormat(rows)
	}

	if len(outcomes) > 0 {
		fmt.Fprintln(os.Stderr, summarize(outcomes))
	}
}
