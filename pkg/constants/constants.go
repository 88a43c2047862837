// Package constants provides shared constants for the eoq-calculator application.
package constants

// Inventory constants
const (
	// DaysPerYear is the number of days used to convert orders per year into
	// the interval between orders.
	DaysPerYear = 365

	// DecimalPlaces is the number of decimals used for currency output.
	DecimalPlaces = 2

	// DefaultMinYear is the sanity floor for a calendar year when the strict
	// year rule is in force. A year must be strictly greater than this.
	DefaultMinYear = 1900

	// MaxYear bounds the minYear setting when validating configuration.
	MaxYear = 9999

	// DefaultCurrencySymbol is prefixed to currency columns in pretty output.
	DefaultCurrencySymbol = "€"
)

// Record field names as they appear in record sources.
const (
	FieldYear         = "year"
	FieldAnnualDemand = "annual_demand"
	FieldSetupCost    = "setup_cost"
	FieldHoldingCost  = "holding_cost"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Record source format constants, selected by file extension.
const (
	SourceFormatJSON = "json"
	SourceFormatYAML = "yaml"
	SourceFormatCSV  = "csv"
	SourceFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultRecordsFile is the default record source
	DefaultRecordsFile = "records.json"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "EOQ"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for record files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// RelativeTolerance is the tolerance used when comparing computed values
	RelativeTolerance = 1e-6
)
