// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/Miroslaw-3/EOQ-Calculator/internal/batch"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for eoq-calculator.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Batch   BatchConfig   `yaml:"batch,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"` // pretty, csv, json
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
	SortByYear     bool   `yaml:"sortByYear"`
}

// BatchConfig holds the record source and the validation policy. Source may
// list several files separated by commas; they are loaded in order into one
// table.
type BatchConfig struct {
	Source     string `yaml:"source,omitempty"`
	MinYear    int    `yaml:"minYear"`
	StrictYear bool   `yaml:"strictYear"`
}

// Sources splits Source into its non-empty entries.
func (b BatchConfig) Sources() []string {
	var sources []string
	for _, source := range strings.Split(b.Source, ",") {
		if source = strings.TrimSpace(source); source != "" {
			sources = append(sources, source)
		}
	}
	return sources
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.currencySymbol", constants.DefaultCurrencySymbol)
	v.SetDefault("output.sortByYear", true)
	v.SetDefault("batch.source", constants.DefaultRecordsFile)
	v.SetDefault("batch.minYear", constants.DefaultMinYear)
	v.SetDefault("batch.strictYear", true)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the defaults, still subject to
// EOQ_* environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	v.SetConfigType("yml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// Policy returns the batch validation policy described by the configuration.
func (c *Configuration) Policy() batch.Policy {
	return c.Batch.Policy()
}

// Policy returns the strict year rule with MinYear, or the lenient policy
// when StrictYear is off.
func (b BatchConfig) Policy() batch.Policy {
	if !b.StrictYear {
		return batch.Policy{}
	}
	return batch.StrictPolicy(b.MinYear)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Batch.StrictYear && (c.Batch.MinYear < 0 || c.Batch.MinYear > constants.MaxYear) {
		warnings = append(warnings, fmt.Sprintf("batch minYear %d is outside 0..%d; every record will be skipped or accepted",
			c.Batch.MinYear, constants.MaxYear))
	}
	if !c.Batch.StrictYear && c.Batch.MinYear != constants.DefaultMinYear {
		warnings = append(warnings, fmt.Sprintf("batch minYear %d is ignored because strictYear is disabled", c.Batch.MinYear))
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if len(c.Batch.Sources()) == 0 {
		warnings = append(warnings, "batch source is empty; batch mode needs a record file")
	}

	return warnings
}
