// =============================================================================
// Inventory Manager - Configuration Module
// =============================================================================
//
// This module is responsible for loading and validating the application
// configuration. A single YAML file controls how CSV files are imported, how
// the summary treats non-numeric values, where reports are written, and how
// much the tool logs.
//
// CONFIGURATION FILE (inventory.yaml):
//   import:
//     mode: explicit            # explicit | filename
//     csv:
//       delimiter: ","
//       lazy_quotes: false
//   summary:
//     numeric_policy: lenient   # lenient | strict
//   output:
//     summary_file: summary_report.csv
//     report_file: report.csv
//     show_rows: 5
//     color: true
//   logging:
//     level: info
//     file: ""
//
// Every setting has a default, so the file itself is optional.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "inventory.yaml"

// =============================================================================
// ENUMERATED SETTINGS
// =============================================================================

// ImportMode selects where a directory import takes each row's category from.
type ImportMode string

const (
	// ModeExplicit reads the category from a "category" column.
	ModeExplicit ImportMode = "explicit"

	// ModeFilename derives the category from the source file name
	// (the text before the first '.').
	ModeFilename ImportMode = "filename"
)

// NumericPolicy decides what the summary does with a quantity or unit price
// that cannot be read as a number.
type NumericPolicy string

const (
	// PolicyLenient skips the offending field but still counts the record.
	PolicyLenient NumericPolicy = "lenient"

	// PolicyStrict fails the whole aggregation on the first bad field.
	PolicyStrict NumericPolicy = "strict"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the complete application configuration.
type Config struct {
	Import  ImportSettings  `yaml:"import"`
	Summary SummarySettings `yaml:"summary"`
	Output  OutputSettings  `yaml:"output"`
	Logging LoggingSettings `yaml:"logging"`
}

// ImportSettings controls directory and file imports.
type ImportSettings struct {
	// Mode is the category source for directory imports.
	// Default: "explicit"
	Mode ImportMode `yaml:"mode"`

	// CSV contains the settings for reading CSV files.
	CSV CSVSettings `yaml:"csv"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields in the CSV.
	// Common values: "," (comma), "|" (pipe), "\t" (tab), ";" (semicolon)
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// LazyQuotes tolerates stray quotes inside fields. When false a file
	// with an unbalanced quote is rejected as malformed.
	// Default: false
	LazyQuotes bool `yaml:"lazy_quotes"`
}

// SummarySettings controls category aggregation.
type SummarySettings struct {
	// NumericPolicy is applied when quantity or unit_price is not numeric.
	// Default: "lenient"
	NumericPolicy NumericPolicy `yaml:"numeric_policy"`
}

// OutputSettings controls report locations and console presentation.
type OutputSettings struct {
	// SummaryFile is where "summary" writes when no path is given.
	// Default: "summary_report.csv"
	SummaryFile string `yaml:"summary_file"`

	// ReportFile is where "report" writes the Category,Count table when no
	// path is given.
	// Default: "report.csv"
	ReportFile string `yaml:"report_file"`

	// NameFormat, when set, overrides both default file names.
	// Placeholders: {timestamp}, {date}, {time}, {uuid}, {kind}
	// Example: "{kind}_{timestamp}.csv"
	NameFormat string `yaml:"name_format"`

	// ShowRows is the number of records "show" prints without an argument.
	// Default: 5
	ShowRows int `yaml:"show_rows"`

	// Color enables colored console output.
	// Default: true
	Color *bool `yaml:"color"`
}

// LoggingSettings controls the structured logger.
type LoggingSettings struct {
	// Level controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// File is the path to a log file. Empty means stderr.
	File string `yaml:"file"`
}

// ColorEnabled reports whether colored output is on.
func (o OutputSettings) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed, or validated.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// LoadOrDefault behaves like Load, except that a missing file yields the
// defaults. Used for the implicit inventory.yaml lookup.
func LoadOrDefault(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Import.Mode == "" {
		cfg.Import.Mode = ModeExplicit
	}
	if cfg.Import.CSV.Delimiter == "" {
		cfg.Import.CSV.Delimiter = ","
	}
	if cfg.Summary.NumericPolicy == "" {
		cfg.Summary.NumericPolicy = PolicyLenient
	}
	if cfg.Output.SummaryFile == "" {
		cfg.Output.SummaryFile = "summary_report.csv"
	}
	if cfg.Output.ReportFile == "" {
		cfg.Output.ReportFile = "report.csv"
	}
	if cfg.Output.ShowRows == 0 {
		cfg.Output.ShowRows = 5
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the enumerated settings and normalizes their case.
func (c *Config) Validate() error {
	mode, err := ParseImportMode(string(c.Import.Mode))
	if err != nil {
		return err
	}
	c.Import.Mode = mode

	policy, err := ParseNumericPolicy(string(c.Summary.NumericPolicy))
	if err != nil {
		return err
	}
	c.Summary.NumericPolicy = policy

	if c.Output.ShowRows < 0 {
		return fmt.Errorf("show_rows must not be negative, got %d", c.Output.ShowRows)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// ParseImportMode converts a flag or YAML value into an ImportMode.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeExplicit:
		return ModeExplicit, nil
	case ModeFilename:
		return ModeFilename, nil
	}
	return "", fmt.Errorf("unknown import mode %q (want %q or %q)", s, ModeExplicit, ModeFilename)
}

// ParseNumericPolicy converts a flag or YAML value into a NumericPolicy.
func ParseNumericPolicy(s string) (NumericPolicy, error) {
	switch NumericPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown numeric policy %q (want %q or %q)", s, PolicyLenient, PolicyStrict)
}
