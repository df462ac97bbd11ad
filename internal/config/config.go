// Package config provides the cleaning rule tables for the dataset
// preparation pipeline. Every column list and lookup the stages apply is
// configuration data here, so the rules stay testable in isolation.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"newsprep/pkg/textnorm"
)

// Configuration validation errors.
var (
	ErrMissingToken            = errors.New("missing_token must not be empty")
	ErrNoTimestampLayouts      = errors.New("timestamps.layouts must contain at least one layout")
	ErrInvalidTimestampLayout  = errors.New("timestamps.layouts entry does not round-trip")
	ErrCountryKeyNotNormalized = errors.New("countries key must be in normalized form")
	ErrEmptyCountryValue       = errors.New("countries value must not be empty")
	ErrInvalidLogLevel         = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete pipeline configuration.
type Config struct {
	Articles   TableRules        `yaml:"articles"`
	Domains    TableRules        `yaml:"domains"`
	Traffic    TableRules        `yaml:"traffic"`
	Timestamps TimestampConfig   `yaml:"timestamps"`
	Countries  map[string]string `yaml:"countries"`
	Logging    LoggingConfig     `yaml:"logging"`

	// MissingToken is the textual stand-in for null when a categorical
	// column is forced to string, and the fill value for fill_unknown.
	MissingToken string `yaml:"missing_token"`
}

// TableRules holds the per-table column lists the stages consume.
// Columns listed here but absent from the loaded table are skipped.
type TableRules struct {
	// RequiredColumns must be present in the source header or loading fails.
	RequiredColumns []string `yaml:"required_columns"`
	// DropRowsMissing lists columns whose null cells drop the whole row,
	// applied one column at a time in list order.
	DropRowsMissing []string `yaml:"drop_rows_missing"`
	// RequireAnyOf drops a row only when every listed column is null.
	RequireAnyOf []string `yaml:"require_any_of"`
	// FillUnknown lists columns whose null cells are filled with MissingToken.
	FillUnknown []string `yaml:"fill_unknown"`
	// DropColumns are projected away entirely.
	DropColumns []string `yaml:"drop_columns"`
	// TimestampColumns are coerced to timestamps, unparsable cells to null.
	TimestampColumns []string `yaml:"timestamp_columns"`
	// NumericColumns are coerced to numbers, unparsable cells to null.
	NumericColumns []string `yaml:"numeric_columns"`
	// CategoricalColumns are forced to string kind, nulls to MissingToken.
	CategoricalColumns []string `yaml:"categorical_columns"`
	// TextColumns get lowercase/depunctuate/trim normalization.
	TextColumns []string `yaml:"text_columns"`
}

// TimestampConfig lists the layouts tried, in order, when coercing
// timestamp columns.
type TimestampConfig struct {
	Layouts []string `yaml:"layouts"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in rule tables, so the pipeline runs without a
// config file.
func Default() *Config {
	return &Config{
		Articles: TableRules{
			RequiredColumns:    []string{"source_name", "published_at", "category"},
			DropRowsMissing:    []string{"source_name", "published_at"},
			RequireAnyOf:       []string{"content", "full_content"},
			FillUnknown:        []string{"category"},
			DropColumns:        []string{"source_id", "author", "url_to_image"},
			TimestampColumns:   []string{"published_at"},
			CategoricalColumns: []string{"source_name", "domain", "category"},
			TextColumns:        []string{"source_name", "domain"},
		},
		Domains: TableRules{
			RequiredColumns:    []string{"SourceCommonName", "Country"},
			FillUnknown:        []string{"Country"},
			CategoricalColumns: []string{"SourceCommonName", "location", "Country"},
			TextColumns:        []string{"SourceCommonName", "location", "Country"},
		},
		Traffic: TableRules{
			RequiredColumns: []string{"Domain", "GlobalRank"},
			NumericColumns: []string{
				"GlobalRank", "TldRank", "RefSubNets", "RefIPs",
				"PrevGlobalRank", "PrevTldRank", "PrevRefSubNets", "PrevRefIPs",
			},
			TextColumns: []string{"Domain", "TLD", "IDN_Domain", "IDN_TLD"},
		},
		Timestamps: TimestampConfig{
			Layouts: []string{
				time.RFC3339,
				"2006-01-02 15:04:05",
				"2006-01-02",
			},
		},
		Countries: map[string]string{
			"usa":   "united states",
			"uk":    "united kingdom",
			"india": "india",
		},
		Logging:      LoggingConfig{Level: "info"},
		MissingToken: "unknown",
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.MissingToken == "" {
		return ErrMissingToken
	}

	if len(c.Timestamps.Layouts) == 0 {
		return ErrNoTimestampLayouts
	}

	ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	for _, layout := range c.Timestamps.Layouts {
		if _, err := time.Parse(layout, ref.Format(layout)); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimestampLayout, layout)
		}
	}

	// Standardization runs after text normalization, so keys that are not
	// themselves in normalized form can never match.
	for key, val := range c.Countries {
		if key != textnorm.Normalize(key) {
			return fmt.Errorf("%w: %q", ErrCountryKeyNotNormalized, key)
		}

		if val == "" {
			return fmt.Errorf("%w: key %q", ErrEmptyCountryValue, key)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Countries: %d, Layouts: %d, MissingToken: %q}",
		len(c.Countries),
		len(c.Timestamps.Layouts),
		c.MissingToken,
	)
}
