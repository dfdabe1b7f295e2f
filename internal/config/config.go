// Package config holds the benchmark settings compiled into the binary.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the full benchmark configuration
type Config struct {
	// Engine tag reported in the result document
	Engine string `yaml:"engine"`

	Sources SourcesConfig `yaml:"sources"`
	Columns ColumnsConfig `yaml:"columns"`
	Log     LogConfig     `yaml:"log"`
}

// SourcesConfig lists the candidate inputs in priority order
type SourcesConfig struct {
	Parquet       string `yaml:"parquet"`
	CSV           string `yaml:"csv"`
	SyntheticRows int    `yaml:"synthetic_rows"`
}

// ColumnsConfig names the columns the aggregation reads and writes
type ColumnsConfig struct {
	Group     string `yaml:"group"`
	Value     string `yaml:"value"`
	MeanAlias string `yaml:"mean_alias"`
}

type LogConfig struct {
	Level string `yaml:"level"`

	// Optional Seq ingestion endpoint. Empty disables the Seq handler.
	SeqURL string `yaml:"seq_url"`
}

// Default returns the embedded configuration
func Default() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes and validates a YAML configuration document.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: empty document")
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required setting is present
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"engine", c.Engine},
		{"sources.parquet", c.Sources.Parquet},
		{"sources.csv", c.Sources.CSV},
		{"columns.group", c.Columns.Group},
		{"columns.value", c.Columns.Value},
		{"columns.mean_alias", c.Columns.MeanAlias},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("config: %s must not be empty", r.key)
		}
	}

	if c.Sources.SyntheticRows <= 0 {
		return fmt.Errorf("config: sources.synthetic_rows must be positive, got %d", c.Sources.SyntheticRows)
	}

	if c.Columns.Group == c.Columns.MeanAlias {
		return fmt.Errorf("config: columns.mean_alias %q collides with the group column", c.Columns.MeanAlias)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level ("debug", "info", "warn", "error").
// An empty level means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}
