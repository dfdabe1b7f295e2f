package config

import (
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	assert.NilError(t, err)

	assert.Equal(t, cfg.Engine, "rust-polars")
	assert.Equal(t, cfg.Sources.Parquet, "data/input.parquet")
	assert.Equal(t, cfg.Sources.CSV, "data/input.csv")
	assert.Equal(t, cfg.Sources.SyntheticRows, 1_000_000)
	assert.Equal(t, cfg.Columns.Group, "grp")
	assert.Equal(t, cfg.Columns.Value, "val")
	assert.Equal(t, cfg.Columns.MeanAlias, "mean_val")
	assert.Equal(t, cfg.Log.SeqURL, "")

	level, err := cfg.Log.SlogLevel()
	assert.NilError(t, err)
	assert.Equal(t, level, slog.LevelInfo)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	doc := []byte(`
engine: x
sources: {parquet: a.parquet, csv: a.csv, synthetic_rows: 10}
columns: {group: g, value: v, mean_alias: m}
colour: blue
`)
	_, err := Parse(doc)
	assert.ErrorContains(t, err, "colour")
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorContains(t, err, "empty document")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Default()
		assert.NilError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"engine", func(c *Config) { c.Engine = "" }, "engine must not be empty"},
		{"parquet path", func(c *Config) { c.Sources.Parquet = "" }, "sources.parquet"},
		{"csv path", func(c *Config) { c.Sources.CSV = "" }, "sources.csv"},
		{"rows", func(c *Config) { c.Sources.SyntheticRows = 0 }, "synthetic_rows must be positive"},
		{"alias collision", func(c *Config) { c.Columns.MeanAlias = c.Columns.Group }, "collides"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	level, err := LogConfig{Level: "debug"}.SlogLevel()
	assert.NilError(t, err)
	assert.Equal(t, level, slog.LevelDebug)

	level, err = LogConfig{}.SlogLevel()
	assert.NilError(t, err)
	assert.Equal(t, level, slog.LevelInfo)
}
