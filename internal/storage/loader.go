package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/leengari/groupbench/internal/domain/frame"
	"github.com/leengari/groupbench/internal/source"
)

// Load reads the resolved source into memory and reports how long it took.
// The duration covers opening, decoding and building the table only.
func Load(src source.Source, logger *slog.Logger) (*frame.Table, time.Duration, error) {
	start := time.Now()

	var (
		table *frame.Table
		err   error
	)
	switch src.Kind {
	case source.KindParquet:
		table, err = LoadParquet(src.Path)
	case source.KindCSV:
		table, err = LoadCSV(src.Path)
	case source.KindSynthetic:
		table, err = Synthesize(src.Rows)
	default:
		err = fmt.Errorf("unknown source kind %q", src.Kind)
	}
	elapsed := time.Since(start)

	if err != nil {
		return nil, elapsed, err
	}

	logger.Info("table loaded",
		slog.String("source", string(src.Kind)),
		slog.String("path", src.Path),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumCols()),
		slog.Duration("elapsed", elapsed),
	)

	return table, elapsed, nil
}

// tableName derives a table name from a file path ("data/input.csv" -> "input")
func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
