package writer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/leengari/groupbench/internal/domain/frame"
)

// rows buffered per WriteRows call
const parquetBatchSize = 1024

// SaveCSV writes the table as CSV with a header row. Nulls become empty cells.
// The file is written to a temp path and renamed into place.
func SaveCSV(path string, t *frame.Table) error {
	if t == nil {
		return fmt.Errorf("cannot save nil table")
	}

	err := writeAtomic(path, func(f *os.File) error {
		bw := bufio.NewWriter(f)
		w := csv.NewWriter(bw)

		columns := t.Columns()
		if err := w.Write(t.ColumnNames()); err != nil {
			return err
		}

		record := make([]string, len(columns))
		for i := 0; i < t.NumRows(); i++ {
			for j, col := range columns {
				record[j] = formatCell(col, i)
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		return bw.Flush()
	})
	if err != nil {
		return fmt.Errorf("failed to save table %s as csv: %w", t.Name, err)
	}

	slog.Debug("table saved",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.String("format", "csv"),
		slog.Int("row_count", t.NumRows()),
	)
	return nil
}

// SaveParquet writes the table as a single parquet file with one optional
// leaf per column.
func SaveParquet(path string, t *frame.Table) error {
	if t == nil {
		return fmt.Errorf("cannot save nil table")
	}

	columns := t.Columns()
	group := make(parquet.Group, len(columns))
	for _, col := range columns {
		node, err := parquetNode(col.Type)
		if err != nil {
			return fmt.Errorf("column %s: %w", col.Name, err)
		}
		group[col.Name] = parquet.Optional(node)
	}
	schema := parquet.NewSchema(t.Name, group)

	// group fields are ordered by name, so map each column to its leaf index
	leafIndex := make([]int, len(columns))
	for i, col := range columns {
		leaf, ok := schema.Lookup(col.Name)
		if !ok {
			return fmt.Errorf("column %s missing from generated schema", col.Name)
		}
		leafIndex[i] = leaf.ColumnIndex
	}

	err := writeAtomic(path, func(f *os.File) error {
		w := parquet.NewWriter(f, schema)

		batch := make([]parquet.Row, 0, parquetBatchSize)
		for i := 0; i < t.NumRows(); i++ {
			row := make(parquet.Row, len(columns))
			for j, col := range columns {
				row[leafIndex[j]] = parquetValue(col, i).Level(0, definitionLevel(col, i), leafIndex[j])
			}
			batch = append(batch, row)

			if len(batch) == parquetBatchSize {
				if _, err := w.WriteRows(batch); err != nil {
					return err
				}
				batch = batch[:0]
			}
		}
		if len(batch) > 0 {
			if _, err := w.WriteRows(batch); err != nil {
				return err
			}
		}

		return w.Close()
	})
	if err != nil {
		return fmt.Errorf("failed to save table %s as parquet: %w", t.Name, err)
	}

	slog.Debug("table saved",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.String("format", "parquet"),
		slog.Int("row_count", t.NumRows()),
	)
	return nil
}

// writeAtomic writes through a temp file and renames it over path
func writeAtomic(path string, write func(*os.File) error) error {
	tmpPath := path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomic replace
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp → %s: %w", path, err)
	}
	return nil
}

func parquetNode(typ frame.ColumnType) (parquet.Node, error) {
	switch typ {
	case frame.ColumnTypeInt:
		return parquet.Int(64), nil
	case frame.ColumnTypeFloat:
		return parquet.Leaf(parquet.DoubleType), nil
	case frame.ColumnTypeText:
		return parquet.String(), nil
	}
	return nil, fmt.Errorf("unsupported column type %s", typ)
}

func parquetValue(col *frame.Column, i int) parquet.Value {
	if col.IsNull(i) {
		return parquet.Value{}
	}
	switch col.Type {
	case frame.ColumnTypeInt:
		return parquet.Int64Value(col.Ints[i])
	case frame.ColumnTypeFloat:
		return parquet.DoubleValue(col.Floats[i])
	}
	return parquet.ByteArrayValue([]byte(col.Texts[i]))
}

func definitionLevel(col *frame.Column, i int) int {
	if col.IsNull(i) {
		return 0
	}
	return 1
}

func formatCell(col *frame.Column, i int) string {
	if col.IsNull(i) {
		return ""
	}
	switch col.Type {
	case frame.ColumnTypeInt:
		return strconv.FormatInt(col.Ints[i], 10)
	case frame.ColumnTypeFloat:
		return strconv.FormatFloat(col.Floats[i], 'g', -1, 64)
	}
	return col.Texts[i]
}
