package storage

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leengari/groupbench/internal/domain/errors"
	"github.com/leengari/groupbench/internal/domain/frame"
)

const formatCSV = "csv"

// LoadCSV reads a comma-separated file with a header row.
func LoadCSV(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewReadError(path, formatCSV, err)
	}
	defer f.Close()

	table, err := DecodeCSV(bufio.NewReader(f), tableName(path))
	if err != nil {
		return nil, errors.NewReadError(path, formatCSV, err)
	}
	return table, nil
}

// DecodeCSV parses CSV text into a table. Column types are inferred from
// every row: INT if all non-empty cells parse as integers, FLOAT if they
// all parse as numbers, TEXT otherwise. Empty cells become nulls.
func DecodeCSV(r io.Reader, name string) (*frame.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cells := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// ragged rows surface here as csv.ErrFieldCount
			return nil, err
		}
		for i, v := range record {
			cells[i] = append(cells[i], strings.TrimSpace(v))
		}
	}

	columns := make([]*frame.Column, len(header))
	for i, h := range header {
		columns[i] = inferColumn(strings.TrimSpace(h), cells[i])
	}

	return frame.New(name, columns...)
}

func inferColumn(name string, cells []string) *frame.Column {
	if col, ok := parseIntColumn(name, cells); ok {
		return col
	}
	if col, ok := parseFloatColumn(name, cells); ok {
		return col
	}

	col := frame.NewTextColumn(name, cells)
	for i, v := range cells {
		if v == "" {
			col.SetNull(i)
		}
	}
	return col
}

func parseIntColumn(name string, cells []string) (*frame.Column, bool) {
	values := make([]int64, len(cells))
	var nulls []int
	for i, v := range cells {
		if v == "" {
			nulls = append(nulls, i)
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false
		}
		values[i] = n
	}

	col := frame.NewIntColumn(name, values)
	for _, i := range nulls {
		col.SetNull(i)
	}
	return col, true
}

func parseFloatColumn(name string, cells []string) (*frame.Column, bool) {
	values := make([]float64, len(cells))
	var nulls []int
	for i, v := range cells {
		if v == "" {
			nulls = append(nulls, i)
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		values[i] = f
	}

	col := frame.NewFloatColumn(name, values)
	for _, i := range nulls {
		col.SetNull(i)
	}
	return col, true
}
