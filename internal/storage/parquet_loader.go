package storage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/leengari/groupbench/internal/domain/errors"
	"github.com/leengari/groupbench/internal/domain/frame"
)

const (
	formatParquet = "parquet"

	// rows decoded per ReadRows call
	parquetBatchSize = 1024
)

// LoadParquet reads every row group of a flat parquet file into memory.
func LoadParquet(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewReadError(path, formatParquet, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.NewReadError(path, formatParquet, err)
	}
	if info.IsDir() {
		return nil, errors.NewMalformedInput(path, formatParquet, "path is a directory")
	}

	table, err := DecodeParquet(f, info.Size(), tableName(path))
	if err != nil {
		return nil, errors.NewReadError(path, formatParquet, err)
	}
	return table, nil
}

// DecodeParquet decodes parquet data of the given size. Leaf columns map to
// INT (boolean, int32, int64), FLOAT (float, double) or TEXT (byte arrays).
// Repeated columns are rejected.
func DecodeParquet(r io.ReaderAt, size int64, name string) (*frame.Table, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, err
	}

	schema := pf.Schema()
	paths := schema.Columns()
	builders := make([]*columnBuilder, len(paths))
	for _, path := range paths {
		leaf, ok := schema.Lookup(path...)
		if !ok {
			return nil, fmt.Errorf("column %s missing from schema", strings.Join(path, "."))
		}
		b, err := newColumnBuilder(strings.Join(path, "."), leaf, pf.NumRows())
		if err != nil {
			return nil, err
		}
		builders[leaf.ColumnIndex] = b
	}

	for i, rg := range pf.RowGroups() {
		if err := readRowGroup(rg, builders); err != nil {
			return nil, fmt.Errorf("row group %d: %w", i, err)
		}
	}

	columns := make([]*frame.Column, len(builders))
	for i, b := range builders {
		columns[i] = b.column()
	}
	return frame.New(name, columns...)
}

func readRowGroup(rg parquet.RowGroup, builders []*columnBuilder) error {
	rows := rg.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, parquetBatchSize)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			for _, v := range row {
				col := v.Column()
				if col < 0 || col >= len(builders) {
					return fmt.Errorf("value for unknown column index %d", col)
				}
				builders[col].append(v)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// columnBuilder accumulates the values of one leaf column across row groups
type columnBuilder struct {
	name   string
	typ    frame.ColumnType
	ints   []int64
	floats []float64
	texts  []string
	nulls  []int
}

func newColumnBuilder(name string, leaf parquet.LeafColumn, rows int64) (*columnBuilder, error) {
	if leaf.MaxRepetitionLevel > 0 {
		return nil, fmt.Errorf("column %s: repeated columns are not supported", name)
	}

	b := &columnBuilder{name: name}
	switch kind := leaf.Node.Type().Kind(); kind {
	case parquet.Boolean, parquet.Int32, parquet.Int64:
		b.typ = frame.ColumnTypeInt
		b.ints = make([]int64, 0, rows)
	case parquet.Float, parquet.Double:
		b.typ = frame.ColumnTypeFloat
		b.floats = make([]float64, 0, rows)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		b.typ = frame.ColumnTypeText
		b.texts = make([]string, 0, rows)
	default:
		return nil, fmt.Errorf("column %s: unsupported physical type %s", name, kind)
	}
	return b, nil
}

func (b *columnBuilder) len() int {
	switch b.typ {
	case frame.ColumnTypeInt:
		return len(b.ints)
	case frame.ColumnTypeFloat:
		return len(b.floats)
	}
	return len(b.texts)
}

func (b *columnBuilder) append(v parquet.Value) {
	if v.IsNull() {
		b.nulls = append(b.nulls, b.len())
		switch b.typ {
		case frame.ColumnTypeInt:
			b.ints = append(b.ints, 0)
		case frame.ColumnTypeFloat:
			b.floats = append(b.floats, 0)
		default:
			b.texts = append(b.texts, "")
		}
		return
	}

	switch v.Kind() {
	case parquet.Boolean:
		var n int64
		if v.Boolean() {
			n = 1
		}
		b.ints = append(b.ints, n)
	case parquet.Int32:
		b.ints = append(b.ints, int64(v.Int32()))
	case parquet.Int64:
		b.ints = append(b.ints, v.Int64())
	case parquet.Float:
		b.floats = append(b.floats, float64(v.Float()))
	case parquet.Double:
		b.floats = append(b.floats, v.Double())
	default:
		// byte array values alias reader buffers; string() copies them
		b.texts = append(b.texts, string(v.ByteArray()))
	}
}

func (b *columnBuilder) column() *frame.Column {
	var col *frame.Column
	switch b.typ {
	case frame.ColumnTypeInt:
		col = frame.NewIntColumn(b.name, b.ints)
	case frame.ColumnTypeFloat:
		col = frame.NewFloatColumn(b.name, b.floats)
	default:
		col = frame.NewTextColumn(b.name, b.texts)
	}
	for _, i := range b.nulls {
		col.SetNull(i)
	}
	return col
}
