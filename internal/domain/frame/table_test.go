package frame

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New("input",
		NewIntColumn("id", []int64{0, 1, 2, 3}),
		NewIntColumn("grp", []int64{0, 1, 0, 1}),
		NewFloatColumn("val", []float64{0.5, 1.5, 2.5, 3.5}),
	)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return tbl
}

func TestNewTableShape(t *testing.T) {
	tbl := newTestTable(t)

	rows, cols := tbl.Shape()
	assert.Equal(t, rows, 4)
	assert.Equal(t, cols, 3)
	assert.DeepEqual(t, tbl.ColumnNames(), []string{"id", "grp", "val"})
	assert.DeepEqual(t, tbl.Schema(), []Field{
		{Name: "id", Type: ColumnTypeInt},
		{Name: "grp", Type: ColumnTypeInt},
		{Name: "val", Type: ColumnTypeFloat},
	})
}

func TestNewTableRejectsMismatchedLengths(t *testing.T) {
	_, err := New("bad",
		NewIntColumn("a", []int64{1, 2}),
		NewIntColumn("b", []int64{1}),
	)
	assert.ErrorContains(t, err, `column "b" has 1 values, expected 2`)
}

func TestNewTableRejectsDuplicateNames(t *testing.T) {
	_, err := New("bad",
		NewIntColumn("a", []int64{1}),
		NewFloatColumn("a", []float64{1}),
	)
	assert.ErrorContains(t, err, `duplicate column "a"`)
}

func TestColumnLookup(t *testing.T) {
	tbl := newTestTable(t)

	col, ok := tbl.Column("val")
	assert.Assert(t, ok)
	assert.Equal(t, col.Type, ColumnTypeFloat)

	_, ok = tbl.Column("missing")
	assert.Assert(t, !ok)
}

func TestSelect(t *testing.T) {
	tbl := newTestTable(t)

	sub, err := tbl.Select("val", "grp")
	assert.NilError(t, err)
	assert.DeepEqual(t, sub.ColumnNames(), []string{"val", "grp"})
	assert.Equal(t, sub.NumRows(), 4)

	_, err = tbl.Select("nope")
	assert.Assert(t, is.ErrorContains(err, "not found"))
}

func TestNullHandling(t *testing.T) {
	col := NewFloatColumn("val", []float64{1, 2, 3})
	assert.Equal(t, col.NullCount(), 0)

	col.SetNull(1)
	assert.Assert(t, col.IsNull(1))
	assert.Assert(t, !col.IsNull(0))
	assert.Equal(t, col.NullCount(), 1)
	assert.Assert(t, col.Value(1) == nil)
	assert.Equal(t, col.Value(2), any(3.0))
}

func TestGather(t *testing.T) {
	col := NewTextColumn("grp", []string{"a", "b", "c"})
	col.SetNull(2)

	out := col.Gather([]int{2, 0})
	assert.Equal(t, out.Len(), 2)
	assert.Assert(t, out.IsNull(0))
	assert.Equal(t, out.Value(1), any("a"))
}

func TestFloatWidening(t *testing.T) {
	ints := NewIntColumn("n", []int64{7})
	assert.Assert(t, ints.Numeric())
	assert.Equal(t, ints.Float(0), 7.0)

	text := NewTextColumn("s", []string{"x"})
	assert.Assert(t, !text.Numeric())
}
