package writer

import (
	"os"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"

	"github.com/leengari/groupbench/internal/domain/frame"
)

func TestSaveCSV(t *testing.T) {
	dir := fs.NewDir(t, "writer")
	defer dir.Remove()

	val := frame.NewFloatColumn("val", []float64{0.5, 2, -1.25})
	val.SetNull(1)
	tbl, err := frame.New("input",
		frame.NewIntColumn("grp", []int64{1, 2, 1}),
		val,
		frame.NewTextColumn("label", []string{"a", "b,c", `q"`}),
	)
	assert.NilError(t, err)

	path := dir.Join("input.csv")
	assert.NilError(t, SaveCSV(path, tbl))

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Equal(t, string(data), "grp,val,label\n1,0.5,a\n2,,\"b,c\"\n1,-1.25,\"q\"\"\"\n")

	_, err = os.Stat(path + ".tmp")
	assert.Assert(t, os.IsNotExist(err))
}

func TestSaveParquetLeavesNoTempFile(t *testing.T) {
	dir := fs.NewDir(t, "writer")
	defer dir.Remove()

	tbl, err := frame.New("input", frame.NewIntColumn("grp", []int64{1, 2, 3}))
	assert.NilError(t, err)

	path := dir.Join("input.parquet")
	assert.NilError(t, SaveParquet(path, tbl))

	info, err := os.Stat(path)
	assert.NilError(t, err)
	assert.Assert(t, info.Size() > 0)

	_, err = os.Stat(path + ".tmp")
	assert.Assert(t, os.IsNotExist(err))
}

func TestSaveNilTable(t *testing.T) {
	assert.ErrorContains(t, SaveCSV("unused.csv", nil), "nil table")
	assert.ErrorContains(t, SaveParquet("unused.parquet", nil), "nil table")
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	tbl, err := frame.New("input", frame.NewIntColumn("grp", []int64{1}))
	assert.NilError(t, err)

	err = SaveCSV("/nonexistent-dir/for/sure/input.csv", tbl)
	assert.ErrorContains(t, err, "failed to create temp file")
}
