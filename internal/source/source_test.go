package source

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestResolvePriority(t *testing.T) {
	tests := []struct {
		name     string
		files    []fs.PathOp
		wantKind Kind
		wantFile string
	}{
		{
			name:     "no files",
			wantKind: KindSynthetic,
		},
		{
			name:     "csv only",
			files:    []fs.PathOp{fs.WithFile("input.csv", "id,grp,val\n")},
			wantKind: KindCSV,
			wantFile: "input.csv",
		},
		{
			name:     "parquet only",
			files:    []fs.PathOp{fs.WithFile("input.parquet", "PAR1")},
			wantKind: KindParquet,
			wantFile: "input.parquet",
		},
		{
			name: "parquet wins over csv",
			files: []fs.PathOp{
				fs.WithFile("input.parquet", "PAR1"),
				fs.WithFile("input.csv", "id,grp,val\n"),
			},
			wantKind: KindParquet,
			wantFile: "input.parquet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := fs.NewDir(t, "resolve", tt.files...)
			defer dir.Remove()

			src := Resolve(Candidates(dir.Join("input.parquet"), dir.Join("input.csv")), 100)

			assert.Equal(t, src.Kind, tt.wantKind)
			if tt.wantFile == "" {
				assert.Equal(t, src.Path, "")
				assert.Equal(t, src.Rows, 100)
			} else {
				assert.Equal(t, filepath.Base(src.Path), tt.wantFile)
			}
		})
	}
}

func TestResolveTreatsDirectoryAsPresent(t *testing.T) {
	dir := fs.NewDir(t, "resolve", fs.WithDir("input.parquet"))
	defer dir.Remove()

	src := Resolve(Candidates(dir.Join("input.parquet"), dir.Join("input.csv")), 1)
	assert.Equal(t, src.Kind, KindParquet)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, Source{Kind: KindSynthetic, Rows: 5}.String(), "synthetic(5 rows)")
	assert.Equal(t, Source{Kind: KindCSV, Path: "data/input.csv"}.String(), "csv(data/input.csv)")
}
