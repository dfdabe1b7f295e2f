package source

import (
	"fmt"
	"os"
)

// Kind identifies where the benchmark table comes from
type Kind string

const (
	KindParquet   Kind = "parquet"
	KindCSV       Kind = "csv"
	KindSynthetic Kind = "synthetic"
)

// Candidate is an input file that may or may not exist
type Candidate struct {
	Kind Kind
	Path string
}

// Source is the resolved input for one run.
// Path is empty and Rows is set for synthetic sources.
type Source struct {
	Kind Kind
	Path string
	Rows int
}

func (s Source) String() string {
	if s.Kind == KindSynthetic {
		return fmt.Sprintf("synthetic(%d rows)", s.Rows)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Path)
}

// Candidates returns the file inputs in priority order: columnar first, then delimited text.
func Candidates(parquetPath, csvPath string) []Candidate {
	return []Candidate{
		{Kind: KindParquet, Path: parquetPath},
		{Kind: KindCSV, Path: csvPath},
	}
}

// Resolve picks the first candidate that exists on disk. When none exist
// the run falls back to a synthetic table of syntheticRows rows; a missing
// file is never an error.
func Resolve(candidates []Candidate, syntheticRows int) Source {
	for _, c := range candidates {
		if exists(c.Path) {
			return Source{Kind: c.Kind, Path: c.Path}
		}
	}
	return Source{Kind: KindSynthetic, Rows: syntheticRows}
}

// exists treats any stat result other than "not exist" as present.
// Unreadable files fail later as read errors.
func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
