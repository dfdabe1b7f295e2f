// Package report builds and prints the benchmark result document.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/leengari/groupbench/internal/domain/errors"
)

// BenchmarkResult is the document printed on success. Key names are stable.
type BenchmarkResult struct {
	Engine   string  `json:"engine"`
	ReadS    float64 `json:"read_s"`
	GroupbyS float64 `json:"groupby_s"`
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	Notes    string  `json:"notes"`
}

// New builds a result from measured durations and the aggregated table shape
func New(engine string, read, groupby time.Duration, rows, cols int, notes string) *BenchmarkResult {
	return &BenchmarkResult{
		Engine:   engine,
		ReadS:    read.Seconds(),
		GroupbyS: groupby.Seconds(),
		Rows:     rows,
		Cols:     cols,
		Notes:    notes,
	}
}

// Write prints r as indented JSON followed by a newline.
// Nothing is written if encoding fails.
func Write(w io.Writer, r *BenchmarkResult) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &errors.SerializationError{Err: err}
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return &errors.SerializationError{Err: err}
	}
	return nil
}
