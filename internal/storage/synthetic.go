package storage

import (
	"fmt"
	"math"

	"github.com/leengari/groupbench/internal/domain/frame"
)

// SyntheticGroups is the number of distinct grp values in a synthetic table
const SyntheticGroups = 10

// Synthesize builds the fallback table: id = 0..rows-1, grp = id % 10,
// val = sin(id). The output depends only on rows.
func Synthesize(rows int) (*frame.Table, error) {
	if rows < 0 {
		return nil, fmt.Errorf("synthetic row count must not be negative, got %d", rows)
	}

	ids := make([]int64, rows)
	grps := make([]int64, rows)
	vals := make([]float64, rows)
	for i := range rows {
		ids[i] = int64(i)
		grps[i] = int64(i % SyntheticGroups)
		vals[i] = math.Sin(float64(i))
	}

	return frame.New("synthetic",
		frame.NewIntColumn("id", ids),
		frame.NewIntColumn("grp", grps),
		frame.NewFloatColumn("val", vals),
	)
}
