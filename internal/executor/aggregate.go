package executor

import (
	"fmt"
	"math"

	"github.com/leengari/groupbench/internal/domain/errors"
	"github.com/leengari/groupbench/internal/domain/frame"
	"github.com/leengari/groupbench/internal/plan"
)

// grouping assigns every input row to a group. Groups are numbered in
// order of first appearance; first holds the first row of each group.
type grouping struct {
	ids   []int
	first []int
}

func (g grouping) count() int {
	return len(g.first)
}

// groupRows hashes the key column in a single pass. Nulls form one group.
func groupRows(col *frame.Column, capacity int) grouping {
	switch col.Type {
	case frame.ColumnTypeInt:
		return assignGroups(col, capacity, func(i int) int64 { return col.Ints[i] })
	case frame.ColumnTypeFloat:
		return assignGroups(col, capacity, func(i int) uint64 {
			v := col.Floats[i]
			if v == 0 {
				v = 0 // fold -0 into +0
			} else if math.IsNaN(v) {
				v = math.NaN() // one group for every NaN payload
			}
			return math.Float64bits(v)
		})
	default:
		return assignGroups(col, capacity, func(i int) string { return col.Texts[i] })
	}
}

func assignGroups[K comparable](col *frame.Column, capacity int, key func(int) K) grouping {
	n := col.Len()
	g := grouping{ids: make([]int, n)}
	index := make(map[K]int, capacity)
	nullGroup := -1

	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			if nullGroup < 0 {
				nullGroup = len(g.first)
				g.first = append(g.first, i)
			}
			g.ids[i] = nullGroup
			continue
		}

		k := key(i)
		id, ok := index[k]
		if !ok {
			id = len(g.first)
			index[k] = id
			g.first = append(g.first, i)
		}
		g.ids[i] = id
	}
	return g
}

// aggregate reduces col per group. Null inputs are skipped; a mean over a
// group with no values is null, a sum is 0.
func aggregate(expr plan.AggExpr, col *frame.Column, g grouping) (*frame.Column, error) {
	name := expr.OutputName()

	if expr.Func != plan.AggCount && !col.Numeric() {
		return nil, errors.NewNonNumericColumn(expr.Column, string(col.Type))
	}

	sums := make([]float64, g.count())
	counts := make([]int64, g.count())
	numeric := col.Numeric()
	for i, id := range g.ids {
		if col.IsNull(i) {
			continue
		}
		counts[id]++
		if numeric {
			sums[id] += col.Float(i)
		}
	}

	switch expr.Func {
	case plan.AggCount:
		return frame.NewIntColumn(name, counts), nil
	case plan.AggSum:
		return frame.NewFloatColumn(name, sums), nil
	case plan.AggMean:
		means := make([]float64, len(sums))
		out := frame.NewFloatColumn(name, means)
		for i := range sums {
			if counts[i] == 0 {
				out.SetNull(i)
				continue
			}
			means[i] = sums[i] / float64(counts[i])
		}
		return out, nil
	}
	return nil, errors.NewInvalidAggregation(expr.Column, fmt.Sprintf("unknown aggregate function %q", expr.Func))
}
