package planner

import (
	"fmt"
	"strings"

	"github.com/leengari/groupbench/internal/domain/errors"
	"github.com/leengari/groupbench/internal/plan"
)

// Plan validates a logical plan against the schema of its input and
// prepares it for execution: scans are pruned to the referenced columns
// and every node gets cost metadata. The tree is modified in place.
func Plan(root plan.Node) (plan.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot plan an empty query")
	}

	// Parents are visited before children, so aggregates prune their
	// scans before the scans themselves are checked.
	err := plan.WalkTree(root, func(node plan.Node) error {
		switch n := node.(type) {
		case *plan.AggregateNode:
			return planAggregate(n)
		case *plan.ScanNode:
			return planScan(n)
		default:
			return fmt.Errorf("unsupported plan node: %T", node)
		}
	})
	if err != nil {
		return nil, err
	}

	// Children first so parents can build on their estimates
	attachEstimates(root)

	return root, nil
}

func planScan(n *plan.ScanNode) error {
	if n.Table == nil {
		return fmt.Errorf("scan has no input table")
	}

	for _, name := range n.Columns {
		if _, ok := n.Table.Column(name); !ok {
			return errors.NewMissingColumn(name, n.Table.ColumnNames())
		}
	}

	n.Metadata()["source_table"] = n.Table.Name
	n.Metadata()["scan_type"] = "in_memory"
	return nil
}

func planAggregate(n *plan.AggregateNode) error {
	scan, ok := n.Input().(*plan.ScanNode)
	if !ok {
		return fmt.Errorf("aggregate input must be a scan, got %T", n.Input())
	}
	if scan.Table == nil {
		return fmt.Errorf("scan has no input table")
	}
	table := scan.Table

	if len(n.Keys) != 1 {
		return errors.NewInvalidAggregation(strings.Join(n.Keys, ","), "exactly one group key is supported")
	}
	if len(n.Aggs) == 0 {
		return errors.NewInvalidAggregation(n.Keys[0], "at least one aggregate is required")
	}

	key := n.Keys[0]
	if _, ok := table.Column(key); !ok {
		return errors.NewMissingColumn(key, table.ColumnNames())
	}

	outputs := map[string]bool{key: true}
	needed := []string{key}
	for _, agg := range n.Aggs {
		col, ok := table.Column(agg.Column)
		if !ok {
			return errors.NewMissingColumn(agg.Column, table.ColumnNames())
		}

		switch agg.Func {
		case plan.AggMean, plan.AggSum:
			if !col.Numeric() {
				return errors.NewNonNumericColumn(agg.Column, string(col.Type))
			}
		case plan.AggCount:
		default:
			return errors.NewInvalidAggregation(agg.Column, fmt.Sprintf("unknown aggregate function %q", agg.Func))
		}

		name := agg.OutputName()
		if outputs[name] {
			return errors.NewInvalidAggregation(agg.Column, fmt.Sprintf("duplicate output column %q", name))
		}
		outputs[name] = true

		if !contains(needed, agg.Column) {
			needed = append(needed, agg.Column)
		}
	}

	scan.Columns = needed

	n.Metadata()["group_keys"] = n.Keys
	n.Metadata()["aggregate_count"] = len(n.Aggs)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
