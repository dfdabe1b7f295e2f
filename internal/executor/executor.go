package executor

import (
	"fmt"

	"github.com/leengari/groupbench/internal/domain/frame"
	"github.com/leengari/groupbench/internal/plan"
)

// ResultTableName names every table produced by an aggregate
const ResultTableName = "aggregate"

// Execute evaluates a planned tree and materializes its result.
// A nil config uses DefaultExecutionConfig.
func Execute(node plan.Node, cfg *ExecutionConfig) (*frame.Table, error) {
	if cfg == nil {
		cfg = DefaultExecutionConfig()
	}

	switch n := node.(type) {
	case *plan.ScanNode:
		return executeScan(n)
	case *plan.AggregateNode:
		return executeAggregate(n, cfg)
	case nil:
		return nil, fmt.Errorf("cannot execute an empty plan")
	default:
		return nil, fmt.Errorf("unsupported plan node: %T", node)
	}
}

func executeScan(n *plan.ScanNode) (*frame.Table, error) {
	if n.Table == nil {
		return nil, fmt.Errorf("scan has no input table")
	}
	if n.Columns == nil {
		return n.Table, nil
	}
	return n.Table.Select(n.Columns...)
}

func executeAggregate(n *plan.AggregateNode, cfg *ExecutionConfig) (*frame.Table, error) {
	if len(n.Keys) != 1 {
		return nil, fmt.Errorf("exactly one group key is supported, got %d", len(n.Keys))
	}

	input, err := Execute(n.Input(), cfg)
	if err != nil {
		return nil, err
	}

	keyCol, ok := input.Column(n.Keys[0])
	if !ok {
		return nil, fmt.Errorf("group key %q not found in input", n.Keys[0])
	}

	groups := groupRows(keyCol, cfg.ExpectedGroups)

	columns := make([]*frame.Column, 0, 1+len(n.Aggs))
	columns = append(columns, keyCol.Gather(groups.first))

	for _, expr := range n.Aggs {
		valCol, ok := input.Column(expr.Column)
		if !ok {
			return nil, fmt.Errorf("aggregate column %q not found in input", expr.Column)
		}
		col, err := aggregate(expr, valCol, groups)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	n.Metadata()["actual_groups"] = groups.count()

	return frame.New(ResultTableName, columns...)
}
