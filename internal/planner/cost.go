package planner

import "github.com/leengari/groupbench/internal/plan"

// estimateRowCount estimates the number of rows a node will return.
// Aggregates are bounded by their input; the real group count is unknown
// until execution.
func estimateRowCount(node plan.Node) int64 {
	switch n := node.(type) {
	case *plan.ScanNode:
		if n.Table == nil {
			return 0
		}
		return int64(n.Table.NumRows())
	case *plan.AggregateNode:
		if n.Input() == nil {
			return 0
		}
		return estimateRowCount(n.Input())
	}
	return 0
}

// estimateCost counts cell visits: a scan touches rows x projected columns,
// an aggregate hashes each input row once per aggregate plus the key.
func estimateCost(node plan.Node) float64 {
	switch n := node.(type) {
	case *plan.ScanNode:
		if n.Table == nil {
			return 0
		}
		cols := len(n.Columns)
		if n.Columns == nil {
			cols = n.Table.NumCols()
		}
		return float64(n.Table.NumRows()) * float64(cols)
	case *plan.AggregateNode:
		var cost float64
		for _, child := range n.Children() {
			cost += estimateCost(child)
		}
		return cost + float64(estimateRowCount(n))*float64(1+len(n.Aggs))
	}
	return 0
}

// attachEstimates attaches row and cost metadata to every node, children first
func attachEstimates(node plan.Node) {
	for _, child := range node.Children() {
		attachEstimates(child)
	}
	node.Metadata()["estimated_rows"] = estimateRowCount(node)
	node.Metadata()["estimated_cost"] = estimateCost(node)
}
