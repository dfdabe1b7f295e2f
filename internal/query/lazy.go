// Package query is the deferred query API: calls build a plan tree, and
// nothing runs until Collect.
package query

import (
	"github.com/leengari/groupbench/internal/domain/frame"
	"github.com/leengari/groupbench/internal/executor"
	"github.com/leengari/groupbench/internal/plan"
	"github.com/leengari/groupbench/internal/planner"
)

// LazyFrame is a query description over an in-memory table
type LazyFrame struct {
	root plan.Node
}

// From starts a query that scans t
func From(t *frame.Table) *LazyFrame {
	return &LazyFrame{root: &plan.ScanNode{Table: t}}
}

// GroupBy starts a grouped aggregation; finish it with Agg
func (lf *LazyFrame) GroupBy(keys ...string) *GroupBy {
	return &GroupBy{input: lf.root, keys: keys}
}

// Plan returns the unoptimized plan tree
func (lf *LazyFrame) Plan() plan.Node {
	return lf.root
}

// Explain validates the query and renders the optimized plan
func (lf *LazyFrame) Explain() (string, error) {
	node, err := planner.Plan(lf.root)
	if err != nil {
		return "", err
	}
	return plan.PrintTree(node), nil
}

// Collect plans and executes the query
func (lf *LazyFrame) Collect() (*frame.Table, error) {
	node, err := planner.Plan(lf.root)
	if err != nil {
		return nil, err
	}
	return executor.Execute(node, nil)
}

// GroupBy is a pending grouped aggregation
type GroupBy struct {
	input plan.Node
	keys  []string
}

// Agg completes the aggregation with one output column per expression
func (g *GroupBy) Agg(exprs ...Expr) *LazyFrame {
	aggs := make([]plan.AggExpr, len(exprs))
	for i, e := range exprs {
		aggs[i] = e.agg
	}
	return &LazyFrame{root: plan.NewAggregateNode(g.input, g.keys, aggs)}
}

// Expr is an aggregate expression
type Expr struct {
	agg plan.AggExpr
}

func Mean(column string) Expr {
	return Expr{agg: plan.AggExpr{Func: plan.AggMean, Column: column}}
}

func Sum(column string) Expr {
	return Expr{agg: plan.AggExpr{Func: plan.AggSum, Column: column}}
}

func Count(column string) Expr {
	return Expr{agg: plan.AggExpr{Func: plan.AggCount, Column: column}}
}

// Alias names the output column
func (e Expr) Alias(name string) Expr {
	e.agg.Alias = name
	return e
}

func (e Expr) String() string {
	return e.agg.String()
}
