package plan

import (
	"fmt"
	"strings"

	"github.com/leengari/groupbench/internal/domain/frame"
)

// Node is the base interface for all execution plan nodes
type Node interface {
	// Children returns child nodes for tree walking
	Children() []Node

	// Metadata returns attached metadata (never nil)
	Metadata() map[string]any

	// NodeType returns the type identifier (for debugging/logging)
	NodeType() string
}

// AggFunc names an aggregate function
type AggFunc string

const (
	AggMean  AggFunc = "mean"
	AggSum   AggFunc = "sum"
	AggCount AggFunc = "count"
)

// AggExpr is one aggregate output column: Func applied to Column, named Alias
type AggExpr struct {
	Func   AggFunc
	Column string
	Alias  string
}

// OutputName returns the result column name
func (e AggExpr) OutputName() string {
	if e.Alias != "" {
		return e.Alias
	}
	return e.Column
}

func (e AggExpr) String() string {
	return fmt.Sprintf("%s(%s) AS %s", e.Func, e.Column, e.OutputName())
}

// ScanNode reads an in-memory table (leaf node)
type ScanNode struct {
	Table *frame.Table

	// Columns restricts the scan to the named columns. Nil means all columns.
	Columns []string

	metadata map[string]any
}

func (n *ScanNode) Children() []Node {
	return nil // Leaf node has no children
}

func (n *ScanNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *ScanNode) NodeType() string {
	return "SCAN"
}

// AggregateNode groups its input by Keys and computes Aggs per group
type AggregateNode struct {
	Keys []string
	Aggs []AggExpr

	input Node

	metadata map[string]any
}

func NewAggregateNode(input Node, keys []string, aggs []AggExpr) *AggregateNode {
	return &AggregateNode{
		Keys:  keys,
		Aggs:  aggs,
		input: input,
	}
}

func (n *AggregateNode) Input() Node {
	return n.input
}

func (n *AggregateNode) Children() []Node {
	if n.input == nil {
		return nil
	}
	return []Node{n.input}
}

func (n *AggregateNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *AggregateNode) NodeType() string {
	return "AGGREGATE"
}

// Describe renders a one-line summary of a node for plan printing
func Describe(node Node) string {
	switch n := node.(type) {
	case *ScanNode:
		name := "<nil>"
		if n.Table != nil {
			name = n.Table.Name
		}
		if n.Columns == nil {
			return fmt.Sprintf("SCAN %s [*]", name)
		}
		return fmt.Sprintf("SCAN %s [%s]", name, strings.Join(n.Columns, ", "))
	case *AggregateNode:
		aggs := make([]string, len(n.Aggs))
		for i, a := range n.Aggs {
			aggs[i] = a.String()
		}
		return fmt.Sprintf("AGGREGATE BY [%s] -> [%s]", strings.Join(n.Keys, ", "), strings.Join(aggs, ", "))
	}
	return node.NodeType()
}
