package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/leengari/groupbench/internal/domain/frame"
)

func newTestTree(t *testing.T) (*AggregateNode, *ScanNode) {
	t.Helper()
	tbl, err := frame.New("input",
		frame.NewIntColumn("grp", []int64{1, 2}),
		frame.NewFloatColumn("val", []float64{0.5, 1.5}),
	)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	scan := &ScanNode{Table: tbl}
	agg := NewAggregateNode(scan, []string{"grp"}, []AggExpr{{Func: AggMean, Column: "val", Alias: "mean_val"}})
	return agg, scan
}

// TestTreeStructure verifies that nodes form a tree
func TestTreeStructure(t *testing.T) {
	agg, scan := newTestTree(t)

	if len(agg.Children()) != 1 {
		t.Errorf("AggregateNode should have 1 child, got %d", len(agg.Children()))
	}
	if agg.Input() != Node(scan) {
		t.Error("AggregateNode input should be the scan")
	}
	if len(scan.Children()) != 0 {
		t.Errorf("ScanNode should have 0 children, got %d", len(scan.Children()))
	}

	empty := NewAggregateNode(nil, nil, nil)
	if len(empty.Children()) != 0 {
		t.Errorf("AggregateNode without input should have 0 children, got %d", len(empty.Children()))
	}
}

// TestMetadata verifies metadata attachment
func TestMetadata(t *testing.T) {
	node := &ScanNode{}

	// Metadata should never be nil
	if node.Metadata() == nil {
		t.Error("Metadata() should never return nil")
	}

	node.Metadata()["estimated_rows"] = 1000

	if val, ok := node.Metadata()["estimated_rows"].(int); !ok || val != 1000 {
		t.Errorf("Expected estimated_rows=1000, got %v", node.Metadata()["estimated_rows"])
	}
}

// TestWalkTree verifies tree walking and early exit
func TestWalkTree(t *testing.T) {
	agg, _ := newTestTree(t)

	nodeCount := 0
	err := WalkTree(agg, func(n Node) error {
		nodeCount++
		return nil
	})
	if err != nil {
		t.Errorf("WalkTree failed: %v", err)
	}
	if nodeCount != 2 {
		t.Errorf("Expected to visit 2 nodes, visited %d", nodeCount)
	}

	stop := errors.New("stop")
	visited := 0
	err = WalkTree(agg, func(n Node) error {
		visited++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Expected visitor error to propagate, got %v", err)
	}
	if visited != 1 {
		t.Errorf("Expected walk to stop after 1 node, visited %d", visited)
	}
}

// TestPrintTree verifies tree printing
func TestPrintTree(t *testing.T) {
	agg, scan := newTestTree(t)
	scan.Columns = []string{"grp", "val"}

	output := PrintTree(agg)
	want := "AGGREGATE BY [grp] -> [mean(val) AS mean_val]\n  SCAN input [grp, val]\n"
	if output != want {
		t.Errorf("Unexpected tree output:\n%s\nwant:\n%s", output, want)
	}

	scan.Columns = nil
	if !strings.Contains(PrintTree(scan), "[*]") {
		t.Error("Unpruned scan should print [*]")
	}
}

// TestCountNodes verifies node counting
func TestCountNodes(t *testing.T) {
	agg, _ := newTestTree(t)

	if count := CountNodes(agg); count != 2 {
		t.Errorf("Expected 2 nodes, got %d", count)
	}
	if count := CountNodes(nil); count != 0 {
		t.Errorf("Expected 0 nodes for nil tree, got %d", count)
	}
}

// TestNodeType verifies NodeType method
func TestNodeType(t *testing.T) {
	tests := []struct {
		node     Node
		expected string
	}{
		{&ScanNode{}, "SCAN"},
		{&AggregateNode{}, "AGGREGATE"},
	}

	for _, tt := range tests {
		if tt.node.NodeType() != tt.expected {
			t.Errorf("Expected NodeType=%s, got %s", tt.expected, tt.node.NodeType())
		}
	}
}

func TestAggExprOutputName(t *testing.T) {
	if name := (AggExpr{Func: AggMean, Column: "val"}).OutputName(); name != "val" {
		t.Errorf("Expected default output name val, got %s", name)
	}
	if name := (AggExpr{Func: AggMean, Column: "val", Alias: "m"}).OutputName(); name != "m" {
		t.Errorf("Expected alias m, got %s", name)
	}
}
