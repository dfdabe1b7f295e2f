package plan

import "strings"

// WalkTree recursively walks the plan tree, calling visitor for each node
func WalkTree(node Node, visitor func(Node) error) error {
	if node == nil {
		return nil
	}

	// Visit current node
	if err := visitor(node); err != nil {
		return err
	}

	// Recursively visit children
	for _, child := range node.Children() {
		if err := WalkTree(child, visitor); err != nil {
			return err
		}
	}

	return nil
}

// PrintTree prints the plan tree with indentation, one node per line
func PrintTree(node Node) string {
	var b strings.Builder
	printTreeHelper(node, 0, &b)
	return b.String()
}

func printTreeHelper(node Node, depth int, b *strings.Builder) {
	if node == nil {
		return
	}

	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(Describe(node))
	b.WriteByte('\n')

	for _, child := range node.Children() {
		printTreeHelper(child, depth+1, b)
	}
}

// CountNodes counts the total number of nodes in the tree
func CountNodes(node Node) int {
	if node == nil {
		return 0
	}

	count := 1 // Count current node
	for _, child := range node.Children() {
		count += CountNodes(child)
	}

	return count
}
