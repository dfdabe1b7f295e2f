package executor

// ExecutionConfig holds execution parameters
type ExecutionConfig struct {
	// ExpectedGroups presizes the grouping hash table
	ExpectedGroups int
}

// DefaultExecutionConfig returns default configuration
func DefaultExecutionConfig() *ExecutionConfig {
	return &ExecutionConfig{
		ExpectedGroups: 64,
	}
}
