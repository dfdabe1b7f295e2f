package cmd

import (
	"context"
	"errors"

	domainerrors "github.com/leengari/groupbench/internal/domain/errors"
)

const (
	ExitOK            = 0
	ExitSystem        = 1
	ExitUsage         = 2
	ExitRead          = 3
	ExitAggregation   = 4
	ExitSerialization = 5
	ExitCanceled      = 130
)

// usageError marks invalid command line input
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}

	var usage *usageError
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case domainerrors.IsReadError(err):
		return ExitRead
	case domainerrors.IsAggregationError(err):
		return ExitAggregation
	case domainerrors.IsSerializationError(err):
		return ExitSerialization
	}
	return ExitSystem
}
