package cmd

import (
	"context"
	"errors"
)

const (
	ExitOK       = 0
	ExitError    = 1
	ExitCanceled = 130
)

// ExitCode maps a command error to the process exit code. Usage errors,
// invalid operations, parse errors and everything else share ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	return ExitError
}
