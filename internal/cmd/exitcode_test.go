package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	clierrors "github.com/salmonumbrella/textx/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", context.Canceled, ExitCanceled},
		{"wrapped canceled", fmt.Errorf("read: %w", context.Canceled), ExitCanceled},
		{"usage", &clierrors.UsageError{}, ExitError},
		{"invalid operation", clierrors.NewInvalidOperationError("x", nil), ExitError},
		{"parse", &clierrors.ParseError{Message: "bad"}, ExitError},
		{"user", clierrors.NewUserError("bad", "hint"), ExitError},
		{"system", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
