package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for exit handling and structured error output.
type Kind int

const (
	KindUnknown Kind = iota
	KindUsage
	KindInvalidOperation
	KindParse
	KindUser
)

// String returns the machine-readable name used in error envelopes.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindParse:
		return "parse"
	case KindUser:
		return "user"
	default:
		return "unknown"
	}
}

// UsageError is returned when the command line is missing the operation argument.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return "missing operation argument"
	}
	return "Usage: " + e.Usage
}

// InvalidOperationError reports an operation name outside the supported set.
// Valid lists the accepted names in display order.
type InvalidOperationError struct {
	Operation string
	Valid     []string
}

func (e *InvalidOperationError) Error() string {
	msg := "invalid operation"
	if e.Operation != "" {
		msg = fmt.Sprintf("invalid operation %q", e.Operation)
	}
	if len(e.Valid) == 0 {
		return msg
	}
	return fmt.Sprintf("%s. Use: %s", msg, joinOr(e.Valid))
}

// NewInvalidOperationError creates an InvalidOperationError with a copy of valid.
func NewInvalidOperationError(op string, valid []string) *InvalidOperationError {
	return &InvalidOperationError{Operation: op, Valid: append([]string(nil), valid...)}
}

// ParseError represents CSV input that could not be turned into a table.
// Line and Column are 1-based and zero when unknown.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Err     error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "invalid CSV"
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d", msg, e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
		msg += ")"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// Type checkers
func IsUsageError(err error) bool {
	var e *UsageError
	return errors.As(err, &e)
}

func IsInvalidOperationError(err error) bool {
	var e *InvalidOperationError
	return errors.As(err, &e)
}

func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// KindOf classifies err. The most specific kind wins when errors are nested.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case IsUsageError(err):
		return KindUsage
	case IsInvalidOperationError(err):
		return KindInvalidOperation
	case IsParseError(err):
		return KindParse
	case IsUserError(err), IsValidationError(err):
		return KindUser
	default:
		return KindUnknown
	}
}

// UserSuggestion returns a suggestion string for errors that carry one.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		// Empty-header errors carry no reader error.
		if pe.Err == nil {
			return "The first line must be a non-empty CSV header"
		}
		return "Check quoting on the reported line: close every quoted field and double any quote inside it"
	}
	return ""
}

// joinOr renders names as "a, b, or c".
func joinOr(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
