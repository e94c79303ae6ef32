package errors

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUsageError(t *testing.T) {
	err := &UsageError{Usage: "textx [lowercase|csv]"}

	expected := "Usage: textx [lowercase|csv]"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
	if !IsUsageError(err) {
		t.Error("IsUsageError should return true for UsageError")
	}
	if (&UsageError{}).Error() != "missing operation argument" {
		t.Errorf("unexpected message for empty usage: %q", (&UsageError{}).Error())
	}
}

func TestInvalidOperationError(t *testing.T) {
	valid := []string{"lowercase", "uppercase", "no-spaces", "slugify", "csv"}
	err := NewInvalidOperationError("reverse", valid)

	expected := `invalid operation "reverse". Use: lowercase, uppercase, no-spaces, slugify, or csv`
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	valid[0] = "changed"
	if err.Valid[0] != "lowercase" {
		t.Error("InvalidOperationError should keep its own copy of the valid names")
	}
	if !IsInvalidOperationError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsInvalidOperationError should see through wrapping")
	}
}

func TestInvalidOperationError_ShortLists(t *testing.T) {
	tests := []struct {
		valid []string
		want  string
	}{
		{nil, `invalid operation "x"`},
		{[]string{"a"}, `invalid operation "x". Use: a`},
		{[]string{"a", "b"}, `invalid operation "x". Use: a or b`},
	}

	for _, tt := range tests {
		if got := NewInvalidOperationError("x", tt.valid).Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseError(t *testing.T) {
	inner := errors.New("extraneous or missing \" in quoted-field")
	err := &ParseError{Message: "malformed CSV", Line: 3, Column: 7, Err: inner}

	expected := `malformed CSV (line 3, column 7): extraneous or missing " in quoted-field`
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}

	empty := &ParseError{Message: "empty CSV headers"}
	if empty.Error() != "empty CSV headers" {
		t.Errorf("unexpected message %q", empty.Error())
	}
}

func TestParseError_UnwrapsCSVError(t *testing.T) {
	csvErr := &csv.ParseError{StartLine: 1, Line: 1, Column: 2, Err: csv.ErrQuote}
	err := &ParseError{Message: "malformed CSV", Line: 1, Column: 2, Err: csvErr}

	if !errors.Is(err, csv.ErrQuote) {
		t.Error("expected errors.Is to reach csv.ErrQuote")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"generic", errors.New("boom"), KindUnknown},
		{"usage", &UsageError{}, KindUsage},
		{"invalid operation", NewInvalidOperationError("x", nil), KindInvalidOperation},
		{"parse", &ParseError{Message: "bad"}, KindParse},
		{"wrapped parse", fmt.Errorf("csv: %w", &ParseError{}), KindParse},
		{"user", NewUserError("bad", ""), KindUser},
		{"validation", &ValidationError{Field: "output", Message: "bad"}, KindUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		KindUnknown:          "unknown",
		KindUsage:            "usage",
		KindInvalidOperation: "invalid_operation",
		KindParse:            "parse",
		KindUser:             "user",
	}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestUserError(t *testing.T) {
	base := errors.New("no such file")
	err := WrapUserError(base, "failed to read input", "Check the --input path")

	if !IsUserError(err) {
		t.Error("IsUserError should return true for UserError")
	}
	if got := UserSuggestion(err); got != "Check the --input path" {
		t.Errorf("UserSuggestion() = %q, want %q", got, "Check the --input path")
	}

	expected := "failed to read input: no such file"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestUserSuggestion(t *testing.T) {
	if got := UserSuggestion(errors.New("plain")); got != "" {
		t.Errorf("expected no suggestion for plain error, got %q", got)
	}
	if got := UserSuggestion(&ParseError{Message: "empty CSV headers", Line: 1}); !strings.Contains(got, "header") {
		t.Errorf("expected empty header suggestion to mention the header, got %q", got)
	}
	malformed := &ParseError{Message: "malformed CSV", Line: 40, Column: 3, Err: csv.ErrQuote}
	if got := UserSuggestion(malformed); !strings.Contains(got, "quoting") || strings.Contains(got, "header") {
		t.Errorf("expected quoting suggestion for malformed CSV, got %q", got)
	}
	if got := UserSuggestion(NewInvalidOperationError("x", []string{"a"})); got != "" {
		t.Errorf("invalid operation already lists the names, got suggestion %q", got)
	}
}
