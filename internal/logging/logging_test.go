package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// saveAndRestoreLogger saves the current default logger and returns a cleanup function.
func saveAndRestoreLogger(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
	})
}

func TestSetup_DebugMode(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	Setup(true, &buf)

	slog.Debug("operation finished", "operation", "csv")

	output := buf.String()
	if !strings.Contains(output, "operation finished") {
		t.Errorf("expected debug message in output, got: %s", output)
	}
	if !strings.Contains(output, "operation=csv") {
		t.Errorf("expected operation=csv in output, got: %s", output)
	}
}

func TestSetup_NormalMode(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	Setup(false, &buf)

	slog.Debug("debug message")
	slog.Info("info message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("debug message should not appear in normal mode")
	}
	if !strings.Contains(output, "info message") {
		t.Errorf("info message should appear")
	}
}

func TestSetup_NilWriter(t *testing.T) {
	saveAndRestoreLogger(t)

	// Should not panic when writer is nil (defaults to stderr)
	Setup(false, nil)
	slog.Info("test")
}

func TestSetupJSON(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	SetupJSON(true, &buf)

	slog.Debug("debug json", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"msg":"debug json"`) {
		t.Errorf("expected debug message in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected key in JSON output, got: %s", output)
	}
}

func TestNew_DoesNotTouchDefault(t *testing.T) {
	saveAndRestoreLogger(t)
	before := slog.Default()

	var buf bytes.Buffer
	logger := New(&buf, false, false)
	logger.Info("direct")

	if slog.Default() != before {
		t.Error("New should not replace the default logger")
	}
	if !strings.Contains(buf.String(), "direct") {
		t.Errorf("expected message in output, got: %s", buf.String())
	}
}
