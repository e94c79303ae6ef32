package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/textx/internal/errors"
)

// Format represents the output format type.
type Format string

const (
	// FormatText writes the transformed text verbatim (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid --output format %q (expected text|json|yaml)", s)
	}
}

// IsStructured reports whether f encodes an envelope rather than raw text.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// PrintText writes s without adding or removing anything.
func (p *Printer) PrintText(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

// Print encodes data in the configured structured format after applying the
// --jsonpath and --query filters from ctx. In text format, data is written
// with %v, or verbatim when it is a string.
func (p *Printer) Print(ctx context.Context, data interface{}) error {
	query := QueryFromContext(ctx)
	path := JSONPathFromContext(ctx)
	if !p.format.IsStructured() {
		if query != "" || path != "" {
			return clierrors.NewUserError("--query and --jsonpath need structured output", "Add --output json or --output yaml")
		}
		if s, ok := data.(string); ok {
			return p.PrintText(s)
		}
		_, err := fmt.Fprintf(p.w, "%v\n", data)
		return err
	}

	values := []interface{}{data}
	if path != "" {
		v, err := applyJSONPath(data, path)
		if err != nil {
			return err
		}
		values = []interface{}{v}
	}
	if query != "" {
		var filtered []interface{}
		for _, v := range values {
			results, err := runQuery(query, v)
			if err != nil {
				return err
			}
			filtered = append(filtered, results...)
		}
		values = filtered
	}

	for _, v := range values {
		if err := p.encode(v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encode(v interface{}) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}
