// Package operation maps operation names to text transformations.
package operation

import (
	"log/slog"
	"time"

	"github.com/salmonumbrella/textx/internal/csvtable"
	clierrors "github.com/salmonumbrella/textx/internal/errors"
	"github.com/salmonumbrella/textx/internal/transform"
)

// Operation names accepted on the command line.
const (
	Lowercase = "lowercase"
	Uppercase = "uppercase"
	NoSpaces  = "no-spaces"
	Slugify   = "slugify"
	CSV       = "csv"
)

// Func transforms the full input text.
type Func func(input string) (string, error)

type entry struct {
	name string
	fn   Func
}

// registry is ordered; Names reports operations in this order.
var registry = []entry{
	{Lowercase, total(transform.Lowercase)},
	{Uppercase, total(transform.Uppercase)},
	{NoSpaces, total(transform.NoSpaces)},
	{Slugify, total(transform.Slugify)},
	{CSV, formatCSV},
}

func total(fn func(string) string) Func {
	return func(input string) (string, error) {
		return fn(input), nil
	}
}

func formatCSV(input string) (string, error) {
	table, err := csvtable.Parse(input)
	if err != nil {
		return "", err
	}
	return table.Format(), nil
}

// Names returns the supported operation names in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Lookup resolves an operation by exact name. Unknown names return an
// *errors.InvalidOperationError listing the valid names.
func Lookup(name string) (Func, error) {
	for _, e := range registry {
		if e.name == name {
			return e.fn, nil
		}
	}
	return nil, clierrors.NewInvalidOperationError(name, Names())
}

// Run applies the named operation to input.
func Run(name, input string) (string, error) {
	fn, err := Lookup(name)
	if err != nil {
		return "", err
	}

	start := time.Now()
	out, err := fn(input)
	slog.Debug("operation finished",
		"operation", name,
		"input_bytes", len(input),
		"output_bytes", len(out),
		"duration", time.Since(start),
		"error", err,
	)
	return out, err
}
