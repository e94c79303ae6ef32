// Package output writes command results to stdout.
//
// It supports output formats:
//   - text: the transformed text exactly as produced (default)
//   - json: pretty-printed JSON envelope
//   - yaml: YAML envelope
//
// Structured formats wrap the result in an envelope: Result for plain text
// operations and Table for csv. A jq expression (--query) or a JSONPath
// expression (--jsonpath) can narrow the envelope before it is encoded.
//
// The format and filters are stored in the context by the root command:
//
//	ctx = output.WithFormat(ctx, format)
//	ctx = output.WithQuery(ctx, query)
//
// and read back when printing:
//
//	printer := output.NewPrinter(w, output.FormatFromContext(ctx))
//	return printer.Print(ctx, output.Result{Operation: op, Result: s})
package output
