package cmd

import "context"

type (
	errorFormatKey struct{}
	quietKey       struct{}
)

// WithErrorFormat stores the error format in the context.
func WithErrorFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, errorFormatKey{}, format)
}

// ErrorFormatFromContext retrieves the error format from context.
func ErrorFormatFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(errorFormatKey{}).(string); ok {
		return v
	}
	return ""
}

// WithQuiet stores the --quiet flag in the context.
func WithQuiet(ctx context.Context, quiet bool) context.Context {
	return context.WithValue(ctx, quietKey{}, quiet)
}

// QuietFromContext reports whether non-essential stderr output is suppressed.
func QuietFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(quietKey{}).(bool)
	return v
}
