// Package ui provides colored status messages on the error stream.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	clierrors "github.com/salmonumbrella/textx/internal/errors"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto uses colors when the destination is a capable terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

// ParseColorMode converts auto|always|never to a ColorMode.
// The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, &clierrors.ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("unknown mode %q (expected auto|always|never)", s),
		}
	}
}

type contextKey struct{}

// UI writes human-facing status lines. Data never goes through it.
type UI struct {
	out   *termenv.Output
	color ColorMode
}

// New creates a UI writing to w (os.Stderr if nil).
// NO_COLOR in the environment always disables color.
func New(mode ColorMode, w io.Writer) *UI {
	if w == nil {
		w = os.Stderr
	}
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	var opts []termenv.OutputOption
	switch mode {
	case ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	case ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI256))
	}

	return &UI{
		out:   termenv.NewOutput(w, opts...),
		color: mode,
	}
}

// WithUI returns a new context with the UI instance attached.
func WithUI(ctx context.Context, ui *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, ui)
}

// FromContext retrieves the UI from ctx, falling back to an auto-color UI on stderr.
func FromContext(ctx context.Context) *UI {
	if ui, ok := ctx.Value(contextKey{}).(*UI); ok {
		return ui
	}
	return New(ColorAuto, nil)
}

// Info prints a blue informational line.
func (u *UI) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("ℹ "+msg).Foreground(termenv.ANSIBlue))
}
