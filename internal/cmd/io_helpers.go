package cmd

import (
	"context"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	clierrors "github.com/salmonumbrella/textx/internal/errors"
	"github.com/salmonumbrella/textx/internal/iocontext"
	"github.com/salmonumbrella/textx/internal/output"
	"github.com/salmonumbrella/textx/internal/ui"
)

func stdoutFromContext(ctx context.Context) io.Writer {
	return iocontext.StdoutOrDefault(ctx, os.Stdout)
}

func stderrFromContext(ctx context.Context) io.Writer {
	return iocontext.StderrOrDefault(ctx, os.Stderr)
}

func stdinFromContext(ctx context.Context) io.Reader {
	return iocontext.StdinOrDefault(ctx, os.Stdin)
}

func printerForContext(ctx context.Context) *output.Printer {
	return output.NewPrinter(stdoutFromContext(ctx), output.FormatFromContext(ctx))
}

// readInput loads the entire input before any processing starts. An empty
// path or "-" reads stdin; anything else is a file path.
func readInput(ctx context.Context, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		in := stdinFromContext(ctx)
		if isTerminal(in) && !QuietFromContext(ctx) {
			ui.FromContext(ctx).Info("Reading from terminal; press Ctrl-D to end input")
		}
		data, err = io.ReadAll(in)
		if err != nil {
			return "", clierrors.WrapUserError(err, "failed to read standard input", "")
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return "", clierrors.WrapUserError(err, "failed to read input file", "Check that --input points to a readable file, or use - for stdin")
		}
	}

	if !utf8.Valid(data) {
		return "", clierrors.NewUserError("input is not valid UTF-8", "Convert the input to UTF-8 before piping it in")
	}
	return string(data), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
