package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/textx/internal/iocontext"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Version   string
	Commit    string
	BuildTime string
}

// NewApp constructs an App bound to the process streams.
func NewApp() *App {
	return &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Version:   "dev",
		Commit:    "unknown",
		BuildTime: "unknown",
	}
}

// Execute runs the CLI with the provided args. Errors are printed to the
// error stream before being returned.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	if args == nil {
		// Cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	ctx = iocontext.WithIO(ctx, a.Stdout, a.Stderr)
	ctx = iocontext.WithStdin(ctx, a.Stdin)

	if err := root.ExecuteContext(ctx); err != nil {
		errCtx := root.Context()
		if errCtx == nil {
			errCtx = ctx
		}
		// Argument validation fails before PersistentPreRunE stores the
		// error format, so fall back to the parsed flag.
		if ErrorFormatFromContext(errCtx) == "" {
			if f, ferr := root.PersistentFlags().GetString("error-format"); ferr == nil {
				errCtx = WithErrorFormat(errCtx, f)
			}
		}
		printCommandError(errCtx, err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
