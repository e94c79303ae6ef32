package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/textx/internal/config"
	"github.com/salmonumbrella/textx/internal/csvtable"
	clierrors "github.com/salmonumbrella/textx/internal/errors"
	"github.com/salmonumbrella/textx/internal/logging"
	"github.com/salmonumbrella/textx/internal/operation"
	"github.com/salmonumbrella/textx/internal/output"
	"github.com/salmonumbrella/textx/internal/ui"
)

const rootLong = `Read text from standard input, apply one transformation and write the
result to standard output.

Operations:
  lowercase   map every character to lowercase
  uppercase   map every character to uppercase
  no-spaces   remove every ASCII space
  slugify     turn the text into a URL-safe slug
  csv         render CSV input as an aligned table

Examples:
  echo "Hello World" | textx lowercase
  textx slugify < title.txt
  textx csv -i people.csv
  textx csv -o json --query '.rows | length' < people.csv`

func usageLine() string {
	return fmt.Sprintf("textx [%s]", strings.Join(operation.Names(), "|"))
}

func newRootCmd(app *App) *cobra.Command {
	var (
		debugMode   bool
		quietFlag   bool
		listFlag    bool
		inputPath   string
		outputFlag  string
		colorFlag   string
		errorFormat string
		queryFlag   string
		jsonPath    string
		completion  string
	)

	rootCmd := &cobra.Command{
		Use:       "textx <operation>",
		Short:     "Transform text read from standard input",
		Long:      rootLong,
		ValidArgs: operation.Names(),
		// Errors are printed by App.Execute, including those raised before
		// PersistentPreRunE runs.
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if listFlag || completion != "" {
				return nil
			}
			if len(args) != 1 {
				return &clierrors.UsageError{Usage: usageLine()}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if !flagChanged(cmd.Flags(), "output", "format") && cfg.Output != "" {
				outputFlag = cfg.Output
			}
			if !cmd.Flags().Changed("color") && cfg.Color != "" {
				colorFlag = cfg.Color
			}
			if !cmd.Flags().Changed("error-format") && cfg.ErrorFormat != "" {
				errorFormat = cfg.ErrorFormat
			}

			format, err := output.ParseFormat(outputFlag)
			if err != nil {
				return &clierrors.ValidationError{Field: "output", Message: err.Error()}
			}
			if err := validateErrorFormat(errorFormat); err != nil {
				return err
			}
			colorMode, err := ui.ParseColorMode(colorFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ctx = output.WithFormat(ctx, format)
			ctx = output.WithQuery(ctx, queryFlag)
			ctx = output.WithJSONPath(ctx, jsonPath)
			ctx = WithErrorFormat(ctx, errorFormat)
			ctx = WithQuiet(ctx, quietFlag)
			ctx = ui.WithUI(ctx, ui.New(colorMode, app.Stderr))

			// Keep stderr machine-readable when errors are emitted as JSON.
			if effectiveErrorFormat(ctx) == "json" {
				logging.SetupJSON(debugMode, app.Stderr)
			} else {
				logging.Setup(debugMode, app.Stderr)
			}

			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case completion != "":
				return writeCompletion(cmd.Root(), completion, stdoutFromContext(ctx))
			case listFlag:
				return printOperations(ctx)
			}
			return runOperation(ctx, args[0], inputPath)
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("textx %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&inputPath, "input", "i", "-", "Read input from a file instead of stdin ('-' for stdin)")
	flags.StringVarP(&outputFlag, "output", "o", "text", "Output format: text|json|yaml")
	flags.StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter structured output")
	flags.StringVar(&jsonPath, "jsonpath", "", "Extract a value from structured output using JSONPath (e.g. $.headers[0])")
	flags.StringVar(&errorFormat, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	flags.StringVar(&colorFlag, "color", "auto", "Color mode for status messages (auto|always|never)")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	flags.BoolVar(&listFlag, "list", false, "List the available operations and exit")
	flags.StringVar(&completion, "completion", "", "Print a shell completion script (bash|zsh|fish|powershell)")

	flagAlias(flags, "output", "format")
	flagAlias(flags, "query", "jq")

	return rootCmd
}

func runOperation(ctx context.Context, name, inputPath string) error {
	// Reject unknown names before blocking on input.
	if _, err := operation.Lookup(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	input, err := readInput(ctx, inputPath)
	if err != nil {
		return err
	}
	slog.Debug("input loaded", "operation", name, "bytes", len(input), "source", inputPath)

	printer := printerForContext(ctx)
	if !output.FormatFromContext(ctx).IsStructured() {
		result, err := operation.Run(name, input)
		if err != nil {
			return err
		}
		return printer.Print(ctx, result)
	}

	if name == operation.CSV {
		table, err := csvtable.Parse(input)
		if err != nil {
			return err
		}
		return printer.Print(ctx, output.NewTable(table))
	}
	result, err := operation.Run(name, input)
	if err != nil {
		return err
	}
	return printer.Print(ctx, output.Result{Operation: name, Result: result})
}

func printOperations(ctx context.Context) error {
	printer := printerForContext(ctx)
	if output.FormatFromContext(ctx).IsStructured() {
		return printer.Print(ctx, map[string]interface{}{"operations": operation.Names()})
	}
	return printer.Print(ctx, strings.Join(operation.Names(), "\n")+"\n")
}
