package main

import (
	"context"
	"os"

	"github.com/salmonumbrella/textx/internal/cmd"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	app := cmd.NewApp()
	app.Version = Version
	app.Commit = Commit
	app.BuildTime = BuildTime

	// The default SIGINT behavior is kept so Ctrl-C interrupts a blocked
	// stdin read.
	if err := app.Execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
