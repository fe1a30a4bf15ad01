package main

import (
	"context"
	"os"

	"github.com/desertthunder/listen/internal/shared"
	"github.com/desertthunder/listen/internal/system"
	"github.com/desertthunder/listen/internal/terminal"
	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

func init() {
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

func main() {
	logger := shared.NewLogger(os.Stderr)
	term := terminal.New(os.Stdin, os.Stdout)

	runner := NewRunner(RunnerOpts{
		Terminal:  term,
		Input:     term.Reader(),
		Output:    os.Stdout,
		Clipboard: system.NewClipboard(),
		Locale:    system.NewLocale(),
		Logger:    logger,
	})

	if err := rootCommand(runner).Run(context.Background(), os.Args); err != nil {
		logger.Error(err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
