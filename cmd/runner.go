package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/listen/internal/services"
	"github.com/desertthunder/listen/internal/shared"
	"github.com/desertthunder/listen/internal/tasks"
	"github.com/desertthunder/listen/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	resolver  services.Resolver
	terminal  ui.Terminal
	input     io.Reader
	clipboard tasks.Clipboard
	locale    services.Locale
	open      func(url string) error
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Config and Resolver are normally built from the --config flag; setting them skips that step.
type RunnerOpts struct {
	Config    *shared.Config
	Resolver  services.Resolver
	Terminal  ui.Terminal
	Input     io.Reader
	Clipboard tasks.Clipboard
	Locale    services.Locale
	Open      func(url string) error
	Logger    *log.Logger
	Output    io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Open == nil {
		opts.Open = shared.OpenBrowser
	}

	return &Runner{
		config:    opts.Config,
		resolver:  opts.Resolver,
		terminal:  opts.Terminal,
		input:     opts.Input,
		clipboard: opts.Clipboard,
		locale:    opts.Locale,
		open:      opts.Open,
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){configCommand} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig returns the injected configuration or reads path (the default location when empty).
func (r *Runner) loadConfig(path string) (*shared.Config, error) {
	if r.config != nil && path == "" {
		return r.config, nil
	}
	return shared.ResolveConfig(path)
}

// applyLogLevel sets the logger level from config, or debug when verbose.
func (r *Runner) applyLogLevel(config *shared.Config, verbose bool) {
	if verbose {
		shared.SetLogLevel(r.logger, log.DebugLevel)
		return
	}
	if level, err := shared.ParseLogLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(r.logger, level)
	}
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
