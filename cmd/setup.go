package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/listen/internal/shared"
	"github.com/urfave/cli/v3"
)

// configTarget returns the --config path, or the default location.
func configTarget(cmd *cli.Command) (string, error) {
	if path := cmd.String("config"); path != "" {
		return path, nil
	}
	return shared.DefaultConfigPath()
}

// ConfigInit writes the example configuration file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path, err := configTarget(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("creating config file from template", "path", path)
	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return r.writePlain("✓ Configuration written to %s\n", path)
}

// ConfigPath prints where the configuration is read from.
func (r *Runner) ConfigPath(ctx context.Context, cmd *cli.Command) error {
	path, err := configTarget(cmd)
	if err != nil {
		return err
	}
	return r.writePlain("%s\n", path)
}
