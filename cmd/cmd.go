// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/listen/internal/formatter"
	"github.com/desertthunder/listen/internal/models"
	"github.com/urfave/cli/v3"
)

const sourceArg = "source-url"

// rootCommand resolves a streaming link and copies the chosen platform URL
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "listen",
		Usage:     "Convert a streaming link to another platform using song.link",
		UsageText: "listen [options] SOURCE_URL",
		Version:   version,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: sourceArg,
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "platform",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Target platform (%s)", models.SupportedOptions()),
			},
			&cli.StringFlag{
				Name:    "country",
				Aliases: []string{"c"},
				Usage:   "Two-letter country hint sent to song.link (default: system locale)",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "Print every resolved link instead of choosing one",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: fmt.Sprintf("Output format for --list (%s)", strings.Join(formatter.Formats(), ", ")),
				Value: formatter.FormatText,
			},
			&cli.BoolFlag{
				Name:    "open",
				Aliases: []string{"o"},
				Usage:   "Open the chosen link in the default browser",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Always use the numbered prompt instead of the arrow-key menu",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to configuration file (default: user config dir)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Commands: r.register(),
		Action:   r.Listen,
	}
}

// configCommand handles configuration file operations.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration file",
				Action: r.ConfigInit,
			},
			{
				Name:   "path",
				Usage:  "Print the configuration file path",
				Action: r.ConfigPath,
			},
		},
	}
}
