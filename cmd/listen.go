package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/listen/internal/models"
	"github.com/desertthunder/listen/internal/services"
	"github.com/desertthunder/listen/internal/shared"
	"github.com/desertthunder/listen/internal/tasks"
	"github.com/desertthunder/listen/internal/ui"
	"github.com/urfave/cli/v3"
)

// Listen resolves SOURCE_URL and copies the chosen platform link to the clipboard.
func (r *Runner) Listen(ctx context.Context, cmd *cli.Command) error {
	source := strings.TrimSpace(cmd.StringArg(sourceArg))
	if source == "" {
		return fmt.Errorf("%w: SOURCE_URL", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	r.applyLogLevel(config, cmd.Bool("verbose"))

	var platform *models.Platform
	if name := cmd.String("platform"); name != "" {
		p, err := models.ParsePlatform(name)
		if err != nil {
			return err
		}
		platform = &p
	}

	country := cmd.String("country")
	if country != "" && !services.ValidCountryCode(strings.ToUpper(country)) {
		return fmt.Errorf("%w: country must be a two-letter code, got '%s'", shared.ErrInvalidFlag, country)
	}
	if country == "" {
		country = config.SongLink.UserCountry
	}

	resolver := r.resolver
	if resolver == nil {
		svc := services.NewSongLinkService(services.SongLinkOpts{
			BaseURL: config.SongLink.BaseURL,
			APIKey:  config.SongLink.APIKey,
			Country: country,
			Locale:  r.locale,
			Timeout: config.SongLink.Timeout(),
			Logger:  r.logger,
		})
		defer svc.Close()
		resolver = svc
	}

	opts := tasks.EngineOpts{
		Resolver:    resolver,
		Fallback:    ui.NewPrompt(r.input, r.output),
		Clipboard:   r.clipboard,
		Interactive: config.UI.Interactive && !cmd.Bool("no-interactive"),
		Output:      r.output,
		Logger:      r.logger,
		Open:        r.open,
	}
	if r.terminal != nil {
		opts.Selector = ui.NewMenu(r.terminal)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = noClipboard{}
	}

	return tasks.NewEngine(opts).Run(ctx, tasks.Request{
		SourceURL: source,
		Platform:  platform,
		List:      cmd.Bool("list"),
		Format:    cmd.String("format"),
		Open:      cmd.Bool("open"),
	})
}

type noClipboard struct{}

func (noClipboard) Copy(string) error {
	return fmt.Errorf("%w: no clipboard configured", shared.ErrClipboardFailure)
}
