package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/listen/internal/formatter"
	"github.com/desertthunder/listen/internal/models"
	"github.com/desertthunder/listen/internal/services"
	"github.com/desertthunder/listen/internal/shared"
)

// Selector is the interactive chooser. ok is false when it could not run or ended without a choice.
type Selector interface {
	Choose(links []models.ResolvedLink) (link models.ResolvedLink, ok bool, err error)
}

// Fallback is the line-oriented chooser used when the [Selector] does not produce a choice.
type Fallback interface {
	Choose(links []models.ResolvedLink) (models.ResolvedLink, error)
}

// Clipboard receives the chosen URL.
type Clipboard interface {
	Copy(text string) error
}

// Request describes one invocation.
type Request struct {
	SourceURL string
	Platform  *models.Platform // nil lets the user choose
	List      bool             // print every link instead of choosing one
	Format    string           // output format for List
	Open      bool             // open the chosen link in the browser
}

// EngineOpts configures an [Engine]. Resolver, Fallback and Clipboard are required.
type EngineOpts struct {
	Resolver    services.Resolver
	Selector    Selector
	Fallback    Fallback
	Clipboard   Clipboard
	Interactive bool                   // allow the Selector
	Output      io.Writer              // defaults to os.Stdout
	Logger      *log.Logger            // defaults to shared.NewLogger(os.Stderr)
	Open        func(url string) error // defaults to shared.OpenBrowser
	Progress    chan<- ProgressUpdate  // optional
}

// Engine runs the resolve, select and copy flow.
type Engine struct {
	resolver    services.Resolver
	selector    Selector
	fallback    Fallback
	clipboard   Clipboard
	interactive bool
	out         io.Writer
	logger      *log.Logger
	open        func(url string) error
	progress    chan<- ProgressUpdate
}

// NewEngine creates a new [Engine] with the provided collaborators.
func NewEngine(opts EngineOpts) *Engine {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(os.Stderr)
	}
	if opts.Open == nil {
		opts.Open = shared.OpenBrowser
	}

	return &Engine{
		resolver:    opts.Resolver,
		selector:    opts.Selector,
		fallback:    opts.Fallback,
		clipboard:   opts.Clipboard,
		interactive: opts.Interactive && opts.Selector != nil,
		out:         opts.Output,
		logger:      opts.Logger,
		open:        opts.Open,
		progress:    opts.Progress,
	}
}

// sendProgress logs update and sends it through the channel without blocking.
func (e *Engine) sendProgress(update ProgressUpdate) {
	e.logger.Debug(update.Message, "phase", update.Phase)
	if e.progress == nil {
		return
	}
	select {
	case e.progress <- update:
	default:
	}
}

// Run resolves req.SourceURL, chooses one link, copies it to the clipboard and prints it.
func (e *Engine) Run(ctx context.Context, req Request) error {
	e.sendProgress(resolveUpdate(req.SourceURL))

	links, err := e.resolver.ResolveAll(ctx, req.SourceURL)
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return fmt.Errorf("%w: song link does not provide streaming URLs for the provided source", shared.ErrNoLinksAvailable)
	}
	e.sendProgress(resolvedUpdate(links))

	if req.List {
		e.sendProgress(listUpdate(req.Format))
		return formatter.Write(e.out, links, req.Format)
	}

	link, err := e.choose(links, req.Platform)
	if err != nil {
		return err
	}

	e.sendProgress(copyUpdate(link))
	if err := e.clipboard.Copy(link.ConvertedURL); err != nil {
		if !errors.Is(err, shared.ErrClipboardFailure) {
			err = fmt.Errorf("%w: %w", shared.ErrClipboardFailure, err)
		}
		e.logger.Warn("clipboard unavailable", "err", err)
	} else {
		fmt.Fprintf(e.out, "%s URL copied to clipboard.\n", link.Platform.DisplayName())
	}
	fmt.Fprintln(e.out, link.ConvertedURL)

	if req.Open {
		e.sendProgress(openUpdate(link))
		if err := e.open(link.ConvertedURL); err != nil {
			e.logger.Warn("could not open browser", "err", err)
		}
	}

	return nil
}

func (e *Engine) choose(links []models.ResolvedLink, platform *models.Platform) (models.ResolvedLink, error) {
	if platform != nil {
		link, ok := models.FindLink(links, *platform)
		if !ok {
			return models.ResolvedLink{}, fmt.Errorf("%w: song link does not provide a %s URL",
				shared.ErrPlatformNotAvailable, platform.DisplayName())
		}
		e.sendProgress(selectUpdate("requested", link))
		return link, nil
	}

	if len(links) == 1 {
		e.sendProgress(selectUpdate("only link", links[0]))
		return links[0], nil
	}

	if e.interactive {
		link, ok, err := e.selector.Choose(links)
		switch {
		case err != nil:
			e.logger.Warn("interactive selection failed, falling back to prompt", "err", err)
		case ok:
			e.sendProgress(selectUpdate("menu", link))
			return link, nil
		default:
			e.logger.Debug("interactive selection unavailable, falling back to prompt")
		}
	}

	link, err := e.fallback.Choose(links)
	if err != nil {
		return models.ResolvedLink{}, err
	}
	e.sendProgress(selectUpdate("prompt", link))
	return link, nil
}
