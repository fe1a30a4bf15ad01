package ui

import (
	"io"
	"strings"

	"github.com/desertthunder/listen/internal/models"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	menuHeader  = "Use UP/DOWN to choose a platform, press Enter to copy."
	pointer     = ">"
)

// Terminal is the raw-mode capability the [Menu] draws on.
type Terminal interface {
	io.Writer
	io.ByteReader
	IsInteractive() bool
	WithRawMode(fn func() error) (engaged bool, err error)
}

// Menu is the interactive selector.
type Menu struct {
	term    Terminal
	palette *Palette
}

// NewMenu creates a menu drawn on term.
func NewMenu(term Terminal) *Menu {
	return &Menu{term: term, palette: styles}
}

// Choose lets the user pick one of links with the arrow keys.
//
// ok is false when the menu could not run (no interactive terminal, raw mode unavailable) or ended without a
// selection; callers fall back to [Prompt]. err carries a read or write failure from inside the menu.
func (m *Menu) Choose(links []models.ResolvedLink) (link models.ResolvedLink, ok bool, err error) {
	if len(links) == 0 || !m.term.IsInteractive() {
		return models.ResolvedLink{}, false, nil
	}

	state := NewSelectionState(links)
	selected := false

	engaged, err := m.term.WithRawMode(func() error {
		if err := m.render(state); err != nil {
			return err
		}

		var decoder KeyDecoder
		for {
			key, err := ReadKey(m.term, &decoder)
			if err != nil {
				return err
			}

			moved, done := state.Handle(key)
			switch {
			case done:
				selected = true
				_, _ = io.WriteString(m.term, clearScreen)
				return nil
			case moved:
				if err := m.render(state); err != nil {
					return err
				}
			}
		}
	})

	if !engaged || !selected {
		return models.ResolvedLink{}, false, err
	}
	return state.Selected(), true, nil
}

func (m *Menu) render(state *SelectionState) error {
	_, err := io.WriteString(m.term, m.View(state))
	return err
}

// View draws the full screen for state.
func (m *Menu) View(state *SelectionState) string {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(m.palette.help.Render(menuHeader))
	b.WriteString("\n")

	for i, link := range state.Links() {
		highlighted := i == state.Cursor()
		if highlighted {
			b.WriteString(m.palette.pointer.Render(pointer))
		} else {
			b.WriteString(" ")
		}
		b.WriteString(" ")
		b.WriteString(m.palette.Platform(link.Platform, highlighted).Render(link.Platform.DisplayName()))
		b.WriteString("  ")
		b.WriteString(m.palette.URL(highlighted).Render(link.ConvertedURL))
		b.WriteString("\n")
	}

	return b.String()
}
