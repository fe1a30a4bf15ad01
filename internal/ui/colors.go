package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/listen/internal/models"
)

// platformColors is indexed by [models.Platform]; the colors are cosmetic only.
var platformColors = [...]lipgloss.Color{
	models.AppleMusic:   "5", // magenta
	models.Spotify:      "2", // green
	models.YouTubeMusic: "1", // red
	models.YouTube:      "1",
	models.AmazonMusic:  "3", // yellow
	models.Deezer:       "6", // cyan
	models.Tidal:        "4", // blue
}

// Fails to compile when the table and the platform list disagree in length.
var _ = [1]struct{}{}[len(platformColors)-models.PlatformCount]

var styles = NewPalette("15", "8")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	pointer lipgloss.Style
	help    lipgloss.Style
}

func NewPalette(pointer, help string) *Palette {
	return &Palette{
		pointer: NewBold(pointer),
		help:    NewEm(help),
	}
}

// Platform returns the style of p's display name, bold when highlighted.
func (p *Palette) Platform(platform models.Platform, highlighted bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if platform.Valid() {
		style = style.Foreground(platformColors[platform])
	}
	return style.Bold(highlighted)
}

// URL returns the style of a link URL, bold when highlighted.
func (p *Palette) URL(highlighted bool) lipgloss.Style {
	return lipgloss.NewStyle().Bold(highlighted)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
