// package services defines the link resolution service backed by the song.link (Odesli) API
package services

import (
	"context"

	"github.com/desertthunder/listen/internal/models"
)

// Resolver converts one streaming URL into equivalent URLs on the supported platforms.
type Resolver interface {
	// ResolveAll returns one link per platform present in the response, in [models.Platforms] order.
	ResolveAll(ctx context.Context, sourceURL string) ([]models.ResolvedLink, error)
}

// Locale reports the user's country, e.g. from the OS locale settings.
type Locale interface {
	CountryCode() (string, bool)
}
