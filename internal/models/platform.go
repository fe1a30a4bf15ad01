package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/listen/internal/shared"
	"github.com/samber/lo"
)

// Platform identifies a streaming platform supported by song.link.
type Platform int

// Declaration order is the order of every result list and of the help text.
const (
	AppleMusic Platform = iota
	Spotify
	YouTubeMusic
	YouTube
	AmazonMusic
	Deezer
	Tidal

	// PlatformCount is the number of supported platforms.
	PlatformCount = int(iota)
)

type platformInfo struct {
	key         string
	ident       string
	displayName string
}

var platformInfos = [...]platformInfo{
	AppleMusic:   {key: "appleMusic", ident: "APPLE_MUSIC", displayName: "Apple Music"},
	Spotify:      {key: "spotify", ident: "SPOTIFY", displayName: "Spotify"},
	YouTubeMusic: {key: "youtubeMusic", ident: "YOUTUBE_MUSIC", displayName: "YouTube Music"},
	YouTube:      {key: "youtube", ident: "YOUTUBE", displayName: "YouTube"},
	AmazonMusic:  {key: "amazonMusic", ident: "AMAZON_MUSIC", displayName: "Amazon Music"},
	Deezer:       {key: "deezer", ident: "DEEZER", displayName: "Deezer"},
	Tidal:        {key: "tidal", ident: "TIDAL", displayName: "Tidal"},
}

// Fails to compile when a platform is added without metadata.
var _ = [1]struct{}{}[len(platformInfos)-PlatformCount]

// Platforms returns every supported platform in declaration order.
func Platforms() []Platform {
	return lo.Times(PlatformCount, func(i int) Platform { return Platform(i) })
}

// Valid reports whether p is one of the declared platforms.
func (p Platform) Valid() bool {
	return p >= 0 && int(p) < PlatformCount
}

// Key is the token song.link uses for p in linksByPlatform.
func (p Platform) Key() string { return p.info().key }

// Ident is the enumeration name of p, e.g. APPLE_MUSIC.
func (p Platform) Ident() string { return p.info().ident }

// DisplayName is the human-readable label of p.
func (p Platform) DisplayName() string { return p.info().displayName }

// CLIToken is the lowercase, hyphen-separated form of the display name accepted by --platform.
func (p Platform) CLIToken() string {
	return strings.ReplaceAll(strings.ToLower(p.DisplayName()), " ", "-")
}

// String returns the CLI token.
func (p Platform) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return p.CLIToken()
}

func (p Platform) info() platformInfo {
	if !p.Valid() {
		return platformInfo{}
	}
	return platformInfos[p]
}

// matches applies the lookup rule for normalized (trimmed, lowercased) input: a key, ident, display name or CLI token
// equals the input, either verbatim or once spaces and hyphens are removed from both sides.
func (p Platform) matches(normalized string) bool {
	bare := stripSeparators(normalized)
	candidates := []string{p.Key(), p.Ident(), p.DisplayName(), p.CLIToken()}

	return lo.SomeBy(candidates, func(c string) bool {
		c = strings.ToLower(c)
		return c == normalized || stripSeparators(c) == bare
	})
}

func stripSeparators(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

// ParsePlatform resolves free-form input to a [Platform].
//
// The first platform in declaration order that matches wins. Unknown input returns an error wrapping
// [shared.ErrUnsupportedPlatform] that lists every CLI token.
func ParsePlatform(input string) (Platform, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	if p, ok := lo.Find(Platforms(), func(p Platform) bool { return p.matches(normalized) }); ok {
		return p, nil
	}

	return 0, fmt.Errorf("%w '%s'. Supported platforms: %s", shared.ErrUnsupportedPlatform, input, SupportedOptions())
}

// PlatformByKey looks up a platform by its exact song.link key.
func PlatformByKey(key string) (Platform, bool) {
	return lo.Find(Platforms(), func(p Platform) bool { return p.Key() == key })
}

// CLITokens returns the CLI token of every platform in declaration order.
func CLITokens() []string {
	return lo.Map(Platforms(), func(p Platform, _ int) string { return p.CLIToken() })
}

// SupportedOptions joins the CLI tokens for help and error text.
func SupportedOptions() string {
	return strings.Join(CLITokens(), ", ")
}
