package models

import (
	"fmt"

	"github.com/samber/lo"
)

// ResolvedLink is one converted URL returned for a source link.
type ResolvedLink struct {
	ConvertedURL  string   `json:"url"`
	SourcePageURL string   `json:"pageUrl"`
	Platform      Platform `json:"platform"`
}

// FindLink returns the first link targeting p.
func FindLink(links []ResolvedLink, p Platform) (ResolvedLink, bool) {
	return lo.Find(links, func(l ResolvedLink) bool { return l.Platform == p })
}

// MarshalText encodes p as its song.link key.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid platform %d", int(p))
	}
	return []byte(p.Key()), nil
}

// UnmarshalText decodes a song.link key.
func (p *Platform) UnmarshalText(text []byte) error {
	found, ok := PlatformByKey(string(text))
	if !ok {
		return fmt.Errorf("unknown platform key %q", string(text))
	}
	*p = found
	return nil
}
