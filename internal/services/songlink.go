// song.link [Resolver] implementation
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/listen/internal/models"
	"github.com/desertthunder/listen/internal/shared"
)

const (
	defaultSongLinkBaseURL = "https://api.song.link/v1-alpha.1"
	defaultSongLinkTimeout = 10 * time.Second
	// maxResponseSize bounds the body read; song.link responses are well under 1 MB.
	maxResponseSize = 4 << 20
)

// songLinkPlatformLink is one entry of linksByPlatform.
type songLinkPlatformLink struct {
	URL                 string `json:"url"`
	EntityUniqueID      string `json:"entityUniqueId,omitempty"`
	NativeAppURIMobile  string `json:"nativeAppUriMobile,omitempty"`
	NativeAppURIDesktop string `json:"nativeAppUriDesktop,omitempty"`
}

// SongLinkResponse is the subset of the /links response used for resolution.
type SongLinkResponse struct {
	EntityUniqueID  string                          `json:"entityUniqueId"`
	UserCountry     string                          `json:"userCountry"`
	PageURL         string                          `json:"pageUrl"`
	LinksByPlatform map[string]songLinkPlatformLink `json:"linksByPlatform"`
}

// SongLinkOpts configures a [SongLinkService].
type SongLinkOpts struct {
	BaseURL    string
	APIKey     string
	Country    string // explicit country hint, wins over Locale
	Locale     Locale
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *log.Logger
}

// SongLinkService implements [Resolver] against the song.link API.
type SongLinkService struct {
	baseURL    string
	apiKey     string
	country    string
	locale     Locale
	httpClient *http.Client
	logger     *log.Logger
}

var _ Resolver = (*SongLinkService)(nil)

// NewSongLinkService creates a new song.link client.
func NewSongLinkService(opts SongLinkOpts) *SongLinkService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultSongLinkBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultSongLinkTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(io.Discard)
	}

	return &SongLinkService{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		country:    opts.Country,
		locale:     opts.Locale,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
}

// ValidCountryCode reports whether code is exactly two ASCII letters A-Z.
func ValidCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// countryHint returns the userCountry parameter, or "" when no valid hint exists.
func (s *SongLinkService) countryHint() string {
	code := s.country
	if code == "" && s.locale != nil {
		code, _ = s.locale.CountryCode()
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if !ValidCountryCode(code) {
		s.logger.Debug("ignoring malformed country code", "country", code)
		return ""
	}
	return code
}

// requestURL builds the /links URL for sourceURL.
func (s *SongLinkService) requestURL(sourceURL string) string {
	params := url.Values{}
	params.Set("url", sourceURL)
	if country := s.countryHint(); country != "" {
		params.Set("userCountry", country)
	}
	if s.apiKey != "" {
		params.Set("key", s.apiKey)
	}
	return s.baseURL + "/links?" + params.Encode()
}

// Fetch performs the /links request and decodes the response.
func (s *SongLinkService) Fetch(ctx context.Context, sourceURL string) (*SongLinkResponse, error) {
	fullURL := s.requestURL(sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, http.NoBody)
	if err != nil {
		return nil, s.failed(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	s.logger.Debug("querying song.link", "url", sourceURL)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, s.failed(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, s.failed(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, s.failed(fmt.Errorf("song.link returned status %d", resp.StatusCode))
	}

	var songLinkResp SongLinkResponse
	if err := json.Unmarshal(body, &songLinkResp); err != nil {
		return nil, s.failed(fmt.Errorf("failed to decode response: %w", err))
	}

	return &songLinkResp, nil
}

// ResolveAll resolves sourceURL into one link per platform present in the response.
func (s *SongLinkService) ResolveAll(ctx context.Context, sourceURL string) ([]models.ResolvedLink, error) {
	resp, err := s.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	links := resp.Links()
	s.logger.Debug("resolved links", "count", len(links), "page", resp.PageURL)
	return links, nil
}

// Links maps the response onto [models.ResolvedLink] values in platform declaration order.
func (r *SongLinkResponse) Links() []models.ResolvedLink {
	links := []models.ResolvedLink{}
	for _, platform := range models.Platforms() {
		link, ok := r.LinksByPlatform[platform.Key()]
		if !ok || link.URL == "" {
			continue
		}
		links = append(links, models.ResolvedLink{
			ConvertedURL:  link.URL,
			SourcePageURL: r.PageURL,
			Platform:      platform,
		})
	}
	return links
}

// Close releases idle connections held by the HTTP client.
func (s *SongLinkService) Close() {
	s.httpClient.CloseIdleConnections()
}

func (s *SongLinkService) failed(err error) error {
	return fmt.Errorf("%w: failed to query song.link: %w", shared.ErrResolutionFailed, err)
}
