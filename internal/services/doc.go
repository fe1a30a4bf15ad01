// Package services resolves streaming links through song.link.
//
// # Request
//
// [SongLinkService.ResolveAll] issues a single GET to {base_url}/links with the source URL, an optional
// userCountry hint, and an optional API key. The country hint comes from an explicit override or from the
// [Locale] collaborator, and is sent only when it is exactly two letters A-Z ([ValidCountryCode]).
//
// # Response Mapping
//
// The linksByPlatform object is keyed by [models.Platform.Key]. Results follow platform declaration order,
// not response order; unknown keys and entries without a URL are dropped.
//
// # Error Handling
//
// Every transport, status, or decoding failure is wrapped in [shared.ErrResolutionFailed]. There is no retry.
package services
