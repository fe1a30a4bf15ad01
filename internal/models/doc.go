// Package models defines the domain types shared by the resolver, the selectors, and the CLI.
//
//   - [Platform] : the closed set of supported streaming platforms, declared in a fixed order that every result list follows
//   - [ResolvedLink] : one converted URL for one target platform
//
// [ParsePlatform] maps free-form user input (keys, display names, CLI tokens, with any casing or separators) onto a [Platform].
package models
