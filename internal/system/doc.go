// Package system adapts OS services used by the CLI: the clipboard and the locale's country.
//
// Implementations are selected at build time; callers only see [Clipboard] and [Locale].
package system
