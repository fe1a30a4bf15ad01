// Package tasks orchestrates a single listen invocation.
//
// # Flow
//
// [Engine.Run] resolves the source URL through a [services.Resolver] and then either:
//
//  1. writes every link with the formatter when listing was requested
//  2. picks the requested platform, failing with [shared.ErrPlatformNotAvailable] when it is absent
//  3. picks the only link without asking
//  4. asks the user, first with the interactive [Selector] and then with the line-oriented [Fallback]
//
// The chosen URL is copied to the clipboard and printed. Clipboard and browser failures are logged
// as warnings and never fail the run.
//
// # Progress Reporting
//
// Each phase emits a [ProgressUpdate] to the debug log and, when configured, to a channel.
// Updates use select with default to prevent blocking.
package tasks
