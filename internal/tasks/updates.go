package tasks

import (
	"fmt"

	"github.com/desertthunder/listen/internal/models"
)

// ProgressUpdate represents a progress event during [Engine.Run].
//
// Used to send updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	Resolve Phase = iota
	List
	Select
	Copy
	Open
)

func (p Phase) String() string {
	switch p {
	case Resolve:
		return "resolve"
	case List:
		return "list"
	case Select:
		return "select"
	case Copy:
		return "copy"
	case Open:
		return "open"
	default:
		return ""
	}
}

func resolveUpdate(sourceURL string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Resolve,
		Message: fmt.Sprintf("Resolving %s...", sourceURL),
	}
}

func resolvedUpdate(links []models.ResolvedLink) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Resolve,
		Message: fmt.Sprintf("Found %d platform links", len(links)),
		Data:    links,
	}
}

func listUpdate(format string) ProgressUpdate {
	if format == "" {
		format = "text"
	}
	return ProgressUpdate{
		Phase:   List,
		Message: fmt.Sprintf("Listing links as %s", format),
	}
}

func selectUpdate(method string, link models.ResolvedLink) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Select,
		Message: fmt.Sprintf("Selected %s (%s)", link.Platform.DisplayName(), method),
		Data:    link,
	}
}

func copyUpdate(link models.ResolvedLink) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Copy,
		Message: fmt.Sprintf("Copying %s URL...", link.Platform.DisplayName()),
	}
}

func openUpdate(link models.ResolvedLink) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Open,
		Message: fmt.Sprintf("Opening %s in browser...", link.ConvertedURL),
	}
}
