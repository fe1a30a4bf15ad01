package shared

import "fmt"

var (
	// Resolution errors
	ErrResolutionFailed     = fmt.Errorf("resolution failed")
	ErrNoLinksAvailable     = fmt.Errorf("no links available")
	ErrUnsupportedPlatform  = fmt.Errorf("unsupported platform")
	ErrPlatformNotAvailable = fmt.Errorf("platform not available")

	// Collaborator errors, reported as warnings
	ErrClipboardFailure = fmt.Errorf("failed to copy to clipboard")
	ErrBrowserFailure   = fmt.Errorf("failed to open browser")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
