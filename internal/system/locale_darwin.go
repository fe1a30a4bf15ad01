//go:build darwin

package system

import (
	"os/exec"
	"strings"
)

// platformLocale reads the macOS user locale (e.g. "en_US"), which GUI terminals do not always export as LANG.
func platformLocale() string {
	out, err := exec.Command("defaults", "read", "-g", "AppleLocale").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
