package system

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeEnv is the POSIX precedence for message locale variables.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Locale reports the country of the current user's locale.
type Locale struct {
	getenv   func(string) string
	platform func() string
}

// NewLocale returns a [Locale] reading the OS locale settings.
func NewLocale() *Locale {
	return &Locale{getenv: os.Getenv, platform: platformLocale}
}

// CountryCode returns the uppercase region of the locale, e.g. "US" for en_US.UTF-8.
func (l *Locale) CountryCode() (string, bool) {
	if l.platform != nil {
		if code, ok := RegionOf(l.platform()); ok {
			return code, true
		}
	}

	for _, name := range localeEnv {
		value := l.getenv(name)
		if value == "" {
			continue
		}
		// The first set variable decides, even when it carries no region.
		return RegionOf(value)
	}
	return "", false
}

// RegionOf extracts the region subtag of a POSIX or BCP 47 locale name.
//
// Codeset and modifier suffixes are ignored ("de_DE.UTF-8@euro" is "DE"). "C" and "POSIX" have no region.
func RegionOf(locale string) (string, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", false
	}

	region, confidence := tag.Region()
	if confidence != language.Exact {
		return "", false
	}
	return strings.ToUpper(region.String()), true
}
