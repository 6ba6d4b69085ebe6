package boundary

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
)

// ErrInvalidLocale is returned for a malformed locale identifier.
var ErrInvalidLocale = errors.New("boundary: invalid locale")

var defaultLocale atomic.Pointer[language.Tag]

func init() {
	tag := localeFromEnv()
	defaultLocale.Store(&tag)
}

// DefaultLocale returns the process-wide default locale.
func DefaultLocale() language.Tag {
	return *defaultLocale.Load()
}

// SetDefaultLocale replaces the process-wide default locale.
func SetDefaultLocale(tag language.Tag) {
	defaultLocale.Store(&tag)
}

// ResolveLocale parses a locale identifier. Both BCP 47 ("de-CH") and
// ICU/POSIX style ("de_CH", "de_CH.UTF-8") are accepted. An empty id resolves
// to fallback.
func ResolveLocale(id string, fallback language.Tag) (language.Tag, error) {
	if id == "" {
		return fallback, nil
	}
	tag, err := language.Parse(normalizeLocaleID(id))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, id, err)
	}
	return tag, nil
}

func normalizeLocaleID(id string) string {
	// Drop POSIX codeset and modifier suffixes.
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	return strings.ReplaceAll(id, "_", "-")
}

func localeFromEnv() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		id := os.Getenv(key)
		if id == "" {
			continue
		}
		if id == "C" || id == "POSIX" || strings.HasPrefix(id, "C.") {
			return language.Und
		}
		if tag, err := ResolveLocale(id, language.Und); err == nil {
			return tag
		}
	}
	return language.Und
}
