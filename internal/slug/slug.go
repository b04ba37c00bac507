// Package slug derives directory-safe names from human titles and
// validates the names a course is allowed to use.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// maxLen caps generated slugs so deeply nested paths stay usable.
const maxLen = 64

// symbolWords spells out symbols that carry meaning in titles.
var symbolWords = map[rune]string{
	'@': "-at-",
	'&': "-and-",
	'#': "-hash-",
	'+': "-plus-",
}

var validSlugRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// Generate derives a slug from a lecture title: Latin letters and
// digits pass through, Cyrillic is transliterated, a few symbols become
// words, and everything else collapses into single hyphens. Titles that
// yield nothing fall back to a timestamped name so generation never
// fails.
func Generate(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			if w, ok := symbolWords[r]; ok {
				b.WriteString(w)
				continue
			}
			if t, ok := cyrillic[unicode.ToLower(r)]; ok {
				b.WriteString(t)
				continue
			}
			b.WriteByte('-')
		}
	}

	s := strings.ToLower(collapse(b.String()))
	if s == "" {
		return fmt.Sprintf("lecture-%d", time.Now().UnixMilli())
	}
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	return s
}

// IsValid reports whether name has the shape a generated slug would
// have: alphanumeric at both ends, hyphens only in between.
func IsValid(name string) bool {
	return validSlugRe.MatchString(name)
}

// collapse squeezes runs of hyphens to one and strips them from both
// ends.
func collapse(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		if r == '-' {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
