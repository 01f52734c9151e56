package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL slug: accents are stripped, letters lowercased and every
// run of characters outside [a-z0-9] collapses into a single hyphen. The result
// never starts or ends with a hyphen.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingHyphen := false
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Clean trims surrounding whitespace and caps s at max runes.
func Clean(s string, max int) string {
	s = strings.TrimSpace(s)
	if max > 0 && len(s) > max {
		r := []rune(s)
		if len(r) > max {
			s = strings.TrimSpace(string(r[:max]))
		}
	}
	return s
}

// CleanPtr applies Clean to a patch field, leaving nil untouched.
func CleanPtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	v := Clean(*s, max)
	return &v
}
