package quiz

import (
	"html"
	"strings"
)

// Normalize canonicalizes free text for answer comparison: HTML entities are
// decoded, ASCII letters are lowercased, and every rune outside ASCII
// letters/digits and the Hebrew alphabet is dropped. Whitespace, punctuation
// and any other scripts vanish entirely, so "A, b-c" and "Abc" normalize to
// the same token. Total function: any input maps to a string, empty in maps
// to empty out.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(html.UnescapeString(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'א' && r <= 'ת':
			b.WriteRune(r)
		}
	}
	return b.String()
}
