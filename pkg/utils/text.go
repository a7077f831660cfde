package utils

import (
	"strings"
	"unicode"
)

// CleanText strips punctuation and special characters from text, leaving
// only letters, digits, and single spaces, lowercased. Used before word
// frequency analysis so "News," and "news" count as the same token.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// StripGlyphs removes every rune that is not a letter or space, then
// trims. Decorative glyphs prepended to sentiment labels upstream must
// not produce distinct buckets when counting.
func StripGlyphs(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
