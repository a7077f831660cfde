// Package pipeline turns raw feed entries into normalized articles and
// applies the presentation policy: filter, sort, truncate.
package pipeline

import "strings"

// FallbackSourceTag is returned when no outlet pattern matches. The
// upstream feed is Google News, hence GGL.
const FallbackSourceTag = "GGL"

// sourcePatterns is the fixed outlet priority list. The first match
// wins; a title mentioning several outlets gets the earliest-listed
// tag, never the most specific.
var sourcePatterns = []struct {
	pattern string
	tag     string
}{
	{"BBC", "BBC"},
	{"CNN", "CNN"},
	{"FOX", "FOX"},
	{"REUTERS", "RUT"},
	{"AP", "AP"},
}

// TagSource heuristically labels a headline's originating outlet from
// its title text. This is a display hint, not a verified identity.
func TagSource(title string) string {
	upper := strings.ToUpper(title)
	for _, p := range sourcePatterns {
		if strings.Contains(upper, p.pattern) {
			return p.tag
		}
	}
	return FallbackSourceTag
}
