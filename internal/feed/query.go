package feed

import (
	"net/url"
	"strings"
)

// Locale carries the fixed locale parameters appended to every feed
// search request.
type Locale struct {
	Language string // hl
	Country  string // gl
	Edition  string // ceid
}

// NormalizeKeyword trims the surrounding whitespace of a raw keyword.
// An empty result means the keyword must be dropped before it reaches
// the network layer; callers filter empties, never this package.
func NormalizeKeyword(keyword string) string {
	return strings.TrimSpace(keyword)
}

// BuildSearchURL produces the feed-search target for one keyword by
// percent-encoding the trimmed keyword into the endpoint's query
// template. Pure string transform: no validation, no errors.
func BuildSearchURL(endpoint string, loc Locale, keyword string) string {
	q := url.Values{}
	q.Set("q", NormalizeKeyword(keyword))
	if loc.Language != "" {
		q.Set("hl", loc.Language)
	}
	if loc.Country != "" {
		q.Set("gl", loc.Country)
	}
	if loc.Edition != "" {
		q.Set("ceid", loc.Edition)
	}
	return endpoint + "?" + q.Encode()
}
