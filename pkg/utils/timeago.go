// Package utils provides small shared helpers: feed timestamp parsing,
// relative-age formatting, and text cleanup.
package utils

import (
	"fmt"
	"strings"
	"time"
)

// RecentlyFallback is returned when a timestamp is missing, unparseable,
// or dated in the future (clock skew between the feed and this host).
const RecentlyFallback = "Recently"

// feedTimeLayouts are the wire formats seen across syndication feeds.
// Google News uses RFC 1123 ("Mon, 02 Jan 2006 15:04:05 GMT"); Atom
// feeds use RFC 3339. Tried in order.
var feedTimeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFeedTime parses a raw feed timestamp string. Returns the zero
// time and false when the string matches none of the known layouts.
func ParseFeedTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range feedTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TimeAgo converts a raw feed timestamp into a relative human string,
// evaluated against the current instant. It never fails: anything that
// cannot be parsed becomes RecentlyFallback.
func TimeAgo(raw string) string {
	return TimeAgoAt(raw, time.Now())
}

// TimeAgoAt is TimeAgo with an explicit "now" for deterministic tests.
//
// Buckets (floor division):
//   - at least one day elapsed:  "{days} days ago"
//   - at least one hour:         "{hours} hours ago"
//   - under one hour:            "{minutes} minutes ago" (may be 0)
func TimeAgoAt(raw string, now time.Time) string {
	pub, ok := ParseFeedTime(raw)
	if !ok {
		return RecentlyFallback
	}
	return relativeAge(now.Sub(pub))
}

// RelativeAge formats an already-parsed instant against now.
func RelativeAge(pub, now time.Time) string {
	if pub.IsZero() {
		return RecentlyFallback
	}
	return relativeAge(now.Sub(pub))
}

func relativeAge(diff time.Duration) string {
	if diff < 0 {
		// Future-dated entry; treat like an unparseable timestamp.
		return RecentlyFallback
	}

	switch {
	case diff >= 24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours())/24)
	case diff >= time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	}
}
