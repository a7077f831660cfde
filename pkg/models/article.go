// Package models defines the shared data types used across Newsly:
// normalized articles, sentiment labels, search options, and batch
// search outcomes.
package models

import "time"

// Sentiment is the three-way polarity label of a headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// ClassTag returns the presentation class paired with a sentiment label.
// The mapping is total and fixed; unknown labels map to the neutral tag.
func (s Sentiment) ClassTag() string {
	switch s {
	case SentimentPositive:
		return "sentiment-positive"
	case SentimentNegative:
		return "sentiment-negative"
	default:
		return "sentiment-neutral"
	}
}

// Valid reports whether s is one of the three fixed labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// NoDate is the sentinel stored in Article.Published when the feed
// supplied no timestamp.
const NoDate = "No date"

// Article is one normalized headline record. It is constructed once per
// feed entry per fetch cycle and never mutated afterwards; aggregation
// only reorders, filters, and truncates.
type Article struct {
	Title          string    `json:"title"`
	Link           string    `json:"link"`
	Published      string    `json:"published"`
	Keyword        string    `json:"keyword"`
	SentimentLabel Sentiment `json:"sentiment_label"`
	SentimentClass string    `json:"sentiment_class"`
	SourceTag      string    `json:"source_tag"`
	RelativeTime   string    `json:"relative_time"`

	// PublishedAt is the parsed instant behind Published. It is the
	// zero time when the feed timestamp was absent or unparseable,
	// and is what chronological sorting uses.
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// ChatArticle is the reduced projection returned by the chat search path.
type ChatArticle struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	RelativeTime string `json:"relative_time"`
}

// ChatProjection converts an article to its chat projection.
func ChatProjection(a Article) ChatArticle {
	return ChatArticle{Title: a.Title, Link: a.Link, RelativeTime: a.RelativeTime}
}

// RawEntry is a feed item before normalization: the minimal fields every
// syndication entry exposes.
type RawEntry struct {
	Title       string
	Link        string
	Published   string
	PublishedAt time.Time // zero when the feed gave no parseable timestamp
}

// KeywordWarning records a per-keyword ingestion failure. One keyword's
// failure never aborts the others.
type KeywordWarning struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
}

// SearchResult is the outcome of one batch search across keywords.
type SearchResult struct {
	Articles []Article        `json:"articles"`
	Warnings []KeywordWarning `json:"warnings,omitempty"`
	Keywords []string         `json:"keywords"` // keywords actually fetched, empties dropped
}
