package models

// SortBy selects the aggregation ordering.
type SortBy string

const (
	// SortByPublishedDate orders newest first using the parsed timestamp.
	SortByPublishedDate SortBy = "published_date"
	// SortBySentiment orders Positive, then Neutral, then Negative.
	SortBySentiment SortBy = "sentiment"
	// SortByRelevance preserves merged feed order. No relevance signal
	// exists upstream, so this is an explicit passthrough.
	SortByRelevance SortBy = "relevance"
)

// Result cap bounds exposed to callers.
const (
	MinArticles     = 5
	MaxArticlesCap  = 20
	DefaultArticles = 10
)

// SearchOptions is the presentation configuration consumed by the
// aggregation pipeline.
type SearchOptions struct {
	MaxArticles int         `json:"max_articles"`
	SortBy      SortBy      `json:"sort_by"`
	ShowOnly    []Sentiment `json:"show_only,omitempty"` // empty means all three
}

// DefaultSearchOptions returns the default presentation policy.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxArticles: DefaultArticles,
		SortBy:      SortByPublishedDate,
	}
}

// Normalized returns a copy with the cap clamped to [MinArticles,
// MaxArticlesCap] and an unrecognized sort falling back to the default.
func (o SearchOptions) Normalized() SearchOptions {
	out := o
	if out.MaxArticles == 0 {
		out.MaxArticles = DefaultArticles
	}
	if out.MaxArticles < MinArticles {
		out.MaxArticles = MinArticles
	}
	if out.MaxArticles > MaxArticlesCap {
		out.MaxArticles = MaxArticlesCap
	}
	switch out.SortBy {
	case SortByPublishedDate, SortBySentiment, SortByRelevance:
	default:
		out.SortBy = SortByPublishedDate
	}
	return out
}

// Shows reports whether articles with the given label pass the
// show_only filter.
func (o SearchOptions) Shows(s Sentiment) bool {
	if len(o.ShowOnly) == 0 {
		return true
	}
	for _, keep := range o.ShowOnly {
		if keep == s {
			return true
		}
	}
	return false
}
