package pipeline

import (
	"sort"

	"github.com/newslyhq/newsly/pkg/models"
)

// sentimentRank orders labels for the sentiment sort:
// Positive before Neutral before Negative.
func sentimentRank(s models.Sentiment) int {
	switch s {
	case models.SentimentPositive:
		return 0
	case models.SentimentNeutral:
		return 1
	default:
		return 2
	}
}

// Aggregate applies the presentation policy to a merged article list:
// drop articles outside the show_only set, sort per the configured
// order, and truncate to the cap. The input slice is never mutated;
// survivors keep their relative order on ties.
func Aggregate(articles []models.Article, opts models.SearchOptions) []models.Article {
	opts = opts.Normalized()

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if opts.Shows(a.SentimentLabel) {
			out = append(out, a)
		}
	}

	switch opts.SortBy {
	case models.SortByPublishedDate:
		// Chronological, newest first, using the parsed timestamp
		// rather than the raw date text, which mis-orders RFC-822
		// dates across month boundaries. Articles without a parsed
		// timestamp sort after all dated ones, keeping their
		// incoming order.
		sort.SliceStable(out, func(i, j int) bool {
			ti, tj := out[i].PublishedAt, out[j].PublishedAt
			if ti.IsZero() || tj.IsZero() {
				return !ti.IsZero() && tj.IsZero()
			}
			return ti.After(tj)
		})
	case models.SortBySentiment:
		sort.SliceStable(out, func(i, j int) bool {
			return sentimentRank(out[i].SentimentLabel) < sentimentRank(out[j].SentimentLabel)
		})
	case models.SortByRelevance:
		// Passthrough: no relevance signal exists upstream, so the
		// merged feed order is preserved as-is.
	}

	if len(out) > opts.MaxArticles {
		out = out[:opts.MaxArticles]
	}
	return out
}
