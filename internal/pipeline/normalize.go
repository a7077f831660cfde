package pipeline

import (
	"strings"
	"time"

	"github.com/newslyhq/newsly/internal/analysis/sentiment"
	"github.com/newslyhq/newsly/pkg/models"
	"github.com/newslyhq/newsly/pkg/utils"
)

// Normalize builds one immutable Article from a raw feed entry and the
// keyword that produced it. No entry is ever dropped here: a missing
// published timestamp becomes the "No date" sentinel, an unparseable
// one formats as "Recently".
func Normalize(entry models.RawEntry, keyword string, now time.Time) models.Article {
	label, class := sentiment.Classify(entry.Title)

	published := strings.TrimSpace(entry.Published)
	if published == "" {
		published = models.NoDate
	}

	var relative string
	if !entry.PublishedAt.IsZero() {
		relative = utils.RelativeAge(entry.PublishedAt, now)
	} else {
		relative = utils.TimeAgoAt(entry.Published, now)
	}

	return models.Article{
		Title:          entry.Title,
		Link:           entry.Link,
		Published:      published,
		Keyword:        keyword,
		SentimentLabel: label,
		SentimentClass: class,
		SourceTag:      TagSource(entry.Title),
		RelativeTime:   relative,
		PublishedAt:    entry.PublishedAt,
	}
}

// NormalizeAll maps a keyword's raw entries to articles against a
// single reference instant.
func NormalizeAll(entries []models.RawEntry, keyword string, now time.Time) []models.Article {
	articles := make([]models.Article, 0, len(entries))
	for _, e := range entries {
		articles = append(articles, Normalize(e, keyword, now))
	}
	return articles
}
