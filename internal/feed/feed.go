// Package feed fetches and parses the upstream news-search feed,
// producing raw entries for one keyword per request.
package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/newslyhq/newsly/internal/config"
	"github.com/newslyhq/newsly/internal/infra"
	"github.com/newslyhq/newsly/pkg/models"
	"github.com/newslyhq/newsly/pkg/utils"
)

// Ingestor fetches the search feed for individual keywords. Failures
// are scoped per keyword: a fetch or parse error surfaces as an error
// for that keyword only, and an empty feed is a valid empty result.
type Ingestor struct {
	endpoint string
	locale   Locale
	parser   *gofeed.Parser
	cache    *infra.FeedCache
	limiter  *infra.RateLimiter
}

// NewIngestor creates an ingestor from feed configuration.
func NewIngestor(cfg config.FeedConfig) *Ingestor {
	parser := gofeed.NewParser()
	parser.Client = infra.NewHTTPClient(time.Duration(cfg.TimeoutSec) * time.Second)
	parser.UserAgent = infra.DefaultUserAgent

	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}

	return &Ingestor{
		endpoint: cfg.Endpoint,
		locale: Locale{
			Language: cfg.Language,
			Country:  cfg.Country,
			Edition:  cfg.Edition,
		},
		parser:  parser,
		cache:   infra.NewFeedCache(time.Duration(cfg.CacheTTLSec) * time.Second),
		limiter: infra.NewRateLimiter(rps, time.Second),
	}
}

// SearchURL returns the request target built for a keyword.
func (in *Ingestor) SearchURL(keyword string) string {
	return BuildSearchURL(in.endpoint, in.locale, keyword)
}

// Fetch retrieves and parses the search feed for one keyword. The
// keyword must already be trimmed and non-empty. Zero entries is not
// an error.
func (in *Ingestor) Fetch(ctx context.Context, keyword string) ([]models.RawEntry, error) {
	if cached, ok := in.cache.Get(keyword); ok {
		return cached, nil
	}

	if err := in.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	parsed, err := in.parser.ParseURLWithContext(in.SearchURL(keyword), ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed for %q: %w", keyword, err)
	}

	entries := make([]models.RawEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		e := models.RawEntry{
			Title:     cleanHTML(item.Title),
			Link:      item.Link,
			Published: item.Published,
		}
		if item.PublishedParsed != nil {
			e.PublishedAt = *item.PublishedParsed
		} else if t, ok := utils.ParseFeedTime(item.Published); ok {
			e.PublishedAt = t
		}
		entries = append(entries, e)
	}

	in.cache.Set(keyword, entries)
	return entries, nil
}

// cleanHTML strips HTML tags and entities from a string using goquery.
// Feed titles occasionally carry markup or encoded entities.
func cleanHTML(s string) string {
	if s == "" || !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
