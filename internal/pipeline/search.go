package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/newslyhq/newsly/internal/config"
	"github.com/newslyhq/newsly/internal/feed"
	"github.com/newslyhq/newsly/pkg/models"
)

// MaxKeywords is the most search terms one batch accepts; extras are
// ignored, matching the three-keyword search surface.
const MaxKeywords = 3

// Service runs the full ingestion-and-ranking pipeline:
// fetch → normalize → filter → sort → truncate.
type Service struct {
	ing *feed.Ingestor
	log *slog.Logger
}

// NewService creates a search service over the configured feed.
func NewService(cfg config.FeedConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ing: feed.NewIngestor(cfg),
		log: logger,
	}
}

// Ingestor exposes the underlying feed ingestor.
func (s *Service) Ingestor() *feed.Ingestor { return s.ing }

// Search fetches every requested keyword, normalizes the entries, and
// aggregates the merged set. Empty keywords are dropped before any
// fetch. Each keyword's fetch failure becomes a warning in the result
// and never aborts the others; the returned error is reserved for
// context cancellation.
func (s *Service) Search(ctx context.Context, keywords []string, opts models.SearchOptions) (*models.SearchResult, error) {
	kws := make([]string, 0, MaxKeywords)
	for _, k := range keywords {
		if trimmed := feed.NormalizeKeyword(k); trimmed != "" {
			kws = append(kws, trimmed)
		}
		if len(kws) == MaxKeywords {
			break
		}
	}

	result := &models.SearchResult{Keywords: kws}
	if len(kws) == 0 {
		result.Articles = []models.Article{}
		return result, nil
	}

	// Fetches are independent and failure-isolated, so they fan out
	// concurrently; indexed slots keep the merge order deterministic.
	now := time.Now()
	perKeyword := make([][]models.Article, len(kws))
	warnings := make([]*models.KeywordWarning, len(kws))

	g, gctx := errgroup.WithContext(ctx)
	for i, kw := range kws {
		i, kw := i, kw
		g.Go(func() error {
			entries, err := s.ing.Fetch(gctx, kw)
			if err != nil {
				s.log.Warn("keyword fetch failed", "keyword", kw, "error", err)
				warnings[i] = &models.KeywordWarning{
					Keyword: kw,
					Message: "could not fetch news for this keyword",
				}
				return nil // non-fatal: other keywords continue
			}
			perKeyword[i] = NormalizeAll(entries, kw, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.Article
	for _, articles := range perKeyword {
		merged = append(merged, articles...)
	}
	for _, w := range warnings {
		if w != nil {
			result.Warnings = append(result.Warnings, *w)
		}
	}

	result.Articles = Aggregate(merged, opts)
	return result, nil
}

// Lookup fetches a single keyword and returns up to limit normalized
// articles in feed order, used by the chat search path.
func (s *Service) Lookup(ctx context.Context, keyword string, limit int) ([]models.Article, error) {
	kw := feed.NormalizeKeyword(keyword)
	if kw == "" {
		return nil, nil
	}

	entries, err := s.ing.Fetch(ctx, kw)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return NormalizeAll(entries, kw, time.Now()), nil
}
