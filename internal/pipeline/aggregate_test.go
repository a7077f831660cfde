package pipeline

import (
	"testing"
	"time"

	"github.com/newslyhq/newsly/pkg/models"
)

func mkArticle(title string, label models.Sentiment, published time.Time) models.Article {
	return models.Article{
		Title:          title,
		SentimentLabel: label,
		SentimentClass: label.ClassTag(),
		PublishedAt:    published,
	}
}

func TestAggregateFilterShowOnly(t *testing.T) {
	now := time.Now()
	input := []models.Article{
		mkArticle("p1", models.SentimentPositive, now),
		mkArticle("n1", models.SentimentNegative, now),
		mkArticle("p2", models.SentimentPositive, now),
		mkArticle("u1", models.SentimentNeutral, now),
	}

	got := Aggregate(input, models.SearchOptions{
		SortBy:   models.SortByRelevance,
		ShowOnly: []models.Sentiment{models.SentimentPositive},
	})

	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}
	// Survivors keep their relative order.
	if got[0].Title != "p1" || got[1].Title != "p2" {
		t.Errorf("order: got %q, %q", got[0].Title, got[1].Title)
	}
}

func TestAggregateTruncates(t *testing.T) {
	now := time.Now()
	var input []models.Article
	for i := 0; i < 30; i++ {
		input = append(input, mkArticle("t", models.SentimentNeutral, now))
	}

	got := Aggregate(input, models.SearchOptions{MaxArticles: 5, SortBy: models.SortByRelevance})
	if len(got) != 5 {
		t.Errorf("got %d articles, want 5", len(got))
	}

	// Default cap is 10.
	got = Aggregate(input, models.SearchOptions{SortBy: models.SortByRelevance})
	if len(got) != 10 {
		t.Errorf("default cap: got %d articles, want 10", len(got))
	}
}

func TestAggregateSortByPublishedDate(t *testing.T) {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	input := []models.Article{
		mkArticle("old", models.SentimentNeutral, base.Add(-48*time.Hour)),
		mkArticle("new", models.SentimentNeutral, base),
		mkArticle("undated", models.SentimentNeutral, time.Time{}),
		mkArticle("mid", models.SentimentNeutral, base.Add(-24*time.Hour)),
	}

	got := Aggregate(input, models.SearchOptions{SortBy: models.SortByPublishedDate})
	want := []string{"new", "mid", "old", "undated"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestAggregateSortBySentiment(t *testing.T) {
	now := time.Now()
	input := []models.Article{
		mkArticle("n1", models.SentimentNegative, now),
		mkArticle("u1", models.SentimentNeutral, now),
		mkArticle("p1", models.SentimentPositive, now),
		mkArticle("p2", models.SentimentPositive, now),
		mkArticle("u2", models.SentimentNeutral, now),
	}

	got := Aggregate(input, models.SearchOptions{SortBy: models.SortBySentiment})
	want := []string{"p1", "p2", "u1", "u2", "n1"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestAggregateRelevancePassthrough(t *testing.T) {
	now := time.Now()
	input := []models.Article{
		mkArticle("c", models.SentimentNeutral, now.Add(-time.Hour)),
		mkArticle("a", models.SentimentPositive, now),
		mkArticle("b", models.SentimentNegative, now.Add(-2*time.Hour)),
	}

	got := Aggregate(input, models.SearchOptions{SortBy: models.SortByRelevance})
	for i, title := range []string{"c", "a", "b"} {
		if got[i].Title != title {
			t.Errorf("relevance must preserve feed order: position %d got %q", i, got[i].Title)
		}
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	input := []models.Article{
		mkArticle("first", models.SentimentNegative, base.Add(-time.Hour)),
		mkArticle("second", models.SentimentPositive, base),
	}

	_ = Aggregate(input, models.SearchOptions{SortBy: models.SortBySentiment})

	if input[0].Title != "first" || input[1].Title != "second" {
		t.Error("input slice was reordered")
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	got := Aggregate(nil, models.DefaultSearchOptions())
	if len(got) != 0 {
		t.Errorf("got %d articles, want 0", len(got))
	}
}
