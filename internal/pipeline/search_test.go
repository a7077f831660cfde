package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/newslyhq/newsly/internal/config"
	"github.com/newslyhq/newsly/pkg/models"
)

func feedXML(n int) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>results</title>`
	for i := 0; i < n; i++ {
		body += fmt.Sprintf(`<item><title>headline %d</title><link>https://example.com/%d</link><pubDate>Mon, 01 Sep 2025 0%d:00:00 GMT</pubDate></item>`, i, i, i)
	}
	return body + `</channel></rss>`
}

func newTestService(endpoint string) *Service {
	return NewService(config.FeedConfig{
		Endpoint:       endpoint,
		TimeoutSec:     5,
		RequestsPerSec: 100,
	}, nil)
}

func TestSearchDropsEmptyKeywords(t *testing.T) {
	var mu sync.Mutex
	var fetched []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		fetched = append(fetched, r.URL.Query().Get("q"))
		mu.Unlock()
		w.Write([]byte(feedXML(2)))
	}))
	defer ts.Close()

	svc := newTestService(ts.URL)
	res, err := svc.Search(context.Background(), []string{"AI", "crypto", ""}, models.DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(res.Keywords) != 2 {
		t.Fatalf("keywords: got %v, want [AI crypto]", res.Keywords)
	}
	if len(fetched) != 2 {
		t.Errorf("exactly two fetches expected, got %d (%v)", len(fetched), fetched)
	}
	for _, q := range fetched {
		if q == "" {
			t.Error("empty keyword reached the network layer")
		}
	}
}

func TestSearchPartialFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "crypto" {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.Write([]byte(feedXML(5)))
	}))
	defer ts.Close()

	svc := newTestService(ts.URL)
	res, err := svc.Search(context.Background(), []string{"AI", "crypto"}, models.DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(res.Articles) != 5 {
		t.Errorf("articles: got %d, want 5", len(res.Articles))
	}
	for _, a := range res.Articles {
		if a.Keyword != "AI" {
			t.Errorf("article keyword: got %q, want AI", a.Keyword)
		}
	}

	if len(res.Warnings) != 1 {
		t.Fatalf("warnings: got %d, want 1", len(res.Warnings))
	}
	if res.Warnings[0].Keyword != "crypto" {
		t.Errorf("warning keyword: got %q, want crypto", res.Warnings[0].Keyword)
	}
}

func TestSearchMergesAndCaps(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML(8)))
	}))
	defer ts.Close()

	svc := newTestService(ts.URL)
	res, err := svc.Search(context.Background(), []string{"a", "b"}, models.DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// 16 merged articles, default cap 10.
	if len(res.Articles) != 10 {
		t.Errorf("articles: got %d, want 10", len(res.Articles))
	}

	for _, a := range res.Articles {
		if a.Keyword != "a" && a.Keyword != "b" {
			t.Errorf("provenance keyword: got %q", a.Keyword)
		}
	}
}

func TestSearchAllKeywordsEmpty(t *testing.T) {
	svc := newTestService("http://127.0.0.1:0/unused")
	res, err := svc.Search(context.Background(), []string{"", "   "}, models.DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Articles) != 0 || len(res.Keywords) != 0 || len(res.Warnings) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestSearchKeywordLimit(t *testing.T) {
	var mu sync.Mutex
	fetches := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		fetches++
		mu.Unlock()
		w.Write([]byte(feedXML(1)))
	}))
	defer ts.Close()

	svc := newTestService(ts.URL)
	_, err := svc.Search(context.Background(), []string{"a", "b", "c", "d", "e"}, models.DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if fetches != MaxKeywords {
		t.Errorf("fetches: got %d, want %d", fetches, MaxKeywords)
	}
}

func TestLookup(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML(6)))
	}))
	defer ts.Close()

	svc := newTestService(ts.URL)
	articles, err := svc.Lookup(context.Background(), " climate ", 3)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(articles))
	}
	// Feed order is preserved; no re-sorting on the chat path.
	for i, a := range articles {
		if a.Title != fmt.Sprintf("headline %d", i) {
			t.Errorf("position %d: got %q", i, a.Title)
		}
		if a.Keyword != "climate" {
			t.Errorf("keyword: got %q, want climate", a.Keyword)
		}
	}
}

func TestLookupEmptyKeyword(t *testing.T) {
	svc := newTestService("http://127.0.0.1:0/unused")
	articles, err := svc.Lookup(context.Background(), "   ", 3)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if articles != nil {
		t.Errorf("expected nil for empty keyword, got %v", articles)
	}
}
