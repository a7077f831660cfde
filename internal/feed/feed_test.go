package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newslyhq/newsly/internal/config"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Search results</title>
<item>
<title>Markets rally on strong earnings - BBC News</title>
<link>https://example.com/rally</link>
<pubDate>Mon, 01 Sep 2025 08:00:00 GMT</pubDate>
</item>
<item>
<title>Tech &amp; telecom merger announced</title>
<link>https://example.com/merger</link>
</item>
</channel>
</rss>`

const emptyRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Search results</title></channel></rss>`

func testConfig(endpoint string) config.FeedConfig {
	return config.FeedConfig{
		Endpoint:       endpoint,
		Language:       "en-US",
		Country:        "US",
		Edition:        "US:en",
		TimeoutSec:     5,
		RequestsPerSec: 100,
	}
}

func TestFetchParsesEntries(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer ts.Close()

	in := NewIngestor(testConfig(ts.URL))
	entries, err := in.Fetch(context.Background(), "earnings")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotQuery != "earnings" {
		t.Errorf("q param: got %q, want %q", gotQuery, "earnings")
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Title != "Markets rally on strong earnings - BBC News" {
		t.Errorf("title: got %q", first.Title)
	}
	if first.Link != "https://example.com/rally" {
		t.Errorf("link: got %q", first.Link)
	}
	if first.Published == "" || first.PublishedAt.IsZero() {
		t.Errorf("expected parsed publish time, got %q / %v", first.Published, first.PublishedAt)
	}

	second := entries[1]
	if second.Title != "Tech & telecom merger announced" {
		t.Errorf("entity decoding: got %q", second.Title)
	}
	if second.Published != "" || !second.PublishedAt.IsZero() {
		t.Errorf("missing pubDate should stay empty, got %q / %v", second.Published, second.PublishedAt)
	}
}

func TestFetchEmptyFeedIsNotError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyRSS))
	}))
	defer ts.Close()

	in := NewIngestor(testConfig(ts.URL))
	entries, err := in.Fetch(context.Background(), "obscure")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected zero entries, got %d", len(entries))
	}
}

func TestFetchUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer ts.Close()

	in := NewIngestor(testConfig(ts.URL))
	if _, err := in.Fetch(context.Background(), "ai"); err == nil {
		t.Error("expected error for HTTP 500")
	}
}

func TestFetchMalformedFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not xml at all"))
	}))
	defer ts.Close()

	in := NewIngestor(testConfig(ts.URL))
	if _, err := in.Fetch(context.Background(), "ai"); err == nil {
		t.Error("expected parse error for malformed feed")
	}
}

func TestFetchUsesCacheWhenEnabled(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sampleRSS))
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL)
	cfg.CacheTTLSec = 60
	in := NewIngestor(cfg)

	for i := 0; i < 3; i++ {
		if _, err := in.Fetch(context.Background(), "ai"); err != nil {
			t.Fatalf("Fetch #%d: %v", i, err)
		}
	}
	if hits != 1 {
		t.Errorf("upstream hits: got %d, want 1", hits)
	}
}

func TestFetchNoCacheByDefault(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sampleRSS))
	}))
	defer ts.Close()

	in := NewIngestor(testConfig(ts.URL))
	for i := 0; i < 2; i++ {
		if _, err := in.Fetch(context.Background(), "ai"); err != nil {
			t.Fatalf("Fetch #%d: %v", i, err)
		}
	}
	if hits != 2 {
		t.Errorf("a fresh search must re-fetch: got %d hits, want 2", hits)
	}
}

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain title", "plain title"},
		{"a &amp; b", "a & b"},
		{"<b>bold</b> claim", "bold claim"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanHTML(tt.in); got != tt.want {
			t.Errorf("cleanHTML(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
