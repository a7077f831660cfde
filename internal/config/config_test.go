package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaults(t *testing.T) {
	// Unset any env vars that would interfere
	for _, e := range []string{
		"NEWSLY_FEED_ENDPOINT", "NEWSLY_FEED_LANGUAGE", "NEWSLY_API_PORT",
		"NEWSLY_RESULTS_MAX_ARTICLES", "NEWSLY_LOGGING_LEVEL",
	} {
		os.Unsetenv(e)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Feed.Endpoint != "https://news.google.com/rss/search" {
		t.Errorf("Feed.Endpoint: got %q", cfg.Feed.Endpoint)
	}
	if cfg.Feed.Language != "en-US" {
		t.Errorf("Feed.Language: got %q, want %q", cfg.Feed.Language, "en-US")
	}
	if cfg.Feed.Country != "US" {
		t.Errorf("Feed.Country: got %q, want %q", cfg.Feed.Country, "US")
	}
	if cfg.Feed.Edition != "US:en" {
		t.Errorf("Feed.Edition: got %q, want %q", cfg.Feed.Edition, "US:en")
	}
	if cfg.Feed.TimeoutSec != 15 {
		t.Errorf("Feed.TimeoutSec: got %d, want 15", cfg.Feed.TimeoutSec)
	}
	if cfg.Feed.CacheTTLSec != 0 {
		t.Errorf("Feed.CacheTTLSec: got %d, want 0", cfg.Feed.CacheTTLSec)
	}

	if cfg.Results.MaxArticles != 10 {
		t.Errorf("Results.MaxArticles: got %d, want 10", cfg.Results.MaxArticles)
	}
	if cfg.Results.SortBy != "published_date" {
		t.Errorf("Results.SortBy: got %q", cfg.Results.SortBy)
	}
	if len(cfg.Results.ShowOnly) != 0 {
		t.Errorf("Results.ShowOnly: got %v, want empty", cfg.Results.ShowOnly)
	}

	if cfg.Chat.MaxResults != 3 {
		t.Errorf("Chat.MaxResults: got %d, want 3", cfg.Chat.MaxResults)
	}
	if cfg.Insights.TopKeywords != 15 {
		t.Errorf("Insights.TopKeywords: got %d, want 15", cfg.Insights.TopKeywords)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("NEWSLY_FEED_LANGUAGE", "en-GB")
	t.Setenv("NEWSLY_CHAT_MAX_RESULTS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Feed.Language != "en-GB" {
		t.Errorf("Feed.Language: got %q, want %q", cfg.Feed.Language, "en-GB")
	}
	if cfg.Chat.MaxResults != 5 {
		t.Errorf("Chat.MaxResults: got %d, want 5", cfg.Chat.MaxResults)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
feed:
  endpoint: "https://feeds.example.com/search"
  timeout_sec: 5
results:
  max_articles: 20
  sort_by: "sentiment"
  show_only: ["Positive", "Negative"]
logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	if cfg.Feed.Endpoint != "https://feeds.example.com/search" {
		t.Errorf("Feed.Endpoint: got %q", cfg.Feed.Endpoint)
	}
	if cfg.Feed.TimeoutSec != 5 {
		t.Errorf("Feed.TimeoutSec: got %d, want 5", cfg.Feed.TimeoutSec)
	}
	if cfg.Results.MaxArticles != 20 {
		t.Errorf("Results.MaxArticles: got %d, want 20", cfg.Results.MaxArticles)
	}
	if cfg.Results.SortBy != "sentiment" {
		t.Errorf("Results.SortBy: got %q", cfg.Results.SortBy)
	}
	if len(cfg.Results.ShowOnly) != 2 {
		t.Errorf("Results.ShowOnly: got %v", cfg.Results.ShowOnly)
	}
	// Unset sections keep their defaults.
	if cfg.Chat.MaxResults != 3 {
		t.Errorf("Chat.MaxResults: got %d, want default 3", cfg.Chat.MaxResults)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
