package feed

import (
	"net/url"
	"strings"
	"testing"
)

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ai", "ai"},
		{"  climate change  ", "climate change"},
		{"\t\n crypto \n", "crypto"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKeyword(tt.in); got != tt.want {
			t.Errorf("NormalizeKeyword(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildSearchURLTrimInsignificant(t *testing.T) {
	loc := Locale{Language: "en-US", Country: "US", Edition: "US:en"}
	endpoint := "https://news.google.com/rss/search"

	plain := BuildSearchURL(endpoint, loc, "climate change")
	padded := BuildSearchURL(endpoint, loc, "  climate change  ")
	if plain != padded {
		t.Errorf("whitespace must be insignificant:\n%s\n%s", plain, padded)
	}
}

func TestBuildSearchURLEncoding(t *testing.T) {
	loc := Locale{Language: "en-US", Country: "US", Edition: "US:en"}
	got := BuildSearchURL("https://news.google.com/rss/search", loc, "AI & ethics")

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse built URL: %v", err)
	}
	q := u.Query()
	if q.Get("q") != "AI & ethics" {
		t.Errorf("q: got %q", q.Get("q"))
	}
	if q.Get("hl") != "en-US" || q.Get("gl") != "US" || q.Get("ceid") != "US:en" {
		t.Errorf("locale params: %v", q)
	}
	if strings.Contains(got, " ") {
		t.Errorf("URL contains raw space: %s", got)
	}
}

func TestBuildSearchURLOmitsEmptyLocale(t *testing.T) {
	got := BuildSearchURL("http://127.0.0.1/feed", Locale{}, "ai")
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse built URL: %v", err)
	}
	q := u.Query()
	for _, p := range []string{"hl", "gl", "ceid"} {
		if q.Has(p) {
			t.Errorf("expected %s to be omitted, got %q", p, q.Get(p))
		}
	}
	if q.Get("q") != "ai" {
		t.Errorf("q: got %q", q.Get("q"))
	}
}
