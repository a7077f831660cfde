package utils

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"AI:  the   next\tfrontier?", "ai the next frontier"},
		{"", ""},
		{"---", ""},
		{"Markets up 3% today", "markets up 3 today"},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripGlyphs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Positive", "Positive"},
		{"\U0001F60A Positive", "Positive"},
		{"\U0001F610 Neutral", "Neutral"},
		{"  Negative  ", "Negative"},
	}
	for _, tt := range tests {
		if got := StripGlyphs(tt.in); got != tt.want {
			t.Errorf("StripGlyphs(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 80); got != "short" {
		t.Errorf("got %q", got)
	}
	long := "a very long headline that keeps going and going and going and going and going well past the cap"
	got := Truncate(long, 80)
	if len([]rune(got)) != 83 { // 80 runes + "..."
		t.Errorf("truncated length: got %d runes (%q)", len([]rune(got)), got)
	}
}
