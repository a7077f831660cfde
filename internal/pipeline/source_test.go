package pipeline

import "testing"

func TestTagSource(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"bbc", "BBC reports on election results", "BBC"},
		{"bbc lowercase", "More coverage from bbc tonight", "BBC"},
		{"cnn", "Live updates - CNN", "CNN"},
		{"fox", "Fox News exclusive interview", "FOX"},
		{"reuters", "Analysis by Reuters staff", "RUT"},
		{"ap", "AP sources confirm the deal", "AP"},
		{"no match", "Town council meeting scheduled", "GGL"},
		{"empty", "", "GGL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagSource(tt.title); got != tt.want {
				t.Errorf("TagSource(%q): got %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestTagSourceFirstMatchWins(t *testing.T) {
	// Priority order, not specificity: BBC is listed before CNN.
	if got := TagSource("BBC News: CNN mentioned"); got != "BBC" {
		t.Errorf("got %q, want BBC", got)
	}
	if got := TagSource("CNN cites Reuters and AP"); got != "CNN" {
		t.Errorf("got %q, want CNN", got)
	}
}

func TestTagSourceFallbackOnlyWhenNoPattern(t *testing.T) {
	// AP matches as a substring anywhere, e.g. inside "APPLE"; the
	// tagger is a heuristic and deliberately does no word-boundary
	// checks.
	if got := TagSource("Apple unveils new chip"); got != "AP" {
		t.Errorf("substring heuristic: got %q, want AP", got)
	}
}
