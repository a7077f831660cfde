// Package insights derives aggregate views from a set of articles:
// keyword frequency across headlines and the sentiment distribution.
package insights

import (
	"sort"
	"strings"

	"github.com/newslyhq/newsly/pkg/models"
	"github.com/newslyhq/newsly/pkg/utils"
)

// DefaultTopKeywords bounds the keyword frequency listing.
const DefaultTopKeywords = 15

// KeywordCount is one entry of the headline frequency table. Term is a
// single word or a two-word phrase.
type KeywordCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// SentimentCount is one bucket of the sentiment distribution.
type SentimentCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary is the full insights payload for a set of articles.
type Summary struct {
	TotalArticles int              `json:"total_articles"`
	TopKeywords   []KeywordCount   `json:"top_keywords"`
	Sentiment     []SentimentCount `json:"sentiment"`
}

// Filler words that dominate headlines without saying anything.
var stopWords = map[string]struct{}{
	"said": {}, "says": {}, "news": {}, "report": {}, "reports": {},
	"new": {}, "first": {}, "time": {}, "people": {}, "year": {},
	"years": {}, "day": {}, "week": {}, "month": {}, "today": {},
	"latest": {}, "breaking": {}, "update": {}, "updates": {},

	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {},
	"to": {}, "in": {}, "on": {}, "for": {}, "with": {}, "as": {},
	"at": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "it": {}, "its": {}, "this": {}, "that": {},
	"from": {}, "after": {}, "over": {}, "will": {}, "has": {},
	"have": {}, "had": {}, "not": {}, "but": {}, "his": {}, "her": {},
	"their": {}, "they": {}, "he": {}, "she": {}, "we": {}, "you": {},
	"about": {}, "more": {}, "than": {}, "up": {}, "out": {}, "into": {},
	"amid": {}, "what": {}, "who": {}, "how": {}, "why": {}, "when": {},
	"where": {}, "could": {}, "would": {}, "should": {}, "may": {},
	"can": {}, "your": {}, "our": {}, "all": {}, "no": {}, "us": {},
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Summarize computes the insights payload. Empty input yields an empty
// summary rather than an error; there is nothing to analyze.
func Summarize(articles []models.Article, topKeywords int) Summary {
	if topKeywords < 1 {
		topKeywords = DefaultTopKeywords
	}
	summary := Summary{TotalArticles: len(articles)}
	if len(articles) == 0 {
		return summary
	}
	summary.TopKeywords = TopKeywords(articles, topKeywords)
	summary.Sentiment = SentimentDistribution(articles)
	return summary
}

// TopKeywords counts single words and two-word phrases across all
// headlines, ignoring filler words, and returns the n most frequent.
// Ties break alphabetically so the result is deterministic.
func TopKeywords(articles []models.Article, n int) []KeywordCount {
	counts := make(map[string]int)
	for _, a := range articles {
		tokens := tokenize(a.Title)
		for i, tok := range tokens {
			counts[tok]++
			if i+1 < len(tokens) {
				counts[tok+" "+tokens[i+1]]++
			}
		}
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := make([]KeywordCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, KeywordCount{Term: term, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Term < ranked[j].Term
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// tokenize lowercases a headline, strips punctuation, and drops filler
// and single-character tokens. Consecutive survivors form the bigrams
// counted by TopKeywords, so filtering happens up front.
func tokenize(title string) []string {
	var tokens []string
	for _, field := range strings.Fields(utils.CleanText(title)) {
		if len(field) < 2 || isStopWord(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// SentimentDistribution counts articles per sentiment label. Labels are
// reduced to letters and spaces first, so decorated variants of the
// same label land in one bucket. Buckets appear in the fixed order
// Positive, Neutral, Negative; unrecognized labels count as Neutral.
func SentimentDistribution(articles []models.Article) []SentimentCount {
	counts := map[models.Sentiment]int{}
	for _, a := range articles {
		label := models.Sentiment(strings.TrimSpace(utils.StripGlyphs(string(a.SentimentLabel))))
		if !label.Valid() {
			label = models.SentimentNeutral
		}
		counts[label]++
	}

	order := []models.Sentiment{models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative}
	dist := make([]SentimentCount, 0, len(order))
	for _, label := range order {
		dist = append(dist, SentimentCount{Label: string(label), Count: counts[label]})
	}
	return dist
}
