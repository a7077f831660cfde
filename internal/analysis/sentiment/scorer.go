// Package sentiment scores short news text with a bag-of-words lexicon.
// The scorer is deterministic and fully offline: identical input always
// yields the identical polarity, label, and class tag.
package sentiment

import (
	"strings"

	"github.com/newslyhq/newsly/pkg/models"
	"github.com/newslyhq/newsly/pkg/utils"
)

// Opinion lexicon (lowercase). Weights are per-word polarities in (0, 1];
// the headline score is the average over matched words, so Polarity always
// lands in [-1, 1].
var positiveWords = map[string]float64{
	"good": 0.5, "great": 0.8, "best": 0.9, "strong": 0.4,
	"win": 0.6, "wins": 0.6, "winning": 0.6, "won": 0.6,
	"success": 0.7, "successful": 0.7, "growth": 0.4, "grow": 0.4,
	"boost": 0.5, "boosts": 0.5, "surge": 0.6, "surges": 0.6,
	"soar": 0.7, "soars": 0.7, "rally": 0.5, "record": 0.4,
	"gain": 0.4, "gains": 0.4, "rise": 0.3, "rises": 0.3,
	"hope": 0.4, "hopeful": 0.5, "optimism": 0.6, "optimistic": 0.6,
	"breakthrough": 0.8, "recovery": 0.5, "recover": 0.4,
	"improve": 0.5, "improves": 0.5, "improved": 0.5,
	"celebrate": 0.7, "celebrates": 0.7, "praise": 0.6, "praises": 0.6,
	"positive": 0.5, "progress": 0.5, "thrive": 0.7, "thriving": 0.7,
	"benefit": 0.4, "benefits": 0.4, "promising": 0.6, "triumph": 0.8,
	"milestone": 0.5, "innovative": 0.5, "safe": 0.3, "safer": 0.4,
	"approve": 0.4, "approves": 0.4, "approved": 0.4,
}

var negativeWords = map[string]float64{
	"bad": 0.5, "worst": 0.9, "worse": 0.6, "weak": 0.4,
	"crash": 0.8, "crashes": 0.8, "crisis": 0.7, "collapse": 0.8,
	"fall": 0.3, "falls": 0.3, "drop": 0.3, "drops": 0.3,
	"plunge": 0.7, "plunges": 0.7, "slump": 0.6, "decline": 0.4,
	"loss": 0.5, "losses": 0.5, "lose": 0.4, "loses": 0.4,
	"fail": 0.6, "fails": 0.6, "failure": 0.7, "failed": 0.6,
	"fear": 0.6, "fears": 0.6, "warning": 0.4, "warn": 0.4, "warns": 0.4,
	"threat": 0.6, "threats": 0.6, "threatens": 0.6, "risk": 0.3, "risks": 0.3,
	"death": 0.8, "dead": 0.8, "dies": 0.8, "killed": 0.9, "kills": 0.9,
	"war": 0.7, "attack": 0.7, "attacks": 0.7, "violence": 0.7,
	"fraud": 0.8, "scandal": 0.7, "scam": 0.8, "corruption": 0.7,
	"lawsuit": 0.4, "sue": 0.4, "sues": 0.4, "ban": 0.4, "bans": 0.4,
	"cut": 0.3, "cuts": 0.3, "layoff": 0.6, "layoffs": 0.6,
	"recession": 0.7, "inflation": 0.4, "shortage": 0.5,
	"negative": 0.5, "concern": 0.3, "concerns": 0.3, "trouble": 0.5,
	"disaster": 0.8, "emergency": 0.6, "outbreak": 0.6, "damage": 0.5,
	"reject": 0.4, "rejects": 0.4, "rejected": 0.4, "blame": 0.5, "blames": 0.5,
}

// Polarity computes the scalar opinion score of text, in [-1, 1].
// Words outside the lexicon contribute nothing; text with no lexicon
// match — including empty or whitespace-only text — scores exactly 0.
func Polarity(text string) float64 {
	words := strings.Fields(utils.CleanText(text))
	if len(words) == 0 {
		return 0
	}

	sum := 0.0
	matches := 0
	for _, w := range words {
		if weight, ok := positiveWords[w]; ok {
			sum += weight
			matches++
		} else if weight, ok := negativeWords[w]; ok {
			sum -= weight
			matches++
		}
	}

	if matches == 0 {
		return 0
	}
	return sum / float64(matches)
}

// Classify maps text to its sentiment label and paired class tag.
// Thresholds are fixed: polarity above zero is Positive, below zero is
// Negative, and exactly zero is Neutral.
func Classify(text string) (models.Sentiment, string) {
	label := Label(Polarity(text))
	return label, label.ClassTag()
}

// Label converts a polarity score to the three-way label.
func Label(polarity float64) models.Sentiment {
	switch {
	case polarity > 0:
		return models.SentimentPositive
	case polarity < 0:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
