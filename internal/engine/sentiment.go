package engine

import (
	"strings"
	"unicode"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

var (
	positiveKeywords = []string{"great", "love", "been great", "fantastic", "excellent", "appreciate"}
	negativeKeywords = []string{
		"frustrated", "annoying", "terrible", "wasted", "completely", "useless",
		"hours", "realllly", "lazy", "poor", "non-functional", "spent several hours",
	}
)

// Shouting thresholds: uppercase letters in the raw title and exclamation
// marks in the combined text are frustration proxies independent of vocabulary.
const (
	maxTitleCaps    = 15
	maxExclamations = 3
)

// classifySentiment buckets reporter tone from the title and the first 500
// characters of the body. Positive keywords take precedence.
func classifySentiment(title, body string) model.Sentiment {
	text := strings.ToLower(title + " " + head(body, 500))

	if containsAny(text, positiveKeywords) {
		return model.SentimentPositive
	}

	caps := 0
	for _, r := range title {
		if unicode.IsUpper(r) {
			caps++
		}
	}
	if containsAny(text, negativeKeywords) || caps > maxTitleCaps || strings.Count(text, "!") > maxExclamations {
		return model.SentimentNegative
	}
	return model.SentimentNeutral
}
