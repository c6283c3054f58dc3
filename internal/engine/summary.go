package engine

import (
	"regexp"
	"strings"
)

var bracketTags = regexp.MustCompile(`\[.*?\]`)

const (
	summaryMaxWords  = 20
	summaryKeepWords = 18
)

// summarize produces a concise summary from the title: bracketed tags are
// stripped, surrounding punctuation trimmed, and titles over 20 words are
// cut to the first 18 plus an ellipsis.
func summarize(title string) string {
	clean := strings.TrimSpace(bracketTags.ReplaceAllString(title, ""))
	clean = strings.Trim(clean, ".,;:-")
	words := strings.Fields(clean)
	if len(words) <= summaryMaxWords {
		return clean
	}
	return strings.Join(words[:summaryKeepWords], " ") + "..."
}
