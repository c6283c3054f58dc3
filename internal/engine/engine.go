// Package engine implements the rule-based issue classification engine:
// label-priority L1 matching, scored L2 resolution, issue-type, sentiment,
// and summary derivation.
package engine

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/driftwoodlabs/issuesift/internal/engine/rules"
	"github.com/driftwoodlabs/issuesift/internal/model"
	"github.com/driftwoodlabs/issuesift/internal/taxonomy"
)

// Engine classifies issues against a taxonomy table and a heuristic rule set.
// Classification is a pure function of the issue's own fields plus the static
// tables, so the same input always yields the same result.
type Engine struct {
	rules rules.Set
	tax   *taxonomy.Table
}

// New creates an Engine with the given rule set and taxonomy.
func New(rs rules.Set, tax *taxonomy.Table) *Engine {
	return &Engine{rules: rs, tax: tax}
}

// Classify derives the full classification for a single issue.
func (e *Engine) Classify(issue model.IssueRecord) model.ClassificationResult {
	title := norm.NFC.String(issue.Title)
	body := norm.NFC.String(issue.Body)

	result := e.resolveTaxonomy(title, body, issue.Labels)
	result.IssueType = classifyType(title, body)
	result.Summary = summarize(title)
	result.Sentiment = classifySentiment(title, body)
	return result
}

// ClassifyBatch classifies a slice of issues in input order.
func (e *Engine) ClassifyBatch(issues []model.IssueRecord) []model.ClassifiedIssue {
	out := make([]model.ClassifiedIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, model.ClassifiedIssue{
			IssueRecord:    issue,
			Classification: e.Classify(issue),
		})
	}
	return out
}

// head returns the first n characters of s. Windows in the scoring rules
// count characters, not bytes.
func head(s string, n int) string {
	if n >= len(s) {
		return s
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
