package engine

import (
	"fmt"
	"strings"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// resolveTaxonomy assigns L1 and L2 codes using the ordered priority policy:
// explicit labels first, keyword scoring second, no-match last. Labels are
// treated as ground truth because a human already classified the issue;
// keyword scoring is the fallback heuristic.
func (e *Engine) resolveTaxonomy(title, body string, labels []string) model.ClassificationResult {
	text := title + " " + body
	textLower := strings.ToLower(text)
	titleLower := strings.ToLower(title)
	labelText := strings.ToLower(strings.Join(labels, ", "))

	// Priority 1: label match. First rule in declaration order wins.
	for _, rule := range e.rules.Labels {
		if strings.Contains(labelText, rule.Label) {
			return e.resolveL2(rule.L1, text, textLower)
		}
	}

	// Priority 2: aggregate keyword score per L1 across all of its L2
	// keyword lists. +2 for a title hit, +1 for a body-only hit.
	scores := newScoreboard()
	for _, group := range e.tax.Groups() {
		for _, opt := range group.L2Options {
			for _, kw := range opt.Keywords {
				if !strings.Contains(textLower, kw) {
					continue
				}
				if strings.Contains(titleLower, kw) {
					scores.add(group.Code, 2)
				} else {
					scores.add(group.Code, 1)
				}
			}
		}
	}

	best, score := scores.best()
	if best == "" {
		return otherResult("No clear L1/L2 match")
	}
	// A single incidental keyword hit is not evidence of a category.
	if score < 2 {
		return otherResult(fmt.Sprintf("Weak L1 match (score=%d)", score))
	}
	return e.resolveL2(best, text, textLower)
}

func otherResult(notes string) model.ClassificationResult {
	return model.ClassificationResult{
		L1Code:     model.CodeOther,
		L1Category: model.CodeOther,
		L2Code:     model.CodeOther,
		L2Category: model.CodeOther,
		Confidence: model.ConfidenceLow,
		Notes:      notes,
	}
}

// scoreboard accumulates integer scores per code, remembering first-touch
// order so that best() resolves ties to the earliest-seen code.
type scoreboard struct {
	order  []string
	scores map[string]int
}

func newScoreboard() *scoreboard {
	return &scoreboard{scores: make(map[string]int)}
}

func (s *scoreboard) add(code string, n int) {
	if _, seen := s.scores[code]; !seen {
		s.order = append(s.order, code)
	}
	s.scores[code] += n
}

// best returns the highest-scoring code, or "" when nothing scored.
// Strictly-greater comparison keeps the argmax stable.
func (s *scoreboard) best() (string, int) {
	bestCode, bestScore := "", 0
	for _, code := range s.order {
		if s.scores[code] > bestScore {
			bestCode, bestScore = code, s.scores[code]
		}
	}
	return bestCode, bestScore
}
