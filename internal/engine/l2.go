package engine

import (
	"fmt"
	"strings"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Thresholds shared by L1 fallback scoring and L2 resolution.
const (
	minMatchScore  = 2 // below this the match degrades to Other/Low
	highConfidence = 4
)

// resolveL2 picks the best L2 subcategory within the committed L1. Curated
// phrases score +3 when they appear in the first 200 characters of the issue
// text and +1 elsewhere; generic taxonomy keywords score +1 anywhere.
func (e *Engine) resolveL2(l1Code, text, textLower string) model.ClassificationResult {
	headLower := strings.ToLower(head(text, 200))
	scores := newScoreboard()

	family := l2Family(l1Code)
	for _, rule := range e.rules.Phrases {
		if !strings.HasPrefix(rule.L2, family) {
			continue
		}
		for _, phrase := range rule.Phrases {
			if !strings.Contains(textLower, phrase) {
				continue
			}
			if strings.Contains(headLower, phrase) {
				scores.add(rule.L2, 3)
			} else {
				scores.add(rule.L2, 1)
			}
		}
	}

	if group, ok := e.tax.Group(l1Code); ok {
		for _, opt := range group.L2Options {
			for _, kw := range opt.Keywords {
				if strings.Contains(textLower, kw) {
					scores.add(opt.Code, 1)
				}
			}
		}
	}

	l2Code, confidence, notes := pickL2(scores)
	return model.ClassificationResult{
		L1Code:     l1Code,
		L1Category: e.tax.L1Name(l1Code),
		L2Code:     l2Code,
		L2Category: e.l2DisplayName(l2Code),
		Confidence: confidence,
		Notes:      notes,
	}
}

func pickL2(scores *scoreboard) (string, model.Confidence, string) {
	best, score := scores.best()
	if best == "" {
		return model.CodeOther, model.ConfidenceLow, "No L2 match found"
	}
	if score < minMatchScore {
		return model.CodeOther, model.ConfidenceLow, fmt.Sprintf("Weak L2 match (score=%d)", score)
	}
	if score >= highConfidence {
		return best, model.ConfidenceHigh, ""
	}
	return best, model.ConfidenceMedium, ""
}

func (e *Engine) l2DisplayName(l2Code string) string {
	if l2Code == model.CodeOther {
		return model.CodeOther
	}
	return e.tax.L2Name(l2Code)
}

// l2Family maps an L1 code to the L2 code prefix of its subcategories:
// L1.1 → "L2.1.". The trailing dot keeps L2.10.x out of the L1.1 family.
func l2Family(l1Code string) string {
	return strings.Replace(l1Code, "L1", "L2", 1) + "."
}
