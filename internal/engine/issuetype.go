package engine

import (
	"strings"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Keyword tables for issue-type classification. Checked in precedence order:
// explicit title tags, then documentation, bug, and feature keywords.
var (
	bugTags     = []string{"[bug]", "[bug", "bug:"}
	featureTags = []string{"[feature]", "[enhancement]", "feature request"}
	docTags     = []string{"[docs]", "[documentation]"}

	docKeywords     = []string{"documentation", "docs", "unclear instructions"}
	bugKeywords     = []string{"error", "crash", "fail", "broke", "broken", "not working", "issue"}
	featureKeywords = []string{"add", "support", "want", "request", "would like", "improvement"}
)

// classifyType buckets an issue as Bug, Feature Request, or Documentation.
// Unmatched issues default to Bug, a deliberate policy choice carried over
// from the existing triage process, not an absence of classification.
func classifyType(title, body string) model.IssueType {
	titleLower := strings.ToLower(title)
	bodyLower := strings.ToLower(body)

	switch {
	case containsAny(titleLower, bugTags):
		return model.TypeBug
	case containsAny(titleLower, featureTags):
		return model.TypeFeatureRequest
	case containsAny(titleLower, docTags):
		return model.TypeDocumentation
	}

	if containsAny(titleLower, docKeywords) || containsAny(head(bodyLower, 200), docKeywords) {
		return model.TypeDocumentation
	}
	if containsAny(titleLower, bugKeywords) || containsAny(head(bodyLower, 300), bugKeywords) {
		return model.TypeBug
	}
	if containsAny(titleLower, featureKeywords) {
		return model.TypeFeatureRequest
	}
	return model.TypeBug
}
