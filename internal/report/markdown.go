package report

import (
	"fmt"
	"strings"
)

// Markdown formats a Summary as a standalone report document.
func Markdown(s Summary) string {
	var b strings.Builder

	b.WriteString("# Issue Backlog Analysis\n\n")
	if s.Total == 0 {
		b.WriteString("No issues to report.\n")
		return b.String()
	}

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- Total issues: %d\n", s.Total)
	fmt.Fprintf(&b, "- Date range: %s to %s (%d days)\n",
		s.DateStart.Format("2006-01-02"), s.DateEnd.Format("2006-01-02"), s.Days)
	fmt.Fprintf(&b, "- P0/P1 priority: %d\n", s.HighPriority)
	fmt.Fprintf(&b, "- Negative sentiment: %d\n", s.Negative)
	fmt.Fprintf(&b, "- Average comments per issue: %.1f\n", s.AvgComments)
	fmt.Fprintf(&b, "- Low confidence or Other: %d (%.1f%%)\n\n", s.EdgeCases, pct(s.EdgeCases, s.Total))

	writeTable(&b, "Issue Types", "Type", s.ByType)
	writeTable(&b, "Priority Distribution", "Priority", s.ByPriority)
	writeTable(&b, "Sentiment", "Sentiment", s.BySentiment)
	writeTable(&b, "Classification Confidence", "Confidence", s.ByConfidence)
	writeTable(&b, "Top L1 Categories", "Category", s.TopL1)
	writeTable(&b, "Top L2 Categories", "Subcategory", s.TopL2)

	if len(s.MostDiscussed) > 0 {
		b.WriteString("## Most Discussed Issues\n\n")
		b.WriteString("| Issue | Comments | Title |\n|---|---|---|\n")
		for _, issue := range s.MostDiscussed {
			fmt.Fprintf(&b, "| [#%d](%s) | %d | %s |\n",
				issue.Number, issue.HTMLURL, issue.CommentsCount, escapePipes(issue.Title))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeTable(b *strings.Builder, title, keyHeader string, counts []Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "| %s | Count | Share |\n|---|---|---|\n", keyHeader)
	for _, c := range counts {
		fmt.Fprintf(b, "| %s | %d | %.1f%% |\n", escapePipes(c.Key), c.N, c.Pct)
	}
	b.WriteString("\n")
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
