package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9E2AF")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Width(26)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C7086")).
			Padding(0, 1)
)

// Render formats a Summary as a styled terminal dashboard.
func Render(s Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Issue Backlog Analysis"))
	b.WriteString("\n")

	if s.Total == 0 {
		b.WriteString(mutedStyle.Render("No issues to report.") + "\n")
		return b.String()
	}

	metrics := []string{
		fmt.Sprintf("Total Issues    %d", s.Total),
		fmt.Sprintf("P0/P1 Priority  %s", alertStyle.Render(fmt.Sprintf("%d", s.HighPriority))),
		fmt.Sprintf("Negative Tone   %d", s.Negative),
		fmt.Sprintf("Avg Comments    %.1f", s.AvgComments),
		fmt.Sprintf("Date Range      %s to %s (%d days)",
			s.DateStart.Format("2006-01-02"), s.DateEnd.Format("2006-01-02"), s.Days),
	}
	b.WriteString(boxStyle.Render(strings.Join(metrics, "\n")))
	b.WriteString("\n")

	writeDistribution(&b, "Issue Types", s.ByType)
	writeDistribution(&b, "Priority", s.ByPriority)
	writeDistribution(&b, "Sentiment", s.BySentiment)
	writeDistribution(&b, "Confidence", s.ByConfidence)
	writeDistribution(&b, "Top L1 Categories", s.TopL1)
	writeDistribution(&b, "Top L2 Categories", s.TopL2)

	b.WriteString(sectionStyle.Render("Needs Review"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d (%.1f%%)\n",
		labelStyle.Render("Low confidence or Other"), s.EdgeCases, pct(s.EdgeCases, s.Total)))

	if len(s.MostDiscussed) > 0 {
		b.WriteString(sectionStyle.Render("Most Discussed"))
		b.WriteString("\n")
		for _, issue := range s.MostDiscussed {
			line := fmt.Sprintf("#%-6d %3d comments  %s", issue.Number, issue.CommentsCount, truncate(issue.Title, 60))
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// writeDistribution prints one bucket per line with a proportional bar.
func writeDistribution(b *strings.Builder, title string, counts []Count) {
	if len(counts) == 0 {
		return
	}
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")

	max := counts[0].N
	for _, c := range counts {
		if c.N > max {
			max = c.N
		}
	}
	for _, c := range counts {
		width := 0
		if max > 0 {
			width = c.N * barWidth / max
		}
		if width == 0 && c.N > 0 {
			width = 1
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(truncate(c.Key, 25)),
			barStyle.Render(strings.Repeat("█", width)),
			mutedStyle.Render(fmt.Sprintf("%d (%.1f%%)", c.N, c.Pct)),
		))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
