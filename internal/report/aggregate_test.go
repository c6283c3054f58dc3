package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

func enriched(number int, opts func(*model.EnrichedIssue)) model.EnrichedIssue {
	e := model.EnrichedIssue{
		ClassifiedIssue: model.ClassifiedIssue{
			IssueRecord: model.IssueRecord{
				Number:    number,
				Title:     "Some issue",
				CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			},
			Classification: model.ClassificationResult{
				IssueType:  model.TypeBug,
				Sentiment:  model.SentimentNeutral,
				Confidence: model.ConfidenceMedium,
				L1Code:     "L1.1",
				L1Category: "Core Runtime",
				L2Code:     "L2.1.1",
				L2Category: "Context Management",
			},
		},
		Priority: model.P2,
	}
	if opts != nil {
		opts(&e)
	}
	return e
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, 0, s.Total)
	assert.Empty(t, s.ByType)
}

func TestAggregateCountsAndPercentages(t *testing.T) {
	issues := []model.EnrichedIssue{
		enriched(1, nil),
		enriched(2, func(e *model.EnrichedIssue) {
			e.Classification.IssueType = model.TypeFeatureRequest
			e.Classification.Sentiment = model.SentimentNegative
			e.Priority = model.P1
		}),
		enriched(3, func(e *model.EnrichedIssue) {
			e.Classification.Confidence = model.ConfidenceLow
			e.Classification.L1Code = model.CodeOther
			e.Classification.L1Category = model.CodeOther
			e.Classification.L2Category = model.CodeOther
			e.Priority = ""
		}),
		enriched(4, func(e *model.EnrichedIssue) {
			e.Priority = model.P0
			e.CommentsCount = 40
			e.CreatedAt = time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
		}),
	}

	s := Aggregate(issues)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.HighPriority)
	assert.Equal(t, 1, s.Negative)
	assert.Equal(t, 1, s.EdgeCases)
	assert.InDelta(t, 10.0, s.AvgComments, 0.001)
	assert.Equal(t, 30, s.Days)

	require.Len(t, s.ByType, 2)
	assert.Equal(t, Count{Key: "Bug", N: 3, Pct: 75}, s.ByType[0])
	assert.Equal(t, Count{Key: "Feature Request", N: 1, Pct: 25}, s.ByType[1])

	// Priorities follow P0..P4 display order and skip absent buckets.
	require.Len(t, s.ByPriority, 3)
	assert.Equal(t, "P0", s.ByPriority[0].Key)
	assert.Equal(t, "P1", s.ByPriority[1].Key)
	assert.Equal(t, "P2", s.ByPriority[2].Key)

	// The Other bucket is excluded from top L2 but kept in top L1.
	for _, c := range s.TopL2 {
		assert.NotEqual(t, model.CodeOther, c.Key)
	}
	assert.Equal(t, "Core Runtime", s.TopL1[0].Key)
}

func TestAggregateMostDiscussed(t *testing.T) {
	var issues []model.EnrichedIssue
	for i := 1; i <= 15; i++ {
		n := i
		issues = append(issues, enriched(i, func(e *model.EnrichedIssue) {
			e.CommentsCount = n
		}))
	}

	s := Aggregate(issues)
	require.Len(t, s.MostDiscussed, 10)
	assert.Equal(t, 15, s.MostDiscussed[0].CommentsCount)
	assert.Equal(t, 6, s.MostDiscussed[9].CommentsCount)
}

func TestTopCountsDeterministicTieBreak(t *testing.T) {
	counts := topCounts(map[string]int{"b": 2, "a": 2, "c": 5}, 10, 9)
	require.Len(t, counts, 3)
	assert.Equal(t, "c", counts[0].Key)
	assert.Equal(t, "a", counts[1].Key)
	assert.Equal(t, "b", counts[2].Key)
}

func TestRenderAndMarkdown(t *testing.T) {
	issues := []model.EnrichedIssue{enriched(1, nil), enriched(2, nil)}
	s := Aggregate(issues)

	text := Render(s)
	assert.Contains(t, text, "Issue Backlog Analysis")
	assert.Contains(t, text, "Core Runtime")

	md := Markdown(s)
	assert.Contains(t, md, "# Issue Backlog Analysis")
	assert.Contains(t, md, "| Bug | 2 | 100.0% |")
	assert.Contains(t, md, "## Most Discussed Issues")
	assert.True(t, strings.HasPrefix(md, "# "))
}

func TestMarkdownEmpty(t *testing.T) {
	md := Markdown(Summary{})
	assert.Contains(t, md, "No issues to report.")
}
