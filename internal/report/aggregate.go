// Package report aggregates enriched issues into backlog statistics and
// renders them as a terminal dashboard or a markdown document.
package report

import (
	"sort"
	"time"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Count is one bucket in a distribution.
type Count struct {
	Key string
	N   int
	Pct float64
}

// Summary holds the aggregated view of an enriched issue table.
type Summary struct {
	Total        int
	DateStart    time.Time
	DateEnd      time.Time
	Days         int
	HighPriority int
	Negative     int
	AvgComments  float64
	EdgeCases    int

	ByType       []Count
	BySentiment  []Count
	ByConfidence []Count
	ByPriority   []Count
	TopL1        []Count
	TopL2        []Count

	MostDiscussed []model.EnrichedIssue
}

const topN = 10

var (
	typeOrder       = []string{string(model.TypeBug), string(model.TypeFeatureRequest), string(model.TypeDocumentation)}
	sentimentOrder  = []string{string(model.SentimentNegative), string(model.SentimentNeutral), string(model.SentimentPositive)}
	confidenceOrder = []string{string(model.ConfidenceHigh), string(model.ConfidenceMedium), string(model.ConfidenceLow)}
	priorityOrder   = []string{string(model.P0), string(model.P1), string(model.P2), string(model.P3), string(model.P4), string(model.PriorityError)}
)

// Aggregate computes a Summary over issues. An empty input yields a
// zero-total Summary rather than an error.
func Aggregate(issues []model.EnrichedIssue) Summary {
	s := Summary{Total: len(issues)}
	if len(issues) == 0 {
		return s
	}

	types := map[string]int{}
	sentiments := map[string]int{}
	confidences := map[string]int{}
	priorities := map[string]int{}
	l1s := map[string]int{}
	l2s := map[string]int{}
	totalComments := 0

	for _, issue := range issues {
		c := issue.Classification
		types[string(c.IssueType)]++
		sentiments[string(c.Sentiment)]++
		confidences[string(c.Confidence)]++
		if issue.Priority != "" {
			priorities[string(issue.Priority)]++
		}
		l1s[c.L1Category]++
		if c.L2Category != model.CodeOther {
			l2s[c.L2Category]++
		}
		if c.Confidence == model.ConfidenceLow || c.L1Code == model.CodeOther {
			s.EdgeCases++
		}
		if issue.Priority == model.P0 || issue.Priority == model.P1 {
			s.HighPriority++
		}
		if c.Sentiment == model.SentimentNegative {
			s.Negative++
		}
		totalComments += issue.CommentsCount

		created := issue.CreatedAt
		if s.DateStart.IsZero() || created.Before(s.DateStart) {
			s.DateStart = created
		}
		if created.After(s.DateEnd) {
			s.DateEnd = created
		}
	}

	s.Days = int(s.DateEnd.Sub(s.DateStart).Hours() / 24)
	s.AvgComments = float64(totalComments) / float64(len(issues))
	s.ByType = fixedCounts(types, typeOrder, s.Total)
	s.BySentiment = fixedCounts(sentiments, sentimentOrder, s.Total)
	s.ByConfidence = fixedCounts(confidences, confidenceOrder, s.Total)
	s.ByPriority = fixedCounts(priorities, priorityOrder, s.Total)
	s.TopL1 = topCounts(l1s, topN, s.Total)
	s.TopL2 = topCounts(l2s, topN, s.Total)
	s.MostDiscussed = mostDiscussed(issues, topN)
	return s
}

// fixedCounts builds a distribution in a fixed display order, skipping
// absent buckets.
func fixedCounts(m map[string]int, order []string, total int) []Count {
	var out []Count
	for _, key := range order {
		if n, ok := m[key]; ok {
			out = append(out, Count{Key: key, N: n, Pct: pct(n, total)})
		}
	}
	return out
}

// topCounts returns the n largest buckets, count descending and key
// ascending on ties so output is deterministic.
func topCounts(m map[string]int, n, total int) []Count {
	out := make([]Count, 0, len(m))
	for key, count := range m {
		out = append(out, Count{Key: key, N: count, Pct: pct(count, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func mostDiscussed(issues []model.EnrichedIssue, n int) []model.EnrichedIssue {
	sorted := make([]model.EnrichedIssue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CommentsCount > sorted[j].CommentsCount
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
