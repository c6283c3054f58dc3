package csvio

import (
	"strconv"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

var priorityColumns = []string{"issue_number", "priority", "reasoning"}

// WritePriorities writes triage results, one row per input issue, header
// included, values quoted as needed.
func WritePriorities(path string, results []model.PriorityResult) error {
	records := make([][]string, 0, len(results))
	for _, r := range results {
		records = append(records, []string{
			strconv.Itoa(r.IssueNumber),
			string(r.Priority),
			r.Reasoning,
		})
	}
	return writeAll(path, priorityColumns, records)
}

// ReadPriorities loads a triage results CSV.
func ReadPriorities(path string) ([]model.PriorityResult, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	results := make([]model.PriorityResult, 0, len(t.Rows))
	for _, row := range t.Rows {
		results = append(results, model.PriorityResult{
			IssueNumber: atoi(row["issue_number"]),
			Priority:    model.Priority(row["priority"]),
			Reasoning:   row["reasoning"],
		})
	}
	return results, nil
}

// Merge joins classified issues with triage results on issue number.
// Issues without a triage row keep an empty priority; stray triage rows
// matching no issue are dropped.
func Merge(issues []model.ClassifiedIssue, priorities []model.PriorityResult) []model.EnrichedIssue {
	byNumber := make(map[int]model.PriorityResult, len(priorities))
	for _, p := range priorities {
		byNumber[p.IssueNumber] = p
	}
	merged := make([]model.EnrichedIssue, 0, len(issues))
	for _, issue := range issues {
		e := model.EnrichedIssue{ClassifiedIssue: issue}
		if p, ok := byNumber[issue.Number]; ok {
			e.Priority = p.Priority
			e.Reasoning = p.Reasoning
		}
		merged = append(merged, e)
	}
	return merged
}
