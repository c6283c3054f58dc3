package triage

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// ParseReply turns a raw completion into a PriorityResult. The reply must
// be a single CSV record of issue number, priority, and quoted reasoning.
// Any violation yields an Error result with the raw reply preserved in
// the reasoning field for audit.
func ParseReply(issueNumber int, raw string) model.PriorityResult {
	raw = strings.TrimSpace(raw)

	r := csv.NewReader(strings.NewReader(raw))
	record, err := r.Read()
	if err != nil {
		return errorResult(issueNumber, "Parse error: "+raw)
	}
	if len(record) != 3 {
		return errorResult(issueNumber, "Invalid format: "+raw)
	}
	if !model.ValidPriority(record[1]) {
		return errorResult(issueNumber, "Invalid priority: "+raw)
	}

	num := issueNumber
	if n, err := strconv.Atoi(strings.TrimSpace(record[0])); err == nil {
		num = n
	}
	return model.PriorityResult{
		IssueNumber: num,
		Priority:    model.Priority(record[1]),
		Reasoning:   record[2],
	}
}

func errorResult(issueNumber int, reasoning string) model.PriorityResult {
	return model.PriorityResult{
		IssueNumber: issueNumber,
		Priority:    model.PriorityError,
		Reasoning:   reasoning,
	}
}
