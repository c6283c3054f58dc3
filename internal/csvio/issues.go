package csvio

import (
	"strconv"
	"time"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Base issue columns, in the order the fetch stage writes them.
var issueColumns = []string{
	"issue_number", "title", "body", "html_url", "state", "state_reason",
	"created_at", "updated_at", "closed_at", "comments_count", "labels",
	"author", "author_association", "assignees", "milestone",
	"is_pull_request", "locked", "closed_by",
	"reactions_total", "reactions_plus1", "reactions_minus1",
	"reactions_heart", "reactions_hooray", "reactions_rocket", "reactions_eyes",
}

// Classification columns appended by the classify stage.
var classificationColumns = []string{
	"Category", "Summary", "Sentiment", "L1_Tag", "L1_Category",
	"L2_Tag", "L2_Category", "Confidence", "Tagging_Notes",
}

// ReadIssues loads raw issue records from a CSV file. Absent body or labels
// columns read as empty, per the input contract.
func ReadIssues(path string) ([]model.IssueRecord, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	issues := make([]model.IssueRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		issues = append(issues, issueFromRow(row))
	}
	return issues, nil
}

// WriteIssues writes raw issue records with the full base column set.
func WriteIssues(path string, issues []model.IssueRecord) error {
	records := make([][]string, 0, len(issues))
	for _, issue := range issues {
		records = append(records, issueFields(issue))
	}
	return writeAll(path, issueColumns, records)
}

// ReadClassified loads a classified-issues CSV (base + classification columns).
func ReadClassified(path string) ([]model.ClassifiedIssue, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	issues := make([]model.ClassifiedIssue, 0, len(t.Rows))
	for _, row := range t.Rows {
		issues = append(issues, model.ClassifiedIssue{
			IssueRecord: issueFromRow(row),
			Classification: model.ClassificationResult{
				IssueType:  model.IssueType(row["Category"]),
				Summary:    row["Summary"],
				Sentiment:  model.Sentiment(row["Sentiment"]),
				L1Code:     row["L1_Tag"],
				L1Category: row["L1_Category"],
				L2Code:     row["L2_Tag"],
				L2Category: row["L2_Category"],
				Confidence: model.Confidence(row["Confidence"]),
				Notes:      row["Tagging_Notes"],
			},
		})
	}
	return issues, nil
}

// WriteClassified writes base columns with the classification columns appended.
func WriteClassified(path string, issues []model.ClassifiedIssue) error {
	header := append(append([]string{}, issueColumns...), classificationColumns...)
	records := make([][]string, 0, len(issues))
	for _, issue := range issues {
		c := issue.Classification
		record := append(issueFields(issue.IssueRecord),
			string(c.IssueType), c.Summary, string(c.Sentiment),
			c.L1Code, c.L1Category, c.L2Code, c.L2Category,
			string(c.Confidence), c.Notes,
		)
		records = append(records, record)
	}
	return writeAll(path, header, records)
}

func issueFromRow(row map[string]string) model.IssueRecord {
	return model.IssueRecord{
		Number:            atoi(row["issue_number"]),
		Title:             row["title"],
		Body:              row["body"],
		HTMLURL:           row["html_url"],
		State:             row["state"],
		StateReason:       row["state_reason"],
		CreatedAt:         parseTime(row["created_at"]),
		UpdatedAt:         parseTime(row["updated_at"]),
		ClosedAt:          row["closed_at"],
		CommentsCount:     atoi(row["comments_count"]),
		Labels:            splitList(row["labels"]),
		Author:            row["author"],
		AuthorAssociation: row["author_association"],
		Assignees:         splitList(row["assignees"]),
		Milestone:         row["milestone"],
		IsPullRequest:     row["is_pull_request"] == "true",
		Locked:            row["locked"] == "true",
		ClosedBy:          row["closed_by"],
		Reactions: model.Reactions{
			Total:  atoi(row["reactions_total"]),
			Plus1:  atoi(row["reactions_plus1"]),
			Minus1: atoi(row["reactions_minus1"]),
			Heart:  atoi(row["reactions_heart"]),
			Hooray: atoi(row["reactions_hooray"]),
			Rocket: atoi(row["reactions_rocket"]),
			Eyes:   atoi(row["reactions_eyes"]),
		},
	}
}

func issueFields(issue model.IssueRecord) []string {
	return []string{
		strconv.Itoa(issue.Number),
		issue.Title,
		issue.Body,
		issue.HTMLURL,
		issue.State,
		issue.StateReason,
		formatTime(issue.CreatedAt),
		formatTime(issue.UpdatedAt),
		issue.ClosedAt,
		strconv.Itoa(issue.CommentsCount),
		joinList(issue.Labels),
		issue.Author,
		issue.AuthorAssociation,
		joinList(issue.Assignees),
		issue.Milestone,
		strconv.FormatBool(issue.IsPullRequest),
		strconv.FormatBool(issue.Locked),
		issue.ClosedBy,
		strconv.Itoa(issue.Reactions.Total),
		strconv.Itoa(issue.Reactions.Plus1),
		strconv.Itoa(issue.Reactions.Minus1),
		strconv.Itoa(issue.Reactions.Heart),
		strconv.Itoa(issue.Reactions.Hooray),
		strconv.Itoa(issue.Reactions.Rocket),
		strconv.Itoa(issue.Reactions.Eyes),
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
