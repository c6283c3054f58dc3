package model

import "time"

// Reactions is the per-kind reaction breakdown GitHub attaches to an issue.
type Reactions struct {
	Total  int `json:"total"`
	Plus1  int `json:"plus1"`
	Minus1 int `json:"minus1"`
	Heart  int `json:"heart"`
	Hooray int `json:"hooray"`
	Rocket int `json:"rocket"`
	Eyes   int `json:"eyes"`
}

// IssueRecord is one fetched GitHub issue. Records are immutable once
// fetched; downstream stages annotate them, never mutate them.
type IssueRecord struct {
	Number            int       `json:"issue_number"`
	Title             string    `json:"title"`
	Body              string    `json:"body"`
	HTMLURL           string    `json:"html_url"`
	State             string    `json:"state"`
	StateReason       string    `json:"state_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	ClosedAt          string    `json:"closed_at,omitempty"`
	CommentsCount     int       `json:"comments_count"`
	Labels            []string  `json:"labels"`
	Author            string    `json:"author"`
	AuthorAssociation string    `json:"author_association,omitempty"`
	Assignees         []string  `json:"assignees,omitempty"`
	Milestone         string    `json:"milestone,omitempty"`
	IsPullRequest     bool      `json:"is_pull_request"`
	Locked            bool      `json:"locked"`
	ClosedBy          string    `json:"closed_by,omitempty"`
	Reactions         Reactions `json:"reactions"`
}

// ClassifiedIssue pairs an issue with its classification.
type ClassifiedIssue struct {
	IssueRecord
	Classification ClassificationResult `json:"classification"`
}

// EnrichedIssue is a classified issue joined with its triage outcome.
// Priority is empty when no triage row exists for the issue.
type EnrichedIssue struct {
	ClassifiedIssue
	Priority  Priority `json:"priority,omitempty"`
	Reasoning string   `json:"reasoning,omitempty"`
}
