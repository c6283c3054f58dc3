package model

// Priority is a P0-P4 triage bucket. PriorityError marks rows where the
// external judgment call failed validation or never produced a reply.
type Priority string

const (
	P0            Priority = "P0"
	P1            Priority = "P1"
	P2            Priority = "P2"
	P3            Priority = "P3"
	P4            Priority = "P4"
	PriorityError Priority = "ERROR"
)

// ValidPriority reports whether s is one of the five triage buckets.
// ERROR is deliberately not valid here: it is an outcome the triage
// stage assigns, never something the external service may claim.
func ValidPriority(s string) bool {
	switch Priority(s) {
	case P0, P1, P2, P3, P4:
		return true
	}
	return false
}

// PriorityResult is the triage outcome for one issue.
type PriorityResult struct {
	IssueNumber int      `json:"issue_number"`
	Priority    Priority `json:"priority"`
	Reasoning   string   `json:"reasoning"`
}

// Assigned reports whether the triage call reached a terminal Assigned
// state rather than the Error state.
func (r PriorityResult) Assigned() bool {
	return r.Priority != PriorityError
}
