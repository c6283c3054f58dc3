package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

func TestParseReplyValid(t *testing.T) {
	r := ParseReply(12345, `12345,P1,"Core workflow failure with costly workaround"`)

	assert.True(t, r.Assigned())
	assert.Equal(t, 12345, r.IssueNumber)
	assert.Equal(t, model.P1, r.Priority)
	assert.Equal(t, "Core workflow failure with costly workaround", r.Reasoning)
}

func TestParseReplyTrimsWhitespace(t *testing.T) {
	r := ParseReply(7, "\n  7,P3,\"Minor typo\"  \n")
	assert.True(t, r.Assigned())
	assert.Equal(t, model.P3, r.Priority)
}

func TestParseReplyUsesReplyIssueNumber(t *testing.T) {
	// The service echoes the issue number it was given; trust it when it
	// parses, since it is what a human auditing the row will see.
	r := ParseReply(1, `42,P2,"Cosmetic"`)
	assert.Equal(t, 42, r.IssueNumber)
}

func TestParseReplyInvalidPriority(t *testing.T) {
	raw := `12345,P9,"Made-up bucket"`
	r := ParseReply(12345, raw)

	assert.False(t, r.Assigned())
	assert.Equal(t, model.PriorityError, r.Priority)
	assert.Equal(t, "Invalid priority: "+raw, r.Reasoning)
}

func TestParseReplyWrongFieldCount(t *testing.T) {
	raw := `12345,P1`
	r := ParseReply(12345, raw)

	assert.False(t, r.Assigned())
	assert.Equal(t, "Invalid format: "+raw, r.Reasoning)
}

func TestParseReplyMalformedCSV(t *testing.T) {
	raw := `12345,P1,"unterminated`
	r := ParseReply(12345, raw)

	assert.False(t, r.Assigned())
	assert.Equal(t, "Parse error: "+raw, r.Reasoning)
	assert.Equal(t, 12345, r.IssueNumber)
}

func TestParseReplyErrorNotAcceptedAsPriority(t *testing.T) {
	raw := `12345,ERROR,"self-reported failure"`
	r := ParseReply(12345, raw)

	assert.False(t, r.Assigned())
	assert.Equal(t, "Invalid priority: "+raw, r.Reasoning)
}
