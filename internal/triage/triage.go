// Package triage assigns a P0-P4 priority to each classified issue by
// asking an external reasoning service and parsing its CSV-style reply.
package triage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

const systemPrompt = `You are a Senior Technical Product Manager. Your goal is to triage GitHub issues using a strict P0-P4 framework to optimize engineering velocity and risk management.

Evaluate each issue based on the following Priority Logic:

1. P0: Critical / Existential (Immediate Hotfix)
   - Definition: Issues costing significant money, brand trust, or causing liability.
   - Triggers: Security vulnerabilities (exposed API keys, secrets), Data Corruption, Total System Outages, or Unbounded Resource Consumption (e.g., infinite loops costing tokens).
   - Label hints: area:security, privacy, data-loss.

2. P1: High Impact / Blocker (Next Cycle)
   - Definition: Issues causing significant friction where workarounds are costly or error-prone.
   - Triggers: Core workflow failures (e.g., Session Context loss, Authentication loops), Viral complaints (>50 reactions OR >20 comments), or Blockers for strategic adoption.

3. P2: Standard / Quality of Life (3 Months)
   - Definition: Important fixes that should happen at a steady cadence. Workarounds are easy/known.
   - Triggers: Cosmetic bugs, Non-blocking UI glitches, Edge-case failures, TUI formatting issues.

4. P3: Minor / Backlog (6 Months)
   - Definition: Tasks we should do, but aren't harming us greatly.
   - Triggers: Typos, minor documentation fixes, "Paper Cut" issues.

5. P4: Won't Do / Icebox
   - Definition: Items below the value line or not worth the setup time.
   - Triggers: Vague requests, duplicates, or issues likely resolved implicitly by future architecture changes.

Task: Analyze the issue data provided and return the result in CSV format with three columns: issue_number, priority, and reasoning.

Format: issue_number,priority,"reasoning"
Constraint: Enclose the reasoning in double quotes. Do not output a header row. Do not include Markdown.`

// bodySnippetLen bounds how much of the issue body goes into the prompt.
const bodySnippetLen = 300

// RetryPolicy controls how service failures are retried. Delays scale
// linearly with the attempt number.
type RetryPolicy struct {
	MaxAttempts    int
	RateLimitDelay time.Duration
	APIErrorDelay  time.Duration
}

// DefaultRetryPolicy matches the service's documented rate-limit guidance.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		RateLimitDelay: 5 * time.Second,
		APIErrorDelay:  2 * time.Second,
	}
}

// Triager runs the per-issue triage state machine.
type Triager struct {
	reasoner   Reasoner
	policy     RetryPolicy
	issueDelay time.Duration
	sleep      func(time.Duration)
}

// Option customizes a Triager.
type Option func(*Triager)

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(t *Triager) { t.policy = p }
}

// WithIssueDelay sets the pause between issues.
func WithIssueDelay(d time.Duration) Option {
	return func(t *Triager) { t.issueDelay = d }
}

// WithSleep replaces the sleep function, for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(t *Triager) { t.sleep = fn }
}

// New creates a Triager over the given reasoner.
func New(r Reasoner, opts ...Option) *Triager {
	t := &Triager{
		reasoner:   r,
		policy:     DefaultRetryPolicy(),
		issueDelay: 500 * time.Millisecond,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TriageAll processes issues in order, one result per input issue. A
// failed issue lands in the Error state rather than aborting the run;
// only context cancellation stops early.
func (t *Triager) TriageAll(ctx context.Context, issues []model.ClassifiedIssue) ([]model.PriorityResult, error) {
	results := make([]model.PriorityResult, 0, len(issues))
	for i, issue := range issues {
		slog.Info("triage: processing issue", "number", issue.Number)

		reply, err := t.complete(ctx, issue)
		switch {
		case err != nil && ctx.Err() != nil:
			return results, ctx.Err()
		case err != nil:
			results = append(results, errorResult(issue.Number, "No response from API"))
		default:
			results = append(results, ParseReply(issue.Number, reply))
		}

		// Politeness throttle, applied regardless of outcome.
		if i < len(issues)-1 {
			t.sleep(t.issueDelay)
		}
	}
	return results, nil
}

// complete calls the reasoner with retries. Rate limits back off longer
// than ordinary API errors; a malformed reply is not retried at all,
// since the service answered and another attempt changes nothing.
func (t *Triager) complete(ctx context.Context, issue model.ClassifiedIssue) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= t.policy.MaxAttempts; attempt++ {
		reply, err := t.reasoner.Complete(ctx, systemPrompt, userMessage(issue))
		if err == nil {
			return strings.TrimSpace(reply), nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", err
		}

		var delay time.Duration
		switch {
		case errors.Is(err, ErrMalformedResponse):
			slog.Warn("triage: unusable reply", "number", issue.Number, "error", err)
			return "", err
		case errors.Is(err, ErrRateLimited):
			slog.Warn("triage: rate limited", "number", issue.Number, "attempt", attempt)
			delay = t.policy.RateLimitDelay * time.Duration(attempt)
		default:
			slog.Warn("triage: API error", "number", issue.Number, "attempt", attempt, "error", err)
			delay = t.policy.APIErrorDelay * time.Duration(attempt)
		}
		if attempt < t.policy.MaxAttempts {
			t.sleep(delay)
		}
	}
	return "", lastErr
}

func userMessage(issue model.ClassifiedIssue) string {
	body := issue.Body
	if runes := []rune(body); len(runes) > bodySnippetLen {
		body = string(runes[:bodySnippetLen])
	}
	return fmt.Sprintf(`Input Data for this row:
Issue Number: %d
Title: %s
Labels: %s
Category: %s
Sentiment: %s
Reactions: %d
Comments: %d
Description Snippet: %s`,
		issue.Number,
		issue.Title,
		strings.Join(issue.Labels, ", "),
		issue.Classification.IssueType,
		issue.Classification.Sentiment,
		issue.Reactions.Total,
		issue.CommentsCount,
		body,
	)
}
