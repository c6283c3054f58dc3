// Package github fetches issues from the GitHub REST API with pagination
// and rate-limit awareness.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/driftwoodlabs/issuesift/internal/connector"
	"github.com/driftwoodlabs/issuesift/internal/connector/httpclient"
	"github.com/driftwoodlabs/issuesift/internal/model"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100 // GitHub API max
	pageDelay      = 500 * time.Millisecond
)

func init() {
	connector.Register("github", func() connector.Source {
		return &Source{}
	})
}

// Source implements connector.Source against the GitHub issues endpoint.
type Source struct {
	// BaseURL overrides the GitHub API endpoint, for tests.
	BaseURL string
	// PageDelay overrides the politeness delay between pages, for tests.
	PageDelay time.Duration
}

// Fetch pages through /repos/{owner}/{repo}/issues sorted by creation date
// descending until cfg.Target issues are collected or the listing ends.
// A 403 (primary rate limit exhausted) stops pagination and returns what
// was collected so far rather than failing the run.
func (s *Source) Fetch(ctx context.Context, cfg connector.SourceConfig) ([]model.IssueRecord, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	delay := s.PageDelay
	if delay == 0 {
		delay = pageDelay
	}
	state := cfg.State
	if state == "" {
		state = "open"
	}

	client := httpclient.New(baseURL, cfg.Token,
		httpclient.WithHeader("Accept", "application/vnd.github+json"),
		httpclient.WithHeader("X-GitHub-Api-Version", "2022-11-28"),
	)
	path := fmt.Sprintf("/repos/%s/%s/issues", cfg.Owner, cfg.Repo)

	var issues []model.IssueRecord
	for page := 1; len(issues) < cfg.Target; page++ {
		query := url.Values{
			"state":     {state},
			"page":      {strconv.Itoa(page)},
			"per_page":  {strconv.Itoa(perPage)},
			"sort":      {"created"},
			"direction": {"desc"},
		}

		var batch []apiIssue
		err := client.GetJSON(ctx, path, query, &batch)
		if err != nil {
			var apiErr *httpclient.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
				slog.Warn("github: rate limit exhausted, stopping pagination",
					"page", page, "collected", len(issues))
				break
			}
			return nil, fmt.Errorf("github: fetch page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break
		}

		for _, raw := range batch {
			issues = append(issues, raw.toRecord())
		}
		slog.Debug("github: fetched page", "page", page, "batch", len(batch), "total", len(issues))

		if len(issues) >= cfg.Target {
			break
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	if len(issues) > cfg.Target {
		issues = issues[:cfg.Target]
	}
	return issues, nil
}

// apiIssue mirrors the subset of the GitHub issue object the toolkit keeps.
type apiIssue struct {
	Number            int        `json:"number"`
	Title             string     `json:"title"`
	Body              *string    `json:"body"`
	HTMLURL           string     `json:"html_url"`
	State             string     `json:"state"`
	StateReason       string     `json:"state_reason"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ClosedAt          string     `json:"closed_at"`
	Comments          int        `json:"comments"`
	Labels            []apiLabel `json:"labels"`
	User              apiUser    `json:"user"`
	AuthorAssociation string     `json:"author_association"`
	Assignees         []apiUser  `json:"assignees"`
	Milestone         *struct {
		Title string `json:"title"`
	} `json:"milestone"`
	PullRequest *struct{} `json:"pull_request"`
	Locked      bool      `json:"locked"`
	ClosedBy    *apiUser  `json:"closed_by"`
	Reactions   struct {
		TotalCount int `json:"total_count"`
		Plus1      int `json:"+1"`
		Minus1     int `json:"-1"`
		Heart      int `json:"heart"`
		Hooray     int `json:"hooray"`
		Rocket     int `json:"rocket"`
		Eyes       int `json:"eyes"`
	} `json:"reactions"`
}

type apiLabel struct {
	Name string `json:"name"`
}

type apiUser struct {
	Login string `json:"login"`
}

func (a apiIssue) toRecord() model.IssueRecord {
	labels := make([]string, 0, len(a.Labels))
	for _, l := range a.Labels {
		labels = append(labels, l.Name)
	}
	assignees := make([]string, 0, len(a.Assignees))
	for _, u := range a.Assignees {
		assignees = append(assignees, u.Login)
	}

	body := ""
	if a.Body != nil {
		// Collapse whitespace so bodies stay single-line in CSV cells.
		body = strings.Join(strings.Fields(*a.Body), " ")
	}

	rec := model.IssueRecord{
		Number:            a.Number,
		Title:             a.Title,
		Body:              body,
		HTMLURL:           a.HTMLURL,
		State:             a.State,
		StateReason:       a.StateReason,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		ClosedAt:          a.ClosedAt,
		CommentsCount:     a.Comments,
		Labels:            labels,
		Author:            a.User.Login,
		AuthorAssociation: a.AuthorAssociation,
		Assignees:         assignees,
		IsPullRequest:     a.PullRequest != nil,
		Locked:            a.Locked,
		Reactions: model.Reactions{
			Total:  a.Reactions.TotalCount,
			Plus1:  a.Reactions.Plus1,
			Minus1: a.Reactions.Minus1,
			Heart:  a.Reactions.Heart,
			Hooray: a.Reactions.Hooray,
			Rocket: a.Reactions.Rocket,
			Eyes:   a.Reactions.Eyes,
		},
	}
	if a.Milestone != nil {
		rec.Milestone = a.Milestone.Title
	}
	if a.ClosedBy != nil {
		rec.ClosedBy = a.ClosedBy.Login
	}
	return rec
}
