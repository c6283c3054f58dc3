// Package pipeline connects a source, the classification engine, and an
// output into a batch processing run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/driftwoodlabs/issuesift/internal/connector"
	"github.com/driftwoodlabs/issuesift/internal/engine"
	"github.com/driftwoodlabs/issuesift/internal/model"
	"github.com/driftwoodlabs/issuesift/internal/output"
)

// Pipeline fetches issues, classifies them one at a time in input order,
// and writes each result to the output.
type Pipeline struct {
	source connector.Source
	engine *engine.Engine
	output output.Output
}

// New creates a Pipeline from the given components.
func New(src connector.Source, eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{
		source: src,
		engine: eng,
		output: out,
	}
}

// Run executes one batch: fetch, classify, write. Returns the number of
// issues processed. Classification itself never fails (weak matches
// degrade to Other/Low rows), so errors come from the fetch or the sink.
func (p *Pipeline) Run(ctx context.Context, cfg connector.SourceConfig) (int, error) {
	issues, err := p.source.Fetch(ctx, cfg)
	if err != nil {
		return 0, fmt.Errorf("pipeline fetch: %w", err)
	}
	slog.Info("pipeline: classifying issues", "count", len(issues))

	for i, issue := range issues {
		classified := model.ClassifiedIssue{
			IssueRecord:    issue,
			Classification: p.engine.Classify(issue),
		}
		if err := p.output.Write(ctx, classified); err != nil {
			return i, fmt.Errorf("pipeline output: %w", err)
		}
	}
	return len(issues), nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
