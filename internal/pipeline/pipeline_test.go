package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwoodlabs/issuesift/internal/connector"
	"github.com/driftwoodlabs/issuesift/internal/engine"
	"github.com/driftwoodlabs/issuesift/internal/engine/rules"
	"github.com/driftwoodlabs/issuesift/internal/model"
	"github.com/driftwoodlabs/issuesift/internal/taxonomy"
)

type stubSource struct {
	issues []model.IssueRecord
	err    error
}

func (s *stubSource) Fetch(context.Context, connector.SourceConfig) ([]model.IssueRecord, error) {
	return s.issues, s.err
}

type captureOutput struct {
	written []model.ClassifiedIssue
	failOn  int // 1-based write index to fail at, 0 = never
	closed  bool
}

func (o *captureOutput) Write(_ context.Context, issue model.ClassifiedIssue) error {
	if o.failOn > 0 && len(o.written)+1 == o.failOn {
		return errors.New("sink full")
	}
	o.written = append(o.written, issue)
	return nil
}

func (o *captureOutput) Close() error {
	o.closed = true
	return nil
}

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	tax := taxonomy.New([]taxonomy.Row{
		{L1Code: "L1.1", L1Category: "Core Runtime", L2Code: "L2.1.1", Keywords: "context"},
	})
	return engine.New(rules.Default(), tax)
}

func TestRunClassifiesAllInOrder(t *testing.T) {
	src := &stubSource{issues: []model.IssueRecord{
		{Number: 1, Title: "Context lost twice in context window"},
		{Number: 2, Title: "Unrelated"},
	}}
	out := &captureOutput{}
	p := New(src, testEngine(t), out)

	n, err := p.Run(context.Background(), connector.SourceConfig{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, out.written, 2)
	assert.Equal(t, 1, out.written[0].Number)
	assert.Equal(t, 2, out.written[1].Number)
	// Every written row carries a populated classification.
	assert.NotEmpty(t, out.written[0].Classification.Confidence)
	assert.NotEmpty(t, out.written[1].Classification.Confidence)
}

func TestRunFetchError(t *testing.T) {
	src := &stubSource{err: errors.New("network down")}
	p := New(src, testEngine(t), &captureOutput{})

	_, err := p.Run(context.Background(), connector.SourceConfig{})
	assert.ErrorContains(t, err, "network down")
}

func TestRunOutputError(t *testing.T) {
	src := &stubSource{issues: []model.IssueRecord{{Number: 1}, {Number: 2}}}
	out := &captureOutput{failOn: 2}
	p := New(src, testEngine(t), out)

	n, err := p.Run(context.Background(), connector.SourceConfig{})
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestClose(t *testing.T) {
	out := &captureOutput{}
	p := New(&stubSource{}, testEngine(t), out)
	require.NoError(t, p.Close())
	assert.True(t, out.closed)
}
