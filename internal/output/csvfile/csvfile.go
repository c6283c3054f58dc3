// Package csvfile writes classified issues to a CSV file, buffering rows so
// the output lands atomically with a complete header even for empty runs.
package csvfile

import (
	"context"
	"sync"

	"github.com/driftwoodlabs/issuesift/internal/csvio"
	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Output collects classified issues and writes the full CSV on Close.
type Output struct {
	mu     sync.Mutex
	path   string
	issues []model.ClassifiedIssue
}

// New creates a CSV file output targeting path.
func New(path string) *Output {
	return &Output{path: path}
}

func (o *Output) Write(_ context.Context, issue model.ClassifiedIssue) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.issues = append(o.issues, issue)
	return nil
}

// Close writes the collected rows (base + classification columns) to disk.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return csvio.WriteClassified(o.path, o.issues)
}
