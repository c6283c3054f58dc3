// Package multi fans classified issues out to several outputs.
package multi

import (
	"context"
	"errors"

	"github.com/driftwoodlabs/issuesift/internal/model"
	"github.com/driftwoodlabs/issuesift/internal/output"
)

// Output writes each issue to every wrapped output in order.
type Output struct {
	outputs []output.Output
}

// New creates a multi Output over the given destinations.
func New(outputs ...output.Output) *Output {
	return &Output{outputs: outputs}
}

func (o *Output) Write(ctx context.Context, issue model.ClassifiedIssue) error {
	for _, out := range o.outputs {
		if err := out.Write(ctx, issue); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all wrapped outputs, returning the combined errors.
func (o *Output) Close() error {
	var errs []error
	for _, out := range o.outputs {
		if err := out.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
