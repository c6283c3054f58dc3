// Package output defines the interface classified-issue sinks implement.
package output

import (
	"context"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Output is a destination for classified issues.
type Output interface {
	Write(ctx context.Context, issue model.ClassifiedIssue) error
	Close() error
}
