// Package stdout writes classified issues to standard output as NDJSON.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Output writes JSON-encoded classified issues, one per line.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output with optional pretty-printed JSON.
func New(pretty bool) *Output {
	return NewWriter(os.Stdout, pretty)
}

// NewWriter creates an Output targeting an arbitrary writer, for tests.
func NewWriter(w io.Writer, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, issue model.ClassifiedIssue) error {
	if err := o.enc.Encode(issue); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
