// Package connector defines the issue-source interface and the provider
// registry the CLI resolves sources from.
package connector

import (
	"context"
	"fmt"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Source fetches a batch of raw issue records from an issue tracker or file.
type Source interface {
	Fetch(ctx context.Context, cfg SourceConfig) ([]model.IssueRecord, error)
}

// SourceConfig holds provider-specific fetch settings.
type SourceConfig struct {
	// GitHub settings.
	Owner  string
	Repo   string
	Token  string
	State  string // "open", "closed", or "all"
	Target int    // number of issues to fetch

	// File settings.
	Path string
}

// Constructor creates a new Source instance.
type Constructor func() Source

var registry = map[string]Constructor{}

// Register adds a source constructor under the given provider name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the source constructor for the given provider name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown source provider: %s", name)
	}
	return ctor, nil
}

// Providers returns the names of all registered source providers.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
