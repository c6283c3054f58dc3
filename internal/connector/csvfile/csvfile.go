// Package csvfile provides a connector.Source that reads previously
// fetched issues from a raw-issues CSV.
package csvfile

import (
	"context"

	"github.com/driftwoodlabs/issuesift/internal/connector"
	"github.com/driftwoodlabs/issuesift/internal/csvio"
	"github.com/driftwoodlabs/issuesift/internal/model"
)

func init() {
	connector.Register("csvfile", func() connector.Source {
		return &Source{}
	})
}

// Source implements connector.Source over a local CSV file.
type Source struct{}

// Fetch reads all issue records from cfg.Path. Target is ignored: a local
// file is read in full.
func (s *Source) Fetch(_ context.Context, cfg connector.SourceConfig) ([]model.IssueRecord, error) {
	return csvio.ReadIssues(cfg.Path)
}
