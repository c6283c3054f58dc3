package csvfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwoodlabs/issuesift/internal/csvio"
	"github.com/driftwoodlabs/issuesift/internal/model"
)

func TestWriteThenClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classified.csv")
	out := New(path)

	issue := model.ClassifiedIssue{
		IssueRecord: model.IssueRecord{Number: 5, Title: "Hello"},
		Classification: model.ClassificationResult{
			IssueType:  model.TypeBug,
			Summary:    "Hello",
			Sentiment:  model.SentimentNeutral,
			L1Code:     "L1.1",
			L1Category: "Core Runtime",
			L2Code:     model.CodeOther,
			L2Category: model.CodeOther,
			Confidence: model.ConfidenceLow,
			Notes:      "Weak L2 match (score=1)",
		},
	}
	require.NoError(t, out.Write(context.Background(), issue))
	require.NoError(t, out.Close())

	got, err := csvio.ReadClassified(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, issue, got[0])
}

func TestCloseEmptyStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	out := New(path)
	require.NoError(t, out.Close())

	table, err := csvio.ReadTable(path)
	require.NoError(t, err)
	assert.True(t, table.HasColumn("Category"))
	assert.Empty(t, table.Rows)
}
