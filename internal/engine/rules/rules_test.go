package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrdering(t *testing.T) {
	s := Default()
	require.NotEmpty(t, s.Labels)

	// area:core must precede area:mcp so that dual-labeled issues land
	// in the core family.
	coreIdx, mcpIdx := -1, -1
	for i, rule := range s.Labels {
		switch rule.Label {
		case "area:core":
			coreIdx = i
		case "area:mcp":
			mcpIdx = i
		}
	}
	require.NotEqual(t, -1, coreIdx)
	require.NotEqual(t, -1, mcpIdx)
	assert.Less(t, coreIdx, mcpIdx)

	assert.Equal(t, "area:security", s.Labels[len(s.Labels)-1].Label)
	assert.Equal(t, "L1.10", s.Labels[len(s.Labels)-1].L1)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `labels:
  - label: "team:infra"
    l1: "L1.2"
phrases:
  - l2: "L2.2.1"
    phrases: ["deployment", "rollout"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, s.Labels, 1)
	assert.Equal(t, "team:infra", s.Labels[0].Label)
	assert.Equal(t, "L1.2", s.Labels[0].L1)
	require.Len(t, s.Phrases, 1)
	assert.Equal(t, []string{"deployment", "rollout"}, s.Phrases[0].Phrases)
}

func TestLoadFilePartialFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `labels:
  - label: "team:infra"
    l1: "L1.2"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Labels, 1)
	// The missing phrases section falls back to the built-in table.
	assert.Equal(t, Default().Phrases, s.Phrases)
}

func TestLoadFileEmptySectionDisablesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `labels: []
phrases:
  - l2: "L2.2.1"
    phrases: ["deployment"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	// An explicitly empty section is honored, not replaced by defaults.
	assert.Empty(t, s.Labels)
	require.Len(t, s.Phrases, 1)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
