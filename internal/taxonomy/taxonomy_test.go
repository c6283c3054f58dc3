package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

const sampleCSV = `L1_Code,L1_Category,L1_Description,L2_Code,L2_Subcategory,L2_Description,Example_Keywords
L1.1,Core Runtime,The core loop,L2.1.1,Context Management,Token windows,"Context, Token Limit, compact"
L1.1,Core Runtime,The core loop,L2.1.2,Session Handling,Sessions,"session, resume"
L1.5,MCP,Protocol servers,L2.5.2,MCP Connections,Auth,"oauth, discovery"
`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())

	groups := table.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "L1.1", groups[0].Code)
	assert.Equal(t, "L1.5", groups[1].Code)

	// Duplicate L1 rows accumulate into one group.
	require.Len(t, groups[0].L2Options, 2)
	assert.Equal(t, "L2.1.1", groups[0].L2Options[0].Code)
	assert.Equal(t, "L2.1.2", groups[0].L2Options[1].Code)

	// Keywords are lowercased and trimmed.
	assert.Equal(t, []string{"context", "token limit", "compact"}, groups[0].L2Options[0].Keywords)
}

func TestParseColumnOrderIndependent(t *testing.T) {
	reordered := `L2_Code,L1_Code,Example_Keywords,L1_Category,L2_Subcategory
L2.1.1,L1.1,"context",Core Runtime,Context Management
`
	table, err := Parse(strings.NewReader(reordered))
	require.NoError(t, err)

	group, ok := table.Group("L1.1")
	require.True(t, ok)
	assert.Equal(t, "Core Runtime", group.Category)
	require.Len(t, group.L2Options, 1)
	assert.Equal(t, []string{"context"}, group.L2Options[0].Keywords)
}

func TestNames(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "Core Runtime", table.L1Name("L1.1"))
	assert.Equal(t, "MCP Connections", table.L2Name("L2.5.2"))
	assert.Equal(t, model.CodeOther, table.L1Name("L1.99"))
	assert.Equal(t, model.CodeOther, table.L2Name("bogus"))
}

func TestNewLastWriterWins(t *testing.T) {
	table := New([]Row{
		{L1Code: "L1.1", L1Category: "First", L2Code: "L2.1.1"},
		{L1Code: "L1.1", L1Category: "Second", L2Code: "L2.1.2"},
	})

	group, ok := table.Group("L1.1")
	require.True(t, ok)
	assert.Equal(t, "Second", group.Category)
	assert.Len(t, group.L2Options, 2)
}

func TestGroupUnknown(t *testing.T) {
	table := New(nil)
	_, ok := table.Group("L1.1")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}
