package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwoodlabs/issuesift/internal/csvio"
	"github.com/driftwoodlabs/issuesift/internal/model"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func TestClassifyCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	taxonomy := "L1_Code,L1_Category,L1_Description,L2_Code,L2_Subcategory,L2_Description,Example_Keywords\n" +
		"L1.1,Core Runtime,desc,L2.1.1,Context Management,desc,\"context, token\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taxonomy.csv"), []byte(taxonomy), 0o644))

	input := filepath.Join(dir, "issues.csv")
	require.NoError(t, csvio.WriteIssues(input, []model.IssueRecord{
		{Number: 1, Title: "Context window exceeded", Body: "token limit reached"},
		{Number: 2, Title: "Lorem ipsum"},
	}))

	out := filepath.Join(dir, "classified.csv")
	require.NoError(t, runCommand(t, "classify", "--input", input, "--out", out))

	classified, err := csvio.ReadClassified(out)
	require.NoError(t, err)
	require.Len(t, classified, 2)
	assert.Equal(t, "L1.1", classified[0].Classification.L1Code)
	assert.Equal(t, model.CodeOther, classified[1].Classification.L1Code)
}

func TestValidateCommandFailsOnBadSchema(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("issue_number,title\n1,Hi\n"), 0o644))

	err := runCommand(t, "validate", "--input", path)
	assert.Error(t, err)
}

func TestFetchCommandRequiresOwnerAndRepo(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := runCommand(t, "fetch")
	assert.Error(t, err)
}
