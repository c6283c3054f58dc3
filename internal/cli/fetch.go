package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwoodlabs/issuesift/internal/connector"
	"github.com/driftwoodlabs/issuesift/internal/csvio"

	// Registered source providers.
	_ "github.com/driftwoodlabs/issuesift/internal/connector/csvfile"
	_ "github.com/driftwoodlabs/issuesift/internal/connector/github"
)

var fetchFlags struct {
	source string
	owner  string
	repo   string
	state  string
	target int
	input  string
	out    string
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch issues from a source into a CSV file",
	Long: `Fetch issues from GitHub (or re-read an existing CSV) and write them
as the raw issue table the classify stage consumes.

Pagination stops early on a rate-limit response; whatever was fetched so
far is still written out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gh := cfg.GitHub
		if fetchFlags.owner != "" {
			gh.Owner = fetchFlags.owner
		}
		if fetchFlags.repo != "" {
			gh.Repo = fetchFlags.repo
		}
		if cmd.Flags().Changed("state") {
			gh.State = fetchFlags.state
		}
		if cmd.Flags().Changed("target") {
			gh.Target = fetchFlags.target
		}
		if fetchFlags.source == "github" {
			if err := gh.Validate(); err != nil {
				return err
			}
		}

		ctor, err := connector.Get(fetchFlags.source)
		if err != nil {
			return err
		}
		issues, err := ctor().Fetch(cmd.Context(), connector.SourceConfig{
			Owner:  gh.Owner,
			Repo:   gh.Repo,
			Token:  gh.Token,
			State:  gh.State,
			Target: gh.Target,
			Path:   fetchFlags.input,
		})
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}

		if err := csvio.WriteIssues(fetchFlags.out, issues); err != nil {
			return err
		}
		fmt.Printf("Fetched %d issues to %s\n", len(issues), fetchFlags.out)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchFlags.source, "source", "github", "issue source provider (github, csvfile)")
	fetchCmd.Flags().StringVar(&fetchFlags.owner, "owner", "", "repository owner")
	fetchCmd.Flags().StringVar(&fetchFlags.repo, "repo", "", "repository name")
	fetchCmd.Flags().StringVar(&fetchFlags.state, "state", "all", "issue state filter (all, open, closed)")
	fetchCmd.Flags().IntVar(&fetchFlags.target, "target", 0, "number of issues to fetch")
	fetchCmd.Flags().StringVar(&fetchFlags.input, "input", "", "input CSV path (csvfile source only)")
	fetchCmd.Flags().StringVar(&fetchFlags.out, "out", "issues.csv", "output CSV path")
	rootCmd.AddCommand(fetchCmd)
}
