package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwoodlabs/issuesift/internal/csvio"
	"github.com/driftwoodlabs/issuesift/internal/triage"
)

var triageFlags struct {
	input string
	out   string
	limit int
}

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Assign P0-P4 priorities to classified issues",
	Long: `Send each classified issue to the reasoning service and record the
priority and reasoning it returns.

Issues whose replies fail validation, or that never get a reply, are
written with priority ERROR and the raw reply preserved for audit. The
run continues past failed issues.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Anthropic.Validate(); err != nil {
			return err
		}
		issues, err := csvio.ReadClassified(triageFlags.input)
		if err != nil {
			return err
		}
		if triageFlags.limit > 0 && len(issues) > triageFlags.limit {
			issues = issues[:triageFlags.limit]
		}

		client := triage.NewAnthropicClient(
			cfg.Anthropic.APIKey,
			cfg.Anthropic.Model,
			cfg.Anthropic.MaxTokens,
			triage.WithTimeout(cfg.Anthropic.Timeout),
		)
		t := triage.New(client,
			triage.WithRetryPolicy(triage.RetryPolicy{
				MaxAttempts:    cfg.Anthropic.MaxAttempts,
				RateLimitDelay: cfg.Anthropic.RateLimitDelay,
				APIErrorDelay:  cfg.Anthropic.APIErrorDelay,
			}),
			triage.WithIssueDelay(cfg.Anthropic.IssueDelay),
		)

		results, err := t.TriageAll(cmd.Context(), issues)
		// Write whatever finished even when the context was cancelled.
		if werr := csvio.WritePriorities(triageFlags.out, results); werr != nil {
			return werr
		}
		if err != nil {
			return err
		}

		assigned := 0
		for _, r := range results {
			if r.Assigned() {
				assigned++
			}
		}
		fmt.Printf("Triaged %d issues (%d assigned, %d errors) to %s\n",
			len(results), assigned, len(results)-assigned, triageFlags.out)
		return nil
	},
}

func init() {
	triageCmd.Flags().StringVar(&triageFlags.input, "input", "classified_issues.csv", "classified issues CSV path")
	triageCmd.Flags().StringVar(&triageFlags.out, "out", "prioritized_issues.csv", "output CSV path")
	triageCmd.Flags().IntVar(&triageFlags.limit, "limit", 0, "triage only the first N issues (0 = all)")
	rootCmd.AddCommand(triageCmd)
}
