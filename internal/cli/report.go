package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftwoodlabs/issuesift/internal/csvio"
	"github.com/driftwoodlabs/issuesift/internal/model"
	"github.com/driftwoodlabs/issuesift/internal/report"
)

var reportFlags struct {
	input      string
	priorities string
	markdown   string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render backlog statistics from classified and triaged issues",
	Long: `Aggregate the classified issue table, joined with triage priorities
when available, and print a dashboard to the terminal. With --markdown
the same summary is also written as a markdown document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		issues, err := csvio.ReadClassified(reportFlags.input)
		if err != nil {
			return err
		}

		var priorities []model.PriorityResult
		if reportFlags.priorities != "" {
			if priorities, err = csvio.ReadPriorities(reportFlags.priorities); err != nil {
				return err
			}
		}

		summary := report.Aggregate(csvio.Merge(issues, priorities))
		fmt.Print(report.Render(summary))

		if reportFlags.markdown != "" {
			if err := os.WriteFile(reportFlags.markdown, []byte(report.Markdown(summary)), 0o644); err != nil {
				return fmt.Errorf("report: write %s: %w", reportFlags.markdown, err)
			}
			fmt.Printf("\nMarkdown report written to %s\n", reportFlags.markdown)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFlags.input, "input", "classified_issues.csv", "classified issues CSV path")
	reportCmd.Flags().StringVar(&reportFlags.priorities, "priorities", "", "triage priorities CSV path")
	reportCmd.Flags().StringVar(&reportFlags.markdown, "markdown", "", "also write a markdown report to this path")
	rootCmd.AddCommand(reportCmd)
}
