package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwoodlabs/issuesift/internal/validate"
)

var validateFlags struct {
	input      string
	priorities string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a classified issue table for quality problems",
	Long: `Validate the classified CSV (and optionally the triage CSV) for
missing columns, empty values, out-of-domain categories, and duplicate
issue numbers. Exits non-zero when any error-level finding is present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := validate.File(validateFlags.input, validateFlags.priorities)
		if err != nil {
			return err
		}

		fmt.Printf("Validated %d rows\n", report.Rows)
		for _, f := range report.Findings {
			fmt.Printf("  [%s] %s\n", f.Level, f.Message)
		}
		if !report.OK() {
			return fmt.Errorf("validation failed with errors")
		}
		if len(report.Findings) == 0 {
			fmt.Println("No problems found.")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFlags.input, "input", "classified_issues.csv", "classified issues CSV path")
	validateCmd.Flags().StringVar(&validateFlags.priorities, "priorities", "", "triage priorities CSV path")
	rootCmd.AddCommand(validateCmd)
}
