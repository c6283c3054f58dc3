package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwoodlabs/issuesift/internal/connector"
	"github.com/driftwoodlabs/issuesift/internal/engine"
	"github.com/driftwoodlabs/issuesift/internal/engine/rules"
	"github.com/driftwoodlabs/issuesift/internal/output"
	outcsv "github.com/driftwoodlabs/issuesift/internal/output/csvfile"
	"github.com/driftwoodlabs/issuesift/internal/output/multi"
	"github.com/driftwoodlabs/issuesift/internal/output/stdout"
	"github.com/driftwoodlabs/issuesift/internal/pipeline"
	"github.com/driftwoodlabs/issuesift/internal/taxonomy"
)

var classifyFlags struct {
	input    string
	taxPath  string
	rulePath string
	out      string
	emitJSON bool
	pretty   bool
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify fetched issues into the two-level taxonomy",
	Long: `Run the heuristic classification engine over a raw issue CSV.

Each issue gets an issue type, a one-line summary, a sentiment, an L1/L2
taxonomy assignment with a confidence grade, and diagnostic notes. Rows
that match nothing land in the Other bucket instead of failing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		taxPath := cfg.Classify.TaxonomyPath
		if classifyFlags.taxPath != "" {
			taxPath = classifyFlags.taxPath
		}
		tax, err := taxonomy.Load(taxPath)
		if err != nil {
			return err
		}

		ruleSet := rules.Default()
		rulePath := cfg.Classify.RulesPath
		if classifyFlags.rulePath != "" {
			rulePath = classifyFlags.rulePath
		}
		if rulePath != "" {
			if ruleSet, err = rules.LoadFile(rulePath); err != nil {
				return err
			}
		}

		ctor, err := connector.Get("csvfile")
		if err != nil {
			return err
		}

		outputs := []output.Output{outcsv.New(classifyFlags.out)}
		if classifyFlags.emitJSON {
			outputs = append(outputs, stdout.New(classifyFlags.pretty))
		}

		p := pipeline.New(ctor(), engine.New(ruleSet, tax), multi.New(outputs...))
		n, err := p.Run(cmd.Context(), connector.SourceConfig{Path: classifyFlags.input})
		if err != nil {
			return err
		}
		if err := p.Close(); err != nil {
			return err
		}
		fmt.Printf("Classified %d issues to %s\n", n, classifyFlags.out)
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyFlags.input, "input", "issues.csv", "raw issues CSV path")
	classifyCmd.Flags().StringVar(&classifyFlags.taxPath, "taxonomy", "", "taxonomy CSV path")
	classifyCmd.Flags().StringVar(&classifyFlags.rulePath, "rules", "", "heuristic rules YAML path (built-in rules when empty)")
	classifyCmd.Flags().StringVar(&classifyFlags.out, "out", "classified_issues.csv", "output CSV path")
	classifyCmd.Flags().BoolVar(&classifyFlags.emitJSON, "json", false, "also emit classified issues as NDJSON on stdout")
	classifyCmd.Flags().BoolVar(&classifyFlags.pretty, "pretty", false, "indent the NDJSON output")
	rootCmd.AddCommand(classifyCmd)
}
