// Package cli wires the issuesift subcommands: fetch, classify, triage,
// report, and validate.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwoodlabs/issuesift/internal/config"
	"github.com/driftwoodlabs/issuesift/internal/logging"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	cfgPath  string
	logLevel string
	jsonLogs bool

	// cfg is loaded once in the root PersistentPreRunE and read by all
	// subcommands.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "issuesift",
	Short: "Fetch, classify, and triage GitHub issue backlogs",
	Long: `issuesift is a pipeline for analyzing GitHub issue backlogs.

It fetches issues from a repository, classifies each one into a two-level
taxonomy with keyword and label heuristics, assigns a P0-P4 priority via
an external reasoning service, and renders the results as a dashboard or
markdown report. Each stage reads and writes CSV so runs can be resumed
or inspected between steps.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logging.Setup(logging.ParseLevel(level), jsonLogs || cfg.Log.JSON)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("issuesift %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ./issuesift.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
