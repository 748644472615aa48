package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuesmaOrg/git-time-extractor/internal/extract"
	"github.com/QuesmaOrg/git-time-extractor/internal/git"
	"github.com/QuesmaOrg/git-time-extractor/internal/report"
)

var (
	reportOutput string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Write the daily time report",
	Long: `Write one row per day with the commit count, referenced stories and the
estimated time spent, as CSV (default), JSON or markdown.

The report is always written to stdout; use a pipe to save it.

Examples:
  git-time-extractor report > timesheet.csv
  git-time-extractor report ../webapp --project "Roof Registry"
  git-time-extractor report --format=json -n 200`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyHistoryFlags(cmd, args, cfg); err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = reportOutput
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = reportFormat
		}

		// Reject the output target before touching the repository
		out, err := report.OpenSink(cfg.Output, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		opts, err := extract.OptionsFromConfig(cfg)
		if err != nil {
			return err
		}

		src, err := git.NewSource(cfg.Source, cfg.Repository, logger)
		if err != nil {
			return err
		}

		return extract.New(src, opts, logger).WriteReport(cmd.Context(), out)
	},
}

func init() {
	addHistoryFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", report.StdoutTarget, "Output target (only - for stdout is supported)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "csv", "Output format: csv, json or markdown")
	rootCmd.AddCommand(reportCmd)
}
