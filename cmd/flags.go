package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuesmaOrg/git-time-extractor/internal/config"
)

// Flags shared by the commands that read history
var (
	projectFlag     string
	maxCommitsFlag  int
	sourceFlag      string
	legacyFloorFlag bool
)

func addHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project name echoed into every row")
	cmd.Flags().IntVarP(&maxCommitsFlag, "max-commits", "n", 1000, "Number of most recent commits to read")
	cmd.Flags().StringVar(&sourceFlag, "source", "git", "Commit source: git (binary) or go-git (in-process)")
	cmd.Flags().BoolVar(&legacyFloorFlag, "legacy-floor", false, "Count the second commit as 30 minutes too, like git_time_extractor 0.2")
}

// applyHistoryFlags overrides cfg with flags set on the command line and
// the optional repository argument, then validates the result
func applyHistoryFlags(cmd *cobra.Command, args []string, c *config.Config) error {
	if len(args) > 0 {
		c.Repository = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("project") {
		c.Project = projectFlag
	}
	if flags.Changed("max-commits") {
		c.MaxCommits = maxCommitsFlag
	}
	if flags.Changed("source") {
		c.Source = sourceFlag
	}
	if flags.Changed("legacy-floor") {
		c.Estimate.LegacyFloor = legacyFloorFlag
	}
	return c.Validate()
}
