package cmd

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/QuesmaOrg/git-time-extractor/internal/extract"
	"github.com/QuesmaOrg/git-time-extractor/internal/git"
	"github.com/QuesmaOrg/git-time-extractor/internal/show"
)

var (
	fullFlag          bool
	interactiveFlag   bool
	noInteractiveFlag bool
)

var showCmd = &cobra.Command{
	Use:   "show [repo-path]",
	Short: "Browse the estimated worklog",
	Long: `Display the estimated time per day and the commits behind it.

By default, opens an interactive TUI viewer when running in a terminal.
Use --no-interactive for a plain table (useful for piping).
Use --full to list every commit below the table in plain mode.

Examples:
  git-time-extractor show              # Browse the current repository
  git-time-extractor show ../webapp -n 200
  git-time-extractor show --no-interactive --full`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyHistoryFlags(cmd, args, cfg); err != nil {
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

		w, err := extract.New(src, opts, logger).Worklog(cmd.Context())
		if err != nil {
			return err
		}
		tree := show.BuildTree(w, opts.Weeks)

		// Determine if we should use interactive mode
		isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		useInteractive := (interactiveFlag || isTTY) && !noInteractiveFlag

		if useInteractive {
			return show.RunTUI(tree, projectTitle(cfg.Project, cfg.Repository))
		}
		return show.ShowWorklog(cmd.OutOrStdout(), tree, fullFlag)
	},
}

// projectTitle names the worklog in the status bar
func projectTitle(project, repoPath string) string {
	if project != "" {
		return project
	}
	if abs, err := filepath.Abs(repoPath); err == nil {
		return filepath.Base(abs)
	}
	return repoPath
}

func init() {
	addHistoryFlags(showCmd)
	showCmd.Flags().BoolVar(&fullFlag, "full", false, "List every commit in plain output")
	showCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Force interactive TUI mode")
	showCmd.Flags().BoolVar(&noInteractiveFlag, "no-interactive", false, "Disable interactive TUI, use plain text output")
	rootCmd.AddCommand(showCmd)
}
