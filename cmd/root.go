package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/QuesmaOrg/git-time-extractor/internal/config"
)

var version = "dev"

var (
	cfgFile string
	verbose bool
	logger  *logrus.Logger
	cfg     *config.Config
)

// SetVersion sets the version reported by --version
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "git-time-extractor",
	Short: "Estimate developer time from git history",
	Long: `git-time-extractor reads the commit log of a git repository and
estimates the time spent per day, for invoicing or timesheet reconciliation.

Commits less than three hours apart are counted as one working session;
the first commit of a session is counted as 30 minutes.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logrus.New()
		logger.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger.WithField("config", cfgFile).Debug("Loaded configuration")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .git-time-extractor.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "git-time-extractor: %v\n", err)
		stop()
		os.Exit(1)
	}
}
