// Package extract wires a commit source to the worklog and report packages.
package extract

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/QuesmaOrg/git-time-extractor/internal/config"
	"github.com/QuesmaOrg/git-time-extractor/internal/git"
	"github.com/QuesmaOrg/git-time-extractor/internal/report"
	"github.com/QuesmaOrg/git-time-extractor/internal/worklog"
)

// Options controls a single extraction run
type Options struct {
	MaxCommits int
	Estimator  worklog.Estimator
	Project    string
	Weeks      report.WeekNumbering
	Format     report.Format
}

// OptionsFromConfig validates cfg and converts it to run options
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return Options{}, err
	}
	weeks, err := report.ParseWeekNumbering(cfg.Report.WeekNumbering)
	if err != nil {
		return Options{}, err
	}

	return Options{
		MaxCommits: cfg.MaxCommits,
		Estimator: worklog.Estimator{
			Default:     cfg.Estimate.Default,
			SessionGap:  cfg.Estimate.SessionGap,
			LegacyFloor: cfg.Estimate.LegacyFloor,
		},
		Project: cfg.Project,
		Weeks:   weeks,
		Format:  format,
	}, nil
}

// Extractor runs the history -> worklog -> report pipeline
type Extractor struct {
	source git.Source
	opts   Options
	logger *logrus.Logger
}

// New creates an Extractor reading from source
func New(source git.Source, opts Options, logger *logrus.Logger) *Extractor {
	return &Extractor{source: source, opts: opts, logger: logger}
}

// Worklog reads the history and aggregates it by day
func (e *Extractor) Worklog(ctx context.Context) (*worklog.Worklog, error) {
	commits, err := e.source.Log(ctx, e.opts.MaxCommits)
	if err != nil {
		return nil, err
	}

	w := worklog.Aggregate(worklog.Chronological(commits), e.opts.Estimator)

	e.logger.WithFields(logrus.Fields{
		"source":  e.source.Name(),
		"commits": len(commits),
		"days":    w.Len(),
		"minutes": int(w.TotalMinutes()),
	}).Debug("Aggregated worklog")

	return w, nil
}

// Rows builds the report rows for the history
func (e *Extractor) Rows(ctx context.Context) ([]report.Row, error) {
	w, err := e.Worklog(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildRows(w, report.Options{Project: e.opts.Project, Weeks: e.opts.Weeks}), nil
}

// WriteReport renders the full report to out in one pass
func (e *Extractor) WriteReport(ctx context.Context, out io.Writer) error {
	rows, err := e.Rows(ctx)
	if err != nil {
		return err
	}
	return report.Render(out, e.opts.Format, rows)
}
