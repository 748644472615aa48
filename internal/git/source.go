// Package git reads commit history for the time report.
package git

import (
	"context"
	"fmt"

	"github.com/QuesmaOrg/git-time-extractor/internal/worklog"
	"github.com/sirupsen/logrus"
)

// Source backend names
const (
	SourceGit   = "git"
	SourceGoGit = "go-git"
)

// Source yields the most recent commits of a repository, newest first
type Source interface {
	Name() string
	Log(ctx context.Context, limit int) ([]worklog.Commit, error)
}

// NewSource returns the backend registered under name
func NewSource(name, repoPath string, logger *logrus.Logger) (Source, error) {
	switch name {
	case SourceGit, "":
		return NewCLISource(repoPath, logger), nil
	case SourceGoGit:
		return NewRepoSource(repoPath, logger), nil
	default:
		return nil, fmt.Errorf("unknown source: %s (valid: %s, %s)", name, SourceGit, SourceGoGit)
	}
}
