package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/QuesmaOrg/git-time-extractor/internal/worklog"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/sirupsen/logrus"
)

// RepoSource reads history in-process with go-git, without a git binary
type RepoSource struct {
	repoPath string
	logger   *logrus.Logger
}

// NewRepoSource creates a go-git backed source for the repository at repoPath
func NewRepoSource(repoPath string, logger *logrus.Logger) *RepoSource {
	return &RepoSource{repoPath: repoPath, logger: logger}
}

// Name implements Source
func (s *RepoSource) Name() string { return SourceGoGit }

// Log returns up to limit commits reachable from HEAD, newest first by
// committer time
func (s *RepoSource) Log(ctx context.Context, limit int) ([]worklog.Commit, error) {
	repo, err := gogit.PlainOpenWithOptions(s.repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, s.repoPath, err)
	}

	iter, err := repo.Log(&gogit.LogOptions{Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("%w: log %s: %v", ErrSourceUnavailable, s.repoPath, err)
	}
	defer iter.Close()

	var commits []worklog.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, worklog.Commit{
			Hash:        c.Hash.String(),
			AuthorName:  c.Author.Name,
			AuthorEmail: c.Author.Email,
			AuthorDate:  c.Author.When,
			Message:     strings.TrimSpace(c.Message),
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: walk %s: %v", ErrSourceUnavailable, s.repoPath, err)
	}

	s.logger.WithFields(logrus.Fields{
		"repository": s.repoPath,
		"source":     SourceGoGit,
		"commits":    len(commits),
	}).Debug("Read commit history")

	return commits, nil
}
