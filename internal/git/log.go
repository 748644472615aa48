package git

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/QuesmaOrg/git-time-extractor/internal/worklog"
	"github.com/sirupsen/logrus"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"

	// hash, author name, author email, strict ISO author date, raw body
	logFormat = "%H%x1f%an%x1f%ae%x1f%aI%x1f%B%x1e"
)

// CLISource reads history by running the git binary
type CLISource struct {
	repoPath string
	logger   *logrus.Logger
}

// NewCLISource creates a source for the repository at repoPath
func NewCLISource(repoPath string, logger *logrus.Logger) *CLISource {
	return &CLISource{repoPath: repoPath, logger: logger}
}

// Name implements Source
func (s *CLISource) Name() string { return SourceGit }

// Log returns up to limit commits reachable from HEAD, newest first
func (s *CLISource) Log(ctx context.Context, limit int) ([]worklog.Commit, error) {
	root, err := GetRepoRoot(ctx, s.repoPath)
	if err != nil {
		return nil, err
	}

	args := []string{"log", "--format=" + logFormat}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}

	out, err := runGitRaw(ctx, root, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	commits, err := parseLog(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	s.logger.WithFields(logrus.Fields{
		"repository": root,
		"source":     SourceGit,
		"commits":    len(commits),
	}).Debug("Read commit history")

	return commits, nil
}

// parseLog parses output produced with logFormat
func parseLog(out []byte) ([]worklog.Commit, error) {
	var commits []worklog.Commit
	for _, record := range bytes.Split(out, []byte(recordSep)) {
		rec := strings.TrimLeft(string(record), "\r\n")
		if strings.TrimSpace(rec) == "" {
			continue
		}

		fields := strings.SplitN(rec, fieldSep, 5)
		if len(fields) != 5 {
			return nil, fmt.Errorf("malformed log record: %q", truncate(rec, 80))
		}

		ts, err := time.Parse(time.RFC3339, fields[3])
		if err != nil {
			return nil, fmt.Errorf("commit %s: invalid author date %q: %w", fields[0], fields[3], err)
		}

		commits = append(commits, worklog.Commit{
			Hash:        fields[0],
			AuthorName:  fields[1],
			AuthorEmail: fields[2],
			AuthorDate:  ts,
			Message:     strings.TrimSpace(fields[4]),
		})
	}
	return commits, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
