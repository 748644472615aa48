package git

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type testCommit struct {
	when    time.Time
	name    string
	message string
}

// initRepo creates a repository in a temp dir with one commit per entry
func initRepo(t *testing.T, commits []testCommit) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i, c := range commits {
		path := filepath.Join(dir, "work.txt")
		require.NoError(t, os.WriteFile(path, []byte(c.message+string(rune('a'+i))), 0644))
		_, err := wt.Add("work.txt")
		require.NoError(t, err)

		sig := &object.Signature{Name: c.name, Email: c.name + "@example.com", When: c.when}
		_, err = wt.Commit(c.message, &gogit.CommitOptions{Author: sig, Committer: sig})
		require.NoError(t, err)
	}
	return dir
}

var sampleCommits = []testCommit{
	{time.Date(2024, 3, 12, 9, 0, 0, 0, time.FixedZone("", -5*3600)), "alice", "[#1] start"},
	{time.Date(2024, 3, 12, 9, 10, 0, 0, time.FixedZone("", -5*3600)), "alice", "progress"},
	{time.Date(2024, 3, 12, 13, 0, 0, 0, time.FixedZone("", -5*3600)), "bob", "[#1] [#2] done\n\nwith body\n"},
}

func assertSampleHistory(t *testing.T, src Source, limit int) {
	t.Helper()

	commits, err := src.Log(context.Background(), limit)
	require.NoError(t, err)
	require.Len(t, commits, min(limit, len(sampleCommits)))

	// newest first
	assert.Equal(t, "bob", commits[0].AuthorName)
	assert.Equal(t, "bob@example.com", commits[0].AuthorEmail)
	assert.Equal(t, "[#1] [#2] done\n\nwith body", commits[0].Message)
	assert.True(t, commits[0].AuthorDate.Equal(sampleCommits[2].when))
	_, offset := commits[0].AuthorDate.Zone()
	assert.Equal(t, -5*3600, offset)
	assert.Len(t, commits[0].Hash, 40)
}

func TestRepoSource_Log(t *testing.T) {
	dir := initRepo(t, sampleCommits)
	src := NewRepoSource(dir, testLogger())

	assertSampleHistory(t, src, 1000)
	assertSampleHistory(t, src, 2)
}

func TestRepoSource_DetectsParentRepo(t *testing.T) {
	dir := initRepo(t, sampleCommits)
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))

	commits, err := NewRepoSource(sub, testLogger()).Log(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, commits, 3)
}

func TestRepoSource_NotARepository(t *testing.T) {
	_, err := NewRepoSource(t.TempDir(), testLogger()).Log(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestRepoSource_Cancelled(t *testing.T) {
	dir := initRepo(t, sampleCommits)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRepoSource(dir, testLogger()).Log(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func requireGitBinary(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available, skipping test")
	}
}

func TestCLISource_Log(t *testing.T) {
	requireGitBinary(t)

	dir := initRepo(t, sampleCommits)
	src := NewCLISource(dir, testLogger())

	assertSampleHistory(t, src, 1000)
	assertSampleHistory(t, src, 2)
}

func TestCLISource_NotARepository(t *testing.T) {
	requireGitBinary(t)

	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	_, err := NewCLISource(dir, testLogger()).Log(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}
