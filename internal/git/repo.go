package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrSourceUnavailable is returned when the commit history cannot be opened or read
var ErrSourceUnavailable = errors.New("commit history unavailable")

// RunGit executes a git command inside repoPath and returns its trimmed output
func RunGit(ctx context.Context, repoPath string, args ...string) (string, error) {
	out, err := runGitRaw(ctx, repoPath, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func runGitRaw(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git %s: %w (stderr: %s)", args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return out, nil
}

// GetRepoRoot returns the root directory of the repository containing repoPath
func GetRepoRoot(ctx context.Context, repoPath string) (string, error) {
	root, err := RunGit(ctx, repoPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a git repository: %v", ErrSourceUnavailable, repoPath, err)
	}
	return root, nil
}
