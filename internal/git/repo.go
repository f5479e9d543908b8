package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// TopLevel returns the root directory of the work tree containing path.
func TopLevel(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// FolderName returns the folder name of the work tree containing path.
func FolderName(ctx context.Context, path string) (string, error) {
	toplevel, err := TopLevel(ctx, path)
	if err != nil {
		return "", err
	}
	return filepath.Base(toplevel), nil
}

// CurrentBranch returns the current branch name.
// Returns "(detached)" for detached HEAD state.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// HasRemote returns true if the repository at path has a remote with the
// given name configured.
func HasRemote(ctx context.Context, path, name string) bool {
	return runGit(ctx, path, "remote", "get-url", name) == nil
}

// IsDirty returns true if the work tree has uncommitted changes or
// untracked files.
func IsDirty(ctx context.Context, path string) bool {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false // Treat error as clean (safe default)
	}
	return strings.TrimSpace(string(output)) != ""
}
