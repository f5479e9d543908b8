package git

import (
	"context"
	"fmt"
)

// InitRepo initializes a new git repository at dir.
func InitRepo(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "init"); err != nil {
		return fmt.Errorf("failed to init repository: %v", err)
	}
	return nil
}

// StageAll stages all changes in the work tree at dir.
func StageAll(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "add", "."); err != nil {
		return fmt.Errorf("failed to stage changes: %v", err)
	}
	return nil
}

// Stage stages the given paths in the repository at dir.
func Stage(ctx context.Context, dir string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	if err := runGit(ctx, dir, args...); err != nil {
		return fmt.Errorf("failed to stage %v: %v", paths, err)
	}
	return nil
}

// Commit records staged changes with the given message.
func Commit(ctx context.Context, dir, message string) error {
	if err := runGit(ctx, dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %v", err)
	}
	return nil
}

// RenameBranch force-renames the current branch.
func RenameBranch(ctx context.Context, dir, branch string) error {
	if err := runGit(ctx, dir, "branch", "-M", branch); err != nil {
		return fmt.Errorf("failed to rename branch to %s: %v", branch, err)
	}
	return nil
}

// AddRemote adds a remote with the given name and url.
func AddRemote(ctx context.Context, dir, name, url string) error {
	if err := runGit(ctx, dir, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %v", name, err)
	}
	return nil
}

// PushUpstreamForce force-pushes branch to the named remote and sets it as
// upstream. Used to seed a freshly created experiment repository.
func PushUpstreamForce(ctx context.Context, dir, remote, branch string) error {
	if err := runGit(ctx, dir, "push", "-u", remote, branch, "--force"); err != nil {
		return fmt.Errorf("failed to push %s to %s: %v", branch, remote, err)
	}
	return nil
}

// Push pushes the current branch to its upstream.
func Push(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "push"); err != nil {
		return fmt.Errorf("failed to push: %v", err)
	}
	return nil
}
