package provision

import (
	"context"

	"github.com/sunnybak/exp/internal/git"
)

// GitOps is the version-control capability the workflow needs. The real
// implementation shells out to the git CLI; tests substitute a fake.
type GitOps interface {
	IsInsideRepo(ctx context.Context, dir string) bool
	TopLevel(ctx context.Context, dir string) (string, error)
	SubmodulePaths(ctx context.Context, dir string) ([]string, error)
	AddSubmodule(ctx context.Context, dir, url, path string) error
	RemoveCached(ctx context.Context, dir, path string) error
	Stage(ctx context.Context, dir string, paths ...string) error
	Commit(ctx context.Context, dir, message string) error
	Push(ctx context.Context, dir string) error

	// Seed-repo operations, run inside the scaffolded directory.
	InitRepo(ctx context.Context, dir string) error
	StageAll(ctx context.Context, dir string) error
	RenameBranch(ctx context.Context, dir, branch string) error
	AddRemote(ctx context.Context, dir, name, url string) error
	PushUpstreamForce(ctx context.Context, dir, remote, branch string) error
}

// cliGit implements GitOps via the git CLI.
type cliGit struct{}

// NewGitOps returns the git CLI backed implementation.
func NewGitOps() GitOps {
	return cliGit{}
}

func (cliGit) IsInsideRepo(ctx context.Context, dir string) bool {
	return git.IsInsideRepo(ctx, dir)
}

func (cliGit) TopLevel(ctx context.Context, dir string) (string, error) {
	return git.TopLevel(ctx, dir)
}

func (cliGit) SubmodulePaths(ctx context.Context, dir string) ([]string, error) {
	subs, err := git.ListSubmodules(ctx, dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(subs))
	for i, sub := range subs {
		paths[i] = sub.Path
	}
	return paths, nil
}

func (cliGit) AddSubmodule(ctx context.Context, dir, url, path string) error {
	return git.AddSubmodule(ctx, dir, url, path)
}

func (cliGit) RemoveCached(ctx context.Context, dir, path string) error {
	return git.RemoveCached(ctx, dir, path)
}

func (cliGit) Stage(ctx context.Context, dir string, paths ...string) error {
	return git.Stage(ctx, dir, paths...)
}

func (cliGit) Commit(ctx context.Context, dir, message string) error {
	return git.Commit(ctx, dir, message)
}

func (cliGit) Push(ctx context.Context, dir string) error {
	return git.Push(ctx, dir)
}

func (cliGit) InitRepo(ctx context.Context, dir string) error {
	return git.InitRepo(ctx, dir)
}

func (cliGit) StageAll(ctx context.Context, dir string) error {
	return git.StageAll(ctx, dir)
}

func (cliGit) RenameBranch(ctx context.Context, dir, branch string) error {
	return git.RenameBranch(ctx, dir, branch)
}

func (cliGit) AddRemote(ctx context.Context, dir, name, url string) error {
	return git.AddRemote(ctx, dir, name, url)
}

func (cliGit) PushUpstreamForce(ctx context.Context, dir, remote, branch string) error {
	return git.PushUpstreamForce(ctx, dir, remote, branch)
}

// Prompter asks the operator for confirmation before irreversible effects.
// Confirm returns false when the gate is declined.
type Prompter interface {
	Confirm(prompt string) (bool, error)
}
