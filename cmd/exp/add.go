package main

import (
	"context"

	"github.com/sunnybak/exp/internal/config"
	"github.com/sunnybak/exp/internal/github"
	"github.com/sunnybak/exp/internal/provision"
	"github.com/sunnybak/exp/internal/ui/prompt"
)

// uiPrompter adapts the interactive prompt package to the provision
// workflow. assumeYes turns every gate into an automatic yes.
type uiPrompter struct {
	assumeYes bool
}

func (p uiPrompter) Confirm(msg string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	result, err := prompt.Confirm(msg)
	if err != nil {
		return false, err
	}
	if result.Cancelled {
		return false, nil
	}
	return result.Confirmed, nil
}

// provisionOptions assembles the workflow options for the current
// configuration. The gh-backed remote creation fallback is only offered
// when gh is installed and authenticated.
func provisionOptions(cfg *config.Config, workDir string, scaffold bool) provision.Options {
	opts := provision.Options{
		Scaffold:      scaffold,
		WorkDir:       workDir,
		ParentRepo:    cfg.ParentRepo,
		Branch:        cfg.DefaultBranch,
		CommitMessage: cfg.CommitMessage,
	}
	if scaffold && github.CheckGH() == nil {
		opts.CreateRemote = func(ctx context.Context, repoSpec string) error {
			return github.CreateRepo(ctx, repoSpec, true)
		}
	}
	return opts
}
