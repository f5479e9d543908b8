// Package doctor diagnoses the environment exp runs in: required tools,
// repository layout, and configuration.
package doctor

import (
	"context"
	"fmt"

	"github.com/sunnybak/exp/internal/config"
	"github.com/sunnybak/exp/internal/git"
	"github.com/sunnybak/exp/internal/github"
)

// Status classifies a check outcome.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarning means the check failed but exp can still run.
	StatusWarning
	// StatusError means the check failed and provisioning will not work.
	StatusError
)

// Check is a single named diagnostic.
type Check struct {
	Name     string
	Optional bool // failure downgrades to a warning
	Run      func(ctx context.Context) error
}

// Result is the outcome of one check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Checks returns the standard diagnostics for the given configuration and
// working directory.
func Checks(cfg config.Config, workDir string) []Check {
	return []Check{
		{
			Name: "config file parses",
			Run: func(ctx context.Context) error {
				path, err := config.Path()
				if err != nil {
					return err
				}
				if _, err := config.LoadFrom(path); err != nil {
					return fmt.Errorf("%s: %v", path, err)
				}
				return nil
			},
		},
		{
			Name: "git installed",
			Run: func(ctx context.Context) error {
				return git.CheckGit()
			},
		},
		{
			Name:     "gh installed and authenticated",
			Optional: true, // only needed to create remote repos
			Run: func(ctx context.Context) error {
				return github.CheckGH()
			},
		},
		{
			Name: "inside a git repository",
			Run: func(ctx context.Context) error {
				if !git.IsInsideRepo(ctx, workDir) {
					return fmt.Errorf("%s is not inside a git work tree", workDir)
				}
				return nil
			},
		},
		{
			Name: fmt.Sprintf("current repository is %q", cfg.ParentRepo),
			Run: func(ctx context.Context) error {
				folder, err := git.FolderName(ctx, workDir)
				if err != nil {
					return err
				}
				if folder != cfg.ParentRepo {
					return fmt.Errorf("repository folder is %q, expected %q", folder, cfg.ParentRepo)
				}
				return nil
			},
		},
	}
}

// Run executes all checks and returns their results plus an overall
// healthy flag. Optional check failures do not affect the flag.
func Run(ctx context.Context, checks []Check) ([]Result, bool) {
	results := make([]Result, 0, len(checks))
	healthy := true

	for _, check := range checks {
		result := Result{Name: check.Name, Status: StatusOK}
		if err := check.Run(ctx); err != nil {
			result.Detail = err.Error()
			if check.Optional {
				result.Status = StatusWarning
			} else {
				result.Status = StatusError
				healthy = false
			}
		}
		results = append(results, result)
	}

	return results, healthy
}
