package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sunnybak/exp/internal/experiment"
	"github.com/sunnybak/exp/internal/log"
	"github.com/sunnybak/exp/internal/scaffold"
)

// Options configures a provisioning run.
type Options struct {
	// Scaffold selects the create-and-attach variant: seed a brand-new
	// remote repository before registering it as a submodule.
	Scaffold bool

	// WorkDir is the parent repository root the workflow operates in.
	WorkDir string

	// ParentRepo is the expected folder name of WorkDir.
	ParentRepo string

	// Branch is the canonical branch name scaffolded repos are pushed as.
	Branch string

	// CommitMessage is the registration commit message template;
	// {name} is replaced with the experiment name.
	CommitMessage string

	// CreateRemote, when non-nil, is offered as a fallback if the operator
	// says the remote repository does not exist yet. It receives
	// "owner/name".
	CreateRemote func(ctx context.Context, repoSpec string) error
}

// Provisioner runs the submodule provisioning workflow against an explicit
// workspace handle instead of ambient process state.
type Provisioner struct {
	git    GitOps
	prompt Prompter
	opts   Options
}

// New creates a Provisioner.
func New(git GitOps, prompt Prompter, opts Options) *Provisioner {
	return &Provisioner{git: git, prompt: prompt, opts: opts}
}

// Run provisions the experiment described by req. It returns ErrCancelled
// when the operator declines the initial gate, nil when the workflow (or an
// operator-shortened suffix of it) completed, and a terminal error
// otherwise. No step is rolled back on a later failure.
func (p *Provisioner) Run(ctx context.Context, req experiment.Request) error {
	l := log.FromContext(ctx)

	if err := experiment.ValidateName(req.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	// Filesystem conflict is checked first, before any git invocation.
	target := filepath.Join(p.opts.WorkDir, req.Name)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%w: %s already exists in %s", ErrNameConflict, req.Name, p.opts.WorkDir)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", target, err)
	}

	if !p.git.IsInsideRepo(ctx, p.opts.WorkDir) {
		return fmt.Errorf("%w: %s", ErrNotARepo, p.opts.WorkDir)
	}

	top, err := p.git.TopLevel(ctx, p.opts.WorkDir)
	if err != nil {
		return &StepError{Step: "repository detection", Err: err}
	}
	if folder := filepath.Base(top); folder != p.opts.ParentRepo {
		return fmt.Errorf("%w: run from the %s repository, not %s", ErrWrongDirectory, p.opts.ParentRepo, folder)
	}
	// The submodule path is relative to the current directory, so a run
	// from a subdirectory of the parent repo must be rejected too.
	if !samePath(p.opts.WorkDir, top) {
		return fmt.Errorf("%w: run from the root of %s, not %s", ErrWrongDirectory, p.opts.ParentRepo, filepath.Base(p.opts.WorkDir))
	}

	paths, err := p.git.SubmodulePaths(ctx, p.opts.WorkDir)
	if err != nil {
		return &StepError{Step: "submodule status", Err: err}
	}
	for _, path := range paths {
		if path == req.Name {
			return fmt.Errorf("%w: submodule %s is already registered", ErrNameConflict, req.Name)
		}
	}

	url := req.RemoteURL()
	l.Debug("provisioning experiment", "name", req.Name, "url", url, "scaffold", p.opts.Scaffold)

	ok, err := p.prompt.Confirm(fmt.Sprintf("Add %s as submodule %s?", url, req.Name))
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	if p.opts.Scaffold {
		if err := p.scaffoldRemote(ctx, req, target, url); err != nil {
			return err
		}
	}

	if err := p.git.AddSubmodule(ctx, p.opts.WorkDir, url, req.Name); err != nil {
		return &StepError{Step: "submodule add", Err: err}
	}
	l.Printf("Registered submodule %s\n", req.Name)

	ok, err = p.prompt.Confirm("Commit the submodule registration?")
	if err != nil {
		return err
	}
	if !ok {
		l.Println("Skipping commit; the registration is staged in the working tree")
		return nil
	}

	if err := p.git.Stage(ctx, p.opts.WorkDir, ".gitmodules", req.Name); err != nil {
		return &StepError{Step: "stage", Err: err}
	}
	message := strings.ReplaceAll(p.opts.CommitMessage, "{name}", req.Name)
	if err := p.git.Commit(ctx, p.opts.WorkDir, message); err != nil {
		return &StepError{Step: "commit", Err: err}
	}

	ok, err = p.prompt.Confirm("Push to origin?")
	if err != nil {
		return err
	}
	if !ok {
		l.Println("Skipping push; the registration commit is local")
		return nil
	}

	if err := p.git.Push(ctx, p.opts.WorkDir); err != nil {
		return &StepError{Step: "push", Err: err}
	}

	return nil
}

// samePath compares two paths after resolving symlinks, so the work
// directory matches the git toplevel even when one goes through a symlink.
func samePath(a, b string) bool {
	if resolved, err := filepath.EvalSymlinks(a); err == nil {
		a = resolved
	}
	if resolved, err := filepath.EvalSymlinks(b); err == nil {
		b = resolved
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// scaffoldRemote seeds a brand-new experiment repository: template files,
// initial commit, canonical branch, force-push to the derived remote. The
// local seed directory is removed afterwards so the submodule checkout can
// take its place.
func (p *Provisioner) scaffoldRemote(ctx context.Context, req experiment.Request, dir, url string) error {
	l := log.FromContext(ctx)

	exists, err := p.prompt.Confirm(fmt.Sprintf("Does https://github.com/%s/%s already exist on GitHub?", req.Owner, req.Name))
	if err != nil {
		return err
	}
	if !exists {
		if p.opts.CreateRemote == nil {
			return fmt.Errorf("remote repository does not exist: create https://github.com/%s/%s first", req.Owner, req.Name)
		}
		create, err := p.prompt.Confirm("Create it now?")
		if err != nil {
			return err
		}
		if !create {
			return ErrCancelled
		}
		if err := p.opts.CreateRemote(ctx, req.Owner+"/"+req.Name); err != nil {
			return &StepError{Step: "create remote", Err: err}
		}
		l.Printf("Created https://github.com/%s/%s\n", req.Owner, req.Name)
	}

	if err := scaffold.Create(dir, req.Name); err != nil {
		return err
	}
	l.Debug("scaffolded seed directory", "dir", dir)

	if err := p.git.InitRepo(ctx, dir); err != nil {
		return &StepError{Step: "init", Err: err}
	}
	if err := p.git.StageAll(ctx, dir); err != nil {
		return &StepError{Step: "stage", Err: err}
	}
	if err := p.git.Commit(ctx, dir, "initialize "+req.Name); err != nil {
		return &StepError{Step: "commit", Err: err}
	}
	if err := p.git.RenameBranch(ctx, dir, p.opts.Branch); err != nil {
		return &StepError{Step: "branch rename", Err: err}
	}
	if err := p.git.AddRemote(ctx, dir, "origin", url); err != nil {
		return &StepError{Step: "remote add", Err: err}
	}
	if err := p.git.PushUpstreamForce(ctx, dir, "origin", p.opts.Branch); err != nil {
		return &StepError{Step: "push", Err: err}
	}

	if err := scaffold.Remove(dir); err != nil {
		return err
	}
	// The seed dir may have landed in the index; clear it so submodule add
	// sees a clean path.
	if err := p.git.RemoveCached(ctx, p.opts.WorkDir, req.Name); err != nil {
		return &StepError{Step: "index cleanup", Err: err}
	}

	l.Printf("Seeded %s\n", url)
	return nil
}
