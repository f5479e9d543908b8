package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Submodule is one entry from `git submodule status`.
type Submodule struct {
	Commit string // full commit hash the parent repo points at
	Path   string // submodule path relative to the repo root
	Ref    string // describe output, e.g. "(heads/main)"; may be empty
	State  byte   // ' ' in sync, '+' checked-out differs, '-' not initialized, 'U' conflicts
}

// ListSubmodules returns all submodules registered in the repository at dir.
func ListSubmodules(ctx context.Context, dir string) ([]Submodule, error) {
	output, err := outputGit(ctx, dir, "submodule", "status")
	if err != nil {
		return nil, fmt.Errorf("failed to list submodules: %v", err)
	}
	return parseSubmoduleStatus(output), nil
}

// parseSubmoduleStatus parses `git submodule status` porcelain-ish output.
// Each line is "<state><hash> <path> (<describe>)" where state is one of
// ' ', '+', '-', 'U' and the describe suffix is optional.
func parseSubmoduleStatus(output []byte) []Submodule {
	var subs []Submodule
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		state := byte(' ')
		switch line[0] {
		case '+', '-', 'U', ' ':
			state = line[0]
			line = line[1:]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		sub := Submodule{
			Commit: fields[0],
			Path:   fields[1],
			State:  state,
		}
		if len(fields) >= 3 {
			sub.Ref = strings.Join(fields[2:], " ")
		}
		subs = append(subs, sub)
	}
	return subs
}

// HasSubmodule returns true if the repository at dir already has a submodule
// registered at the given path.
func HasSubmodule(ctx context.Context, dir, path string) (bool, error) {
	subs, err := ListSubmodules(ctx, dir)
	if err != nil {
		return false, err
	}
	for _, sub := range subs {
		if sub.Path == path {
			return true, nil
		}
	}
	return false, nil
}

// AddSubmodule registers the repository at url as a submodule at path.
func AddSubmodule(ctx context.Context, dir, url, path string) error {
	if err := runGit(ctx, dir, "submodule", "add", url, path); err != nil {
		return fmt.Errorf("failed to add submodule %s: %v", path, err)
	}
	return nil
}

// RemoveCached drops path from the index without touching the work tree.
// Used to clear a stale index entry before registering the submodule.
// A path that was never staged is not an error.
func RemoveCached(ctx context.Context, dir, path string) error {
	err := runGit(ctx, dir, "rm", "-r", "--cached", "--ignore-unmatch", path)
	if err != nil {
		return fmt.Errorf("failed to clear index entry for %s: %v", path, err)
	}
	return nil
}

// RemoveSubmodule deinitializes and removes a submodule, including its
// metadata under .git/modules.
func RemoveSubmodule(ctx context.Context, dir, path string) error {
	if err := runGit(ctx, dir, "submodule", "deinit", "-f", path); err != nil {
		return fmt.Errorf("failed to deinit submodule %s: %v", path, err)
	}
	if err := runGit(ctx, dir, "rm", "-f", path); err != nil {
		return fmt.Errorf("failed to remove submodule %s: %v", path, err)
	}

	// git leaves the module clone behind under .git/modules
	toplevel, err := TopLevel(ctx, dir)
	if err != nil {
		return err
	}
	moduleDir := filepath.Join(toplevel, ".git", "modules", path)
	if err := os.RemoveAll(moduleDir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", moduleDir, err)
	}
	return nil
}
