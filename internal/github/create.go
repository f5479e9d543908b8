package github

import (
	"context"
	"fmt"
	"regexp"

	"github.com/sunnybak/exp/internal/cmd"
)

var repoSpecPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+/[A-Za-z0-9._-]+$`)

// CreateRepo creates a new empty repository on GitHub using the gh CLI.
// repoSpec is "owner/name".
func CreateRepo(ctx context.Context, repoSpec string, private bool) error {
	if !repoSpecPattern.MatchString(repoSpec) {
		return fmt.Errorf("invalid repo spec %q: expected owner/name format", repoSpec)
	}

	args := []string{"repo", "create", repoSpec}
	if private {
		args = append(args, "--private")
	} else {
		args = append(args, "--public")
	}

	if err := cmd.RunContext(ctx, "", "gh", args...); err != nil {
		return fmt.Errorf("gh repo create failed: %v", err)
	}
	return nil
}
