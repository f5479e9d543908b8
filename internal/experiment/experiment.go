// Package experiment defines the experiment request value object and name
// validation used by the provisioning workflow.
package experiment

import (
	"fmt"
	"regexp"
)

// namePattern restricts experiment names to characters that are safe as a
// directory name, a git submodule path, and a GitHub repository name.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks that name is a legal experiment name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("experiment name is empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid experiment name %q: only letters, digits, '-' and '_' are allowed", name)
	}
	return nil
}

// Request describes a single provisioning run: an experiment name under a
// fixed owner account. It is built from user input at invocation start and
// discarded at process exit.
type Request struct {
	Name  string
	Owner string
}

// NewRequest validates name and returns a Request for it.
func NewRequest(name, owner string) (Request, error) {
	if err := ValidateName(name); err != nil {
		return Request{}, err
	}
	return Request{Name: name, Owner: owner}, nil
}

// RemoteURL returns the canonical GitHub URL for the experiment repository.
// The derivation is deterministic: https://github.com/<owner>/<name>.git
func (r Request) RemoteURL() string {
	return fmt.Sprintf("https://github.com/%s/%s.git", r.Owner, r.Name)
}
