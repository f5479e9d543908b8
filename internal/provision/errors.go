package provision

import (
	"errors"
	"fmt"
)

// Sentinel errors for the provisioning preconditions. Each one is terminal
// for the invocation; there is no retry or recovery.
var (
	// ErrInvalidName indicates the experiment name failed validation.
	ErrInvalidName = errors.New("invalid name")

	// ErrNameConflict indicates a directory or submodule entry with the
	// requested name already exists.
	ErrNameConflict = errors.New("name conflict")

	// ErrNotARepo indicates the working directory is not inside a git
	// work tree.
	ErrNotARepo = errors.New("not a git repository")

	// ErrWrongDirectory indicates the working directory is not the parent
	// experiments repository.
	ErrWrongDirectory = errors.New("wrong working directory")

	// ErrCancelled indicates the operator declined a confirmation gate
	// before any irreversible effect. Not a failure; callers exit 0.
	ErrCancelled = errors.New("cancelled")
)

// StepError reports an external command failure at a named workflow step.
// Prior steps are not rolled back.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
