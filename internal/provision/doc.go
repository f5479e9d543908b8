// Package provision implements the submodule provisioning workflow: given a
// validated experiment name, it registers a non-conflicting git submodule
// pointing at the derived GitHub repository in the parent experiments
// repository, optionally creating and seeding that repository first.
//
// The workflow is a linear sequence of guarded steps:
//
//	validate -> conflict check -> confirm -> [scaffold] -> submodule add
//	         -> [commit] -> [push]
//
// Every external effect is gated by a confirmation prompt; once a gate is
// passed the step runs fail-fast with no rollback of earlier steps. A push
// that succeeded before a later failure stays pushed. This is deliberate:
// all durable state lives in git and GitHub, and compensating actions would
// be guesswork.
//
// Git access and prompting go through the [GitOps] and [Prompter] seams so
// the workflow can be exercised against fakes. Concurrent invocations
// against the same working tree are not guarded against and are undefined.
package provision
