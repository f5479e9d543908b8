// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather
// than using Go git libraries. This approach is simpler, more reliable, and
// ensures compatibility with user configurations (SSH keys, credential
// helpers, aliases).
//
// # Submodule Operations
//
//   - [ListSubmodules], [HasSubmodule]: query the submodule registry
//   - [AddSubmodule]: register a repository as a submodule
//   - [RemoveSubmodule]: deinit and remove a registered submodule
//   - [RemoveCached]: drop a stale path from the index
//
// # Repository Operations
//
//   - [CheckGit], [IsInsideRepo], [TopLevel], [FolderName]: environment checks
//   - [InitRepo], [StageAll], [Stage], [Commit]: local repository seeding
//   - [RenameBranch], [AddRemote], [PushUpstreamForce], [Push]: remote wiring
package git
