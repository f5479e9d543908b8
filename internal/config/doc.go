// Package config handles loading and validation of exp configuration.
//
// Configuration is read from ~/.config/exp/config.toml. A missing file is
// not an error; the built-in defaults match the sunnybak/experiments
// repository conventions.
//
// # Key Settings
//
//   - owner: GitHub account all experiment repos are created under (default: "sunnybak")
//   - parent_repo: expected folder name of the parent repository (default: "experiments")
//   - default_branch: branch scaffolded repos are pushed as (default: "main")
//   - commit_message: template for the registration commit, {name} is replaced
//
// Values are validated against a conservative identifier pattern so they can
// be embedded in URLs and git refs without escaping.
package config
