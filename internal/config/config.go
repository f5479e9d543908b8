package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Defaults matching the sunnybak/experiments repository conventions.
const (
	DefaultOwner         = "sunnybak"
	DefaultParentRepo    = "experiments"
	DefaultBranch        = "main"
	DefaultCommitMessage = "add {name} submodule"
)

// Config holds the exp configuration.
type Config struct {
	Owner         string `toml:"owner"`          // GitHub account all experiment repos live under
	ParentRepo    string `toml:"parent_repo"`    // expected folder name of the parent repository
	DefaultBranch string `toml:"default_branch"` // branch name scaffolded repos are pushed as
	CommitMessage string `toml:"commit_message"` // commit message template, {name} is replaced
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Owner:         DefaultOwner,
		ParentRepo:    DefaultParentRepo,
		DefaultBranch: DefaultBranch,
		CommitMessage: DefaultCommitMessage,
	}
}

// identPattern matches values that are safe as account, repo, and branch names.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Path returns the config file location, ~/.config/exp/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "exp", "config.toml"), nil
}

// Load reads config from ~/.config/exp/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path. Missing file is not an error.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	for field, value := range map[string]string{
		"owner":          cfg.Owner,
		"parent_repo":    cfg.ParentRepo,
		"default_branch": cfg.DefaultBranch,
	} {
		if value == "" {
			return Default(), fmt.Errorf("config %s must not be empty", field)
		}
		if !identPattern.MatchString(value) {
			return Default(), fmt.Errorf("invalid config %s %q: only letters, digits, '.', '-' and '_' are allowed", field, value)
		}
	}

	if cfg.CommitMessage == "" {
		cfg.CommitMessage = DefaultCommitMessage
	}

	return cfg, nil
}

const defaultConfig = `# exp configuration

# GitHub account all experiment repositories are created under.
# Remote URLs are derived as https://github.com/<owner>/<name>.git
owner = "sunnybak"

# Folder name of the parent experiments repository. exp refuses to run
# when invoked from a differently named directory.
parent_repo = "experiments"

# Branch name freshly scaffolded experiment repos are pushed as.
default_branch = "main"

# Commit message for the submodule registration commit.
# {name} is replaced with the experiment name.
commit_message = "add {name} submodule"
`

// Init creates a default config file at ~/.config/exp/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
