// Package scaffold writes the seed files for a brand-new experiment
// repository: a README, ignore rules for common Python build artifacts,
// and a package marker carrying the initial version.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// InitialVersion is the version string written into new package markers.
const InitialVersion = "0.1.0"

const gitignore = `# Byte-compiled / cache
__pycache__/
*.py[cod]
*$py.class

# Distribution / packaging
build/
dist/
*.egg-info/
.eggs/

# Environments
.env
.venv/
venv/

# Notebooks
.ipynb_checkpoints/

# Experiment artifacts
*.log
*.csv
*.parquet
results/
plots/

# Editors
.vscode/
.idea/
.DS_Store
`

// File is one artifact written into a scaffolded experiment directory.
type File struct {
	Name    string
	Content string
}

// Files returns the template artifacts for an experiment, populated with
// its name.
func Files(name string) []File {
	return []File{
		{
			Name:    "README.md",
			Content: fmt.Sprintf("# %s\n\nExperiment: %s\n", name, name),
		},
		{
			Name:    ".gitignore",
			Content: gitignore,
		},
		{
			Name:    "__init__.py",
			Content: fmt.Sprintf("__version__ = %q\n", InitialVersion),
		},
	}
}

// Create writes the experiment directory at dir with all template artifacts.
// The directory must not already exist.
func Create(dir, name string) error {
	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	for _, f := range Files(name) {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// Remove deletes a scaffolded directory after its contents were pushed.
func Remove(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return nil
}
