package template

import (
	"os"
	"path/filepath"
)

// DefaultEnvrcSample is the default template file for the .envrc symlink.
const DefaultEnvrcSample = ".envrc.sample"

// SymlinkEnvrc creates a relative symlink .envrc -> sample at the
// repository root when .envrc is absent and the sample file exists.
// Returns whether the link was created. Independent of the template
// directory mechanism; always link semantics.
func SymlinkEnvrc(repo, sample string) (bool, error) {
	if sample == "" {
		sample = DefaultEnvrcSample
	}

	envrc := filepath.Join(repo, ".envrc")
	if _, err := os.Lstat(envrc); err == nil {
		return false, nil
	}
	if _, err := os.Stat(filepath.Join(repo, sample)); err != nil {
		return false, nil
	}

	if err := os.Symlink(sample, envrc); err != nil {
		return false, err
	}
	return true, nil
}
