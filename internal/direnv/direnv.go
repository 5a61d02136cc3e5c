// Package direnv detects the direnv binary and approves .envrc files.
// direnv is optional; absence is a silent skip, not an error.
package direnv

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/wfcli/wf/internal/cmd"
)

// Installed reports whether the direnv binary is in PATH.
func Installed() bool {
	_, err := exec.LookPath("direnv")
	return err == nil
}

// Allow runs `direnv allow` on the given .envrc file.
func Allow(ctx context.Context, path string) error {
	if filepath.Base(path) != ".envrc" {
		return fmt.Errorf("refusing to allow %q: not an .envrc file", path)
	}
	return cmd.RunContext(ctx, "", "direnv", "allow", path)
}
