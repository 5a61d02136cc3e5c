package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/wfcli/wf/internal/log"
)

// testCtx returns a context with a discard logger attached.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	return log.WithLogger(context.Background(), log.New(&bytes.Buffer{}, false, false))
}

// gitRun runs git in dir and fails the test on error.
func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit in a temp dir.
// Returns the absolute path with symlinks resolved (macOS /var -> /private/var).
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}

	gitRun(t, dir, "init", "-b", "main")
	gitRun(t, dir, "config", "user.email", "test@test.com")
	gitRun(t, dir, "config", "user.name", "Test User")
	gitRun(t, dir, "config", "commit.gpgsign", "false")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		t.Fatalf("write README: %v", err)
	}
	gitRun(t, dir, "add", "README.md")
	gitRun(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// setupTestRepoWithOrigin creates a bare origin repo plus a clone of it.
// Returns the clone path; the clone's origin points at the bare repo.
func setupTestRepoWithOrigin(t *testing.T) (clone, origin string) {
	t.Helper()

	src := setupTestRepo(t)

	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	origin = filepath.Join(base, "origin.git")
	gitRun(t, src, "clone", "--bare", src, origin)

	clone = filepath.Join(base, "clone")
	gitRun(t, base, "clone", origin, clone)
	gitRun(t, clone, "config", "user.email", "test@test.com")
	gitRun(t, clone, "config", "user.name", "Test User")
	gitRun(t, clone, "config", "commit.gpgsign", "false")

	return clone, origin
}

// commitFile writes a file and commits it.
func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	gitRun(t, dir, "add", name)
	gitRun(t, dir, "commit", "-m", message)
}
