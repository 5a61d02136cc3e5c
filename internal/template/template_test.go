package template

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/wfcli/wf/internal/log"
	"github.com/wfcli/wf/internal/workflow"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	return log.WithLogger(context.Background(), log.New(&bytes.Buffer{}, false, false))
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	gitRun(t, dir, "init", "-b", "main")
	gitRun(t, dir, "config", "user.email", "test@test.com")
	gitRun(t, dir, "config", "user.name", "Test User")
	return dir
}

// setupTemplateDir creates a template directory with .envrc.local, a bin/
// subdirectory and a nested file.
func setupTemplateDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	writeFile(t, filepath.Join(dir, ".envrc.local"), "export FOO=1\n")
	writeFile(t, filepath.Join(dir, "bin", "setup.sh"), "#!/bin/sh\n")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("explicit argument wins", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		tmpl := setupTemplateDir(t)
		other := setupTemplateDir(t)
		gitRun(t, repo, "config", "worktree.userTemplate.path", other)

		got, err := Resolve(testCtx(t), repo, tmpl)
		if err != nil {
			t.Fatalf("Resolve() = %v, want nil", err)
		}
		if got != tmpl {
			t.Errorf("Resolve() = %q, want explicit %q", got, tmpl)
		}
	})

	t.Run("config fallback", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		tmpl := setupTemplateDir(t)
		gitRun(t, repo, "config", "worktree.userTemplate.path", tmpl)

		got, err := Resolve(testCtx(t), repo, "")
		if err != nil {
			t.Fatalf("Resolve() = %v, want nil", err)
		}
		if got != tmpl {
			t.Errorf("Resolve() = %q, want configured %q", got, tmpl)
		}
	})

}

func TestResolve_NothingExists(t *testing.T) {
	repo := setupTestRepo(t)
	// Point HOME somewhere empty so the default dir doesn't exist
	t.Setenv("HOME", t.TempDir())

	_, err := Resolve(testCtx(t), repo, "")
	if !errors.Is(err, ErrNoTemplateDir) {
		t.Errorf("Resolve() error = %v, want ErrNoTemplateDir", err)
	}
}

func TestApply_ModeRequired(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	tmpl := setupTemplateDir(t)

	// Template dir present, mode unset -> configuration error
	_, err := Apply(testCtx(t), repo, tmpl)
	var cfgErr *workflow.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Apply(mode unset) error = %v, want *workflow.ConfigError", err)
	}

	gitRun(t, repo, "config", "worktree.userTemplate.mode", "symlink")
	if _, err := Apply(testCtx(t), repo, tmpl); !errors.As(err, &cfgErr) {
		t.Errorf("Apply(mode invalid) error = %v, want *workflow.ConfigError", err)
	}
}

func TestApply_NoTemplateDirIsNoop(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	applied, err := Apply(testCtx(t), repo, filepath.Join(repo, "does-not-exist"))
	if err != nil {
		t.Fatalf("Apply() = %v, want nil", err)
	}
	if applied != nil {
		t.Errorf("Apply() = %v, want nil for missing template dir", applied)
	}
}

func TestApply_LinkMode(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	tmpl := setupTemplateDir(t)
	gitRun(t, repo, "config", "worktree.userTemplate.mode", "link")
	ctx := testCtx(t)

	applied, err := Apply(ctx, repo, tmpl)
	if err != nil {
		t.Fatalf("Apply() = %v, want nil", err)
	}
	if len(applied) != 2 {
		t.Fatalf("Apply() applied %d entries, want 2: %v", len(applied), applied)
	}

	// .envrc.local is a symlink pointing at the template source
	link := filepath.Join(repo, ".envrc.local")
	target, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(.envrc.local) = %v, want symlink", err)
	}
	if target != filepath.Join(tmpl, ".envrc.local") {
		t.Errorf("symlink target = %q, want %q", target, filepath.Join(tmpl, ".envrc.local"))
	}

	// Directories are linked whole
	if info, err := os.Lstat(filepath.Join(repo, "bin")); err != nil || info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("bin should be a single symlink, got %v, %v", info, err)
	}

	// Second apply skips everything (never overwrite)
	writeFile(t, filepath.Join(repo, "marker"), "keep\n")
	again, err := Apply(ctx, repo, tmpl)
	if err != nil {
		t.Fatalf("second Apply() = %v, want nil", err)
	}
	if len(again) != 0 {
		t.Errorf("second Apply() = %v, want no entries", again)
	}
}

func TestApply_CopyMode(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	tmpl := setupTemplateDir(t)
	gitRun(t, repo, "config", "worktree.userTemplate.mode", "copy")

	applied, err := Apply(testCtx(t), repo, tmpl)
	if err != nil {
		t.Fatalf("Apply() = %v, want nil", err)
	}
	if len(applied) != 2 {
		t.Fatalf("Apply() applied %d entries, want 2: %v", len(applied), applied)
	}

	// Files are real copies, nested structure preserved
	data, err := os.ReadFile(filepath.Join(repo, "bin", "setup.sh"))
	if err != nil {
		t.Fatalf("read copied nested file: %v", err)
	}
	if string(data) != "#!/bin/sh\n" {
		t.Errorf("copied content = %q", data)
	}
	if info, _ := os.Lstat(filepath.Join(repo, ".envrc.local")); info.Mode()&os.ModeSymlink != 0 {
		t.Error(".envrc.local is a symlink, want a copy")
	}

	// Permission bits preserved
	info, err := os.Stat(filepath.Join(repo, "bin", "setup.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("copied perm = %o, want 0755", info.Mode().Perm())
	}
}

func TestApply_PerPathOverride(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	tmpl := setupTemplateDir(t)
	gitRun(t, repo, "config", "worktree.userTemplate.mode", "link")
	gitRun(t, repo, "config", "--add", "worktree.userTemplate.copy", ".envrc.local")

	applied, err := Apply(testCtx(t), repo, tmpl)
	if err != nil {
		t.Fatalf("Apply() = %v, want nil", err)
	}

	for _, a := range applied {
		switch a.Path {
		case ".envrc.local":
			if a.Mode != ModeCopy {
				t.Errorf(".envrc.local mode = %q, want copy override", a.Mode)
			}
		case "bin":
			if a.Mode != ModeLink {
				t.Errorf("bin mode = %q, want global link", a.Mode)
			}
		}
	}

	if info, _ := os.Lstat(filepath.Join(repo, ".envrc.local")); info.Mode()&os.ModeSymlink != 0 {
		t.Error(".envrc.local is a symlink, want a copy (override)")
	}
}

func TestSymlinkEnvrc(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	// No sample: no-op
	created, err := SymlinkEnvrc(repo, "")
	if err != nil || created {
		t.Errorf("SymlinkEnvrc(no sample) = %v, %v, want false, nil", created, err)
	}

	writeFile(t, filepath.Join(repo, ".envrc.sample"), "export BAR=1\n")
	created, err = SymlinkEnvrc(repo, "")
	if err != nil {
		t.Fatalf("SymlinkEnvrc() = %v, want nil", err)
	}
	if !created {
		t.Fatal("SymlinkEnvrc() = false, want true")
	}

	target, err := os.Readlink(filepath.Join(repo, ".envrc"))
	if err != nil {
		t.Fatalf("Readlink(.envrc) = %v", err)
	}
	if target != ".envrc.sample" {
		t.Errorf("symlink target = %q, want relative .envrc.sample", target)
	}

	// Already exists: no-op
	created, err = SymlinkEnvrc(repo, "")
	if err != nil || created {
		t.Errorf("second SymlinkEnvrc() = %v, %v, want false, nil", created, err)
	}
}
