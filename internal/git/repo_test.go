package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCurrentBranch(t *testing.T) {
	t.Parallel()

	t.Run("returns checked out branch", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)

		branch, err := CurrentBranch(testCtx(t), repo)
		if err != nil {
			t.Fatalf("CurrentBranch() = %v, want nil", err)
		}
		if branch != "main" {
			t.Errorf("CurrentBranch() = %q, want %q", branch, "main")
		}
	})

	t.Run("detached HEAD", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		gitRun(t, repo, "checkout", "--detach", "HEAD")

		_, err := CurrentBranch(testCtx(t), repo)
		if !errors.Is(err, ErrDetachedHead) {
			t.Errorf("CurrentBranch() error = %v, want ErrDetachedHead", err)
		}
	})
}

func TestIsDirty(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := testCtx(t)

	dirty, err := IsDirty(ctx, repo)
	if err != nil {
		t.Fatalf("IsDirty() = %v, want nil", err)
	}
	if dirty {
		t.Error("IsDirty() = true on a clean repo")
	}

	// Untracked files count as dirty
	if err := os.WriteFile(filepath.Join(repo, "dirty.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("write dirty file: %v", err)
	}
	dirty, err = IsDirty(ctx, repo)
	if err != nil {
		t.Fatalf("IsDirty() = %v, want nil", err)
	}
	if !dirty {
		t.Error("IsDirty() = false with untracked files")
	}
}

func TestRepoNameFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/user/myrepo.git", "myrepo"},
		{"https://github.com/user/myrepo", "myrepo"},
		{"git@github.com:user/myrepo.git", "myrepo"},
		{"git@gitlab.company.com:group/sub/myrepo.git", "myrepo"},
		{"/srv/git/myrepo.git", "myrepo"},
		{"https://github.com/user/myrepo/", "myrepo"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			if got := RepoNameFromURL(tt.url); got != tt.want {
				t.Errorf("RepoNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestRepoName(t *testing.T) {
	t.Parallel()

	t.Run("from origin URL", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		gitRun(t, repo, "remote", "add", "origin", "https://github.com/test/widget.git")

		name, err := RepoName(testCtx(t), repo)
		if err != nil {
			t.Fatalf("RepoName() = %v, want nil", err)
		}
		if name != "widget" {
			t.Errorf("RepoName() = %q, want %q", name, "widget")
		}
	})

	t.Run("falls back to directory name", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)

		name, err := RepoName(testCtx(t), repo)
		if err != nil {
			t.Fatalf("RepoName() = %v, want nil", err)
		}
		if name == "" {
			t.Error("RepoName() = empty, want directory name")
		}
	})
}

func TestTopLevel(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	top, err := TopLevel(testCtx(t), repo)
	if err != nil {
		t.Fatalf("TopLevel() = %v, want nil", err)
	}
	if top != repo {
		t.Errorf("TopLevel() = %q, want %q", top, repo)
	}
}

func TestUpstreamBranch(t *testing.T) {
	t.Parallel()

	t.Run("tracking branch", func(t *testing.T) {
		t.Parallel()
		clone, _ := setupTestRepoWithOrigin(t)

		upstream, err := UpstreamBranch(testCtx(t), clone, "main")
		if err != nil {
			t.Fatalf("UpstreamBranch() = %v, want nil", err)
		}
		if upstream != "origin/main" {
			t.Errorf("UpstreamBranch() = %q, want %q", upstream, "origin/main")
		}
	})

	t.Run("no upstream", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)

		upstream, err := UpstreamBranch(testCtx(t), repo, "main")
		if err != nil {
			t.Fatalf("UpstreamBranch() = %v, want nil", err)
		}
		if upstream != "" {
			t.Errorf("UpstreamBranch() = %q, want empty", upstream)
		}
	})
}
