package git

import (
	"errors"
	"os/exec"
	"slices"
	"strings"
	"testing"
)

func TestLocalBranches(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	gitRun(t, repo, "branch", "feature-a")
	gitRun(t, repo, "branch", "feature-b")

	branches, err := LocalBranches(testCtx(t), repo)
	if err != nil {
		t.Fatalf("LocalBranches() = %v, want nil", err)
	}
	want := []string{"feature-a", "feature-b", "main"}
	if !slices.Equal(branches, want) {
		t.Errorf("LocalBranches() = %v, want %v", branches, want)
	}
}

func TestRemoteBranches(t *testing.T) {
	t.Parallel()
	clone, _ := setupTestRepoWithOrigin(t)
	gitRun(t, clone, "branch", "feature-c")
	gitRun(t, clone, "push", "origin", "feature-c")
	gitRun(t, clone, "fetch", "origin")

	branches, err := RemoteBranches(testCtx(t), clone, "origin")
	if err != nil {
		t.Fatalf("RemoteBranches() = %v, want nil", err)
	}
	if !slices.Contains(branches, "feature-c") || !slices.Contains(branches, "main") {
		t.Errorf("RemoteBranches() = %v, want feature-c and main", branches)
	}
	if slices.Contains(branches, "HEAD") {
		t.Errorf("RemoteBranches() = %v, should not contain HEAD", branches)
	}
}

func TestFindBranches(t *testing.T) {
	t.Parallel()

	// Locals feature-a, feature-b, main; remotes feature-c, bugfix-x.
	setup := func(t *testing.T) string {
		clone, _ := setupTestRepoWithOrigin(t)
		gitRun(t, clone, "branch", "feature-a")
		gitRun(t, clone, "branch", "feature-b")
		gitRun(t, clone, "branch", "feature-c")
		gitRun(t, clone, "branch", "bugfix-x")
		gitRun(t, clone, "push", "origin", "feature-c", "bugfix-x")
		gitRun(t, clone, "branch", "-D", "feature-c", "bugfix-x")
		gitRun(t, clone, "fetch", "origin")
		return clone
	}

	t.Run("glob across local and remote", func(t *testing.T) {
		t.Parallel()
		clone := setup(t)

		branches, err := FindBranches(testCtx(t), clone, "feature-*", "")
		if err != nil {
			t.Fatalf("FindBranches() = %v, want nil", err)
		}
		want := []string{"feature-a", "feature-b", "feature-c"}
		if !slices.Equal(branches, want) {
			t.Errorf("FindBranches(feature-*) = %v, want %v", branches, want)
		}
	})

	t.Run("dedupes names in both namespaces", func(t *testing.T) {
		t.Parallel()
		clone := setup(t)
		// main exists locally and under origin/
		branches, err := FindBranches(testCtx(t), clone, "main", "")
		if err != nil {
			t.Fatalf("FindBranches() = %v, want nil", err)
		}
		if !slices.Equal(branches, []string{"main"}) {
			t.Errorf("FindBranches(main) = %v, want [main]", branches)
		}
	})

	t.Run("exclude globs", func(t *testing.T) {
		t.Parallel()
		clone := setup(t)
		gitRun(t, clone, "branch", "old/archive/feature-z")
		gitRun(t, clone, "config", "workflow.branches.exclude", "*archive/*")

		branches, err := FindBranches(testCtx(t), clone, "*feature-*", "")
		if err != nil {
			t.Fatalf("FindBranches() = %v, want nil", err)
		}
		if slices.Contains(branches, "old/archive/feature-z") {
			t.Errorf("FindBranches() = %v, excluded branch present", branches)
		}
	})

	t.Run("priority ordering", func(t *testing.T) {
		t.Parallel()
		clone := setup(t)
		gitRun(t, clone, "branch", "feature-z")
		gitRun(t, clone, "config", "workflow.branches.priority", "feature-z, feature-b")

		branches, err := FindBranches(testCtx(t), clone, "feature-*", "")
		if err != nil {
			t.Fatalf("FindBranches() = %v, want nil", err)
		}
		want := []string{"feature-z", "feature-b", "feature-a", "feature-c"}
		if !slices.Equal(branches, want) {
			t.Errorf("FindBranches() = %v, want %v", branches, want)
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		clone := setup(t)
		if _, err := FindBranches(testCtx(t), clone, "[", ""); err == nil {
			t.Error("FindBranches([) = nil, want error")
		}
	})
}

func TestSubmoduleUpdate(t *testing.T) {
	t.Parallel()

	t.Run("no submodules is a no-op", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		if err := SubmoduleUpdate(testCtx(t), repo); err != nil {
			t.Errorf("SubmoduleUpdate() = %v, want nil", err)
		}
	})

	t.Run("unreachable submodule fails", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		// A .gitmodules entry pointing nowhere makes init+update fail
		// without needing the network.
		commitFile(t, repo, ".gitmodules",
			"[submodule \"dep\"]\n\tpath = dep\n\turl = /nonexistent/dep.git\n",
			"add submodule config")
		head, headErr := exec.Command("git", "-C", repo, "rev-parse", "HEAD").Output()
		if headErr != nil {
			t.Fatalf("git rev-parse HEAD: %v", headErr)
		}
		gitRun(t, repo, "update-index", "--add", "--cacheinfo",
			"160000,"+strings.TrimSpace(string(head))+",dep")

		err := SubmoduleUpdate(testCtx(t), repo)
		if err == nil {
			t.Fatal("SubmoduleUpdate() = nil, want error")
		}
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			t.Errorf("SubmoduleUpdate() error = %T, want *CommandError", err)
		}
	})
}

func TestFetchAll(t *testing.T) {
	t.Parallel()
	clone, origin := setupTestRepoWithOrigin(t)

	// Create a branch directly in the bare origin so fetch has
	// something to pick up.
	gitRun(t, origin, "branch", "feature-new", "main")

	if err := FetchAll(testCtx(t), clone, true); err != nil {
		t.Fatalf("FetchAll() = %v, want nil", err)
	}

	branches, err := RemoteBranches(testCtx(t), clone, "origin")
	if err != nil {
		t.Fatalf("RemoteBranches() = %v, want nil", err)
	}
	if !slices.Contains(branches, "feature-new") {
		t.Errorf("RemoteBranches() after fetch = %v, want feature-new", branches)
	}
}
