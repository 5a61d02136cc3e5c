package git

import (
	"context"
	"strconv"
	"strings"
)

// Commit is a single commit from the log.
type Commit struct {
	Hash    string
	Subject string
}

// CommitFilter narrows the commits returned by Commits.
// Zero values disable the corresponding filter.
type CommitFilter struct {
	Since  string // passed to --since
	Author string // passed to --author
	Max    int    // passed to --max-count
}

// Commits returns commits on HEAD matching the filter, newest first.
func Commits(ctx context.Context, dir string, filter CommitFilter) ([]Commit, error) {
	args := []string{"log", "--format=%H%x00%s"}
	if filter.Since != "" {
		args = append(args, "--since="+filter.Since)
	}
	if filter.Author != "" {
		args = append(args, "--author="+filter.Author)
	}
	if filter.Max > 0 {
		args = append(args, "--max-count="+strconv.Itoa(filter.Max))
	}

	out, err := outputGit(ctx, dir, args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var commits []Commit
	for line := range strings.SplitSeq(out, "\n") {
		hash, subject, _ := strings.Cut(line, "\x00")
		if hash == "" {
			continue
		}
		commits = append(commits, Commit{Hash: hash, Subject: subject})
	}
	return commits, nil
}

// FirstBranchCommit returns the subject of the oldest commit reachable from
// branch but not from base, or empty when the branch has no own commits.
func FirstBranchCommit(ctx context.Context, dir, branch, base string) (string, error) {
	out, err := outputGit(ctx, dir, "log", "--reverse", "--format=%s", base+".."+branch)
	if err != nil {
		return "", err
	}
	subject, _, _ := strings.Cut(out, "\n")
	return subject, nil
}
