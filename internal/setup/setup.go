// Package setup orchestrates one-shot repository initialization: submodule
// update, the direnv .envrc symlink, and user-template application.
//
// The submodule step is fatal; partial submodule state is unsafe to ignore.
// The direnv and template steps are independently best-effort: each failure
// is recorded in the result and the other step still runs.
package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wfcli/wf/internal/direnv"
	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/log"
	"github.com/wfcli/wf/internal/template"
)

// Status is the outcome of a single initialization step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// StepResult is one named step's outcome. Err is set only for failed steps.
type StepResult struct {
	Name   string
	Status Status
	Detail string
	Err    error
}

// Result aggregates the per-step outcomes of InitializeRepo.
type Result struct {
	Steps []StepResult
}

// Failed returns the steps that failed.
func (r *Result) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Options controls which initialization steps run.
type Options struct {
	Template     string // explicit template directory, empty for config/default
	SkipDirenv   bool
	SkipTemplate bool
}

// InitializeRepo runs submodule update, direnv setup and template
// application against repo, in that order. A submodule failure aborts and
// is returned as the error alongside the partial result; direnv and
// template failures are recorded in the result but never abort.
func InitializeRepo(ctx context.Context, repo string, opts Options) (*Result, error) {
	l := log.FromContext(ctx)
	result := &Result{}

	if err := git.SubmoduleUpdate(ctx, repo); err != nil {
		result.Steps = append(result.Steps, StepResult{Name: "submodules", Status: StatusFailed, Err: err})
		return result, fmt.Errorf("submodule update: %w", err)
	}
	result.Steps = append(result.Steps, StepResult{Name: "submodules", Status: StatusOK})

	if opts.SkipDirenv {
		result.Steps = append(result.Steps, StepResult{Name: "direnv", Status: StatusSkipped, Detail: "skipped by flag"})
	} else {
		result.Steps = append(result.Steps, direnvStep(ctx, repo))
	}

	if opts.SkipTemplate {
		result.Steps = append(result.Steps, StepResult{Name: "template", Status: StatusSkipped, Detail: "skipped by flag"})
	} else {
		result.Steps = append(result.Steps, templateStep(ctx, repo, opts.Template))
	}

	for _, s := range result.Steps {
		l.Debug("init step", "name", s.Name, "status", string(s.Status))
	}
	return result, nil
}

func direnvStep(ctx context.Context, repo string) StepResult {
	if _, err := template.SymlinkEnvrc(repo, ""); err != nil {
		return StepResult{Name: "direnv", Status: StatusFailed, Err: err}
	}

	envrc := filepath.Join(repo, ".envrc")
	if _, err := os.Lstat(envrc); err != nil {
		return StepResult{Name: "direnv", Status: StatusSkipped, Detail: "no .envrc"}
	}
	if !direnv.Installed() {
		return StepResult{Name: "direnv", Status: StatusSkipped, Detail: "direnv not installed"}
	}

	if err := direnv.Allow(ctx, envrc); err != nil {
		return StepResult{Name: "direnv", Status: StatusFailed, Err: err}
	}
	return StepResult{Name: "direnv", Status: StatusOK}
}

func templateStep(ctx context.Context, repo, explicit string) StepResult {
	applied, err := template.Apply(ctx, repo, explicit)
	if err != nil {
		return StepResult{Name: "template", Status: StatusFailed, Err: err}
	}
	if len(applied) == 0 {
		return StepResult{Name: "template", Status: StatusSkipped, Detail: "nothing to apply"}
	}
	return StepResult{
		Name:   "template",
		Status: StatusOK,
		Detail: fmt.Sprintf("%d entries applied", len(applied)),
	}
}
