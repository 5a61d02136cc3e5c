package main

import (
	"context"
	"fmt"

	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/setup"
	"github.com/wfcli/wf/internal/ui/styles"
)

// runSetup initializes the repository and reports per-step outcomes.
// The error return is non-nil only when a fatal step aborted or one of
// the best-effort steps failed.
func runSetup(ctx context.Context, repo string, opts setup.Options) error {
	out := output.FromContext(ctx)

	result, err := setup.InitializeRepo(ctx, repo, opts)
	printSteps(out, result)
	if err != nil {
		return err
	}

	if failed := result.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d step(s) failed", len(failed))
	}
	return nil
}

func printSteps(out *output.Printer, result *setup.Result) {
	for _, s := range result.Steps {
		line := fmt.Sprintf("%-12s %s", s.Name, styles.FormatStepStatus(string(s.Status)))
		switch {
		case s.Err != nil:
			line += fmt.Sprintf(" (%v)", s.Err)
		case s.Detail != "":
			line += fmt.Sprintf(" (%s)", s.Detail)
		}
		out.Println(line)
	}
}
