package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wfcli/wf/internal/cmd"
)

// CommandError is returned when git exits with a non-zero status.
// It carries the argument list, the exit code, and the captured stderr.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	err      error
}

func (e *CommandError) Error() string {
	name := "git"
	if len(e.Args) > 0 {
		name = "git " + e.Args[0]
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", name, e.Stderr)
	}
	return fmt.Sprintf("%s: exit status %d", name, e.ExitCode)
}

func (e *CommandError) Unwrap() error { return e.err }

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return wrapCommandError(args, cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...))
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout with trailing newlines removed.
func outputGit(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	if err != nil {
		return "", wrapCommandError(args, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// wrapCommandError converts a non-zero exit into a *CommandError.
// Context and start-up errors pass through unchanged.
func wrapCommandError(args []string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Args:     args,
			ExitCode: exitErr.ExitCode,
			Stderr:   exitErr.Stderr,
			err:      err,
		}
	}
	return err
}

// hasExitCode reports whether err is a git failure with the given exit code.
func hasExitCode(err error, code int) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.ExitCode == code
}
