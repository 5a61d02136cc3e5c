// Package cmd provides helpers for executing shell commands with proper error handling.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/wfcli/wf/internal/log"
)

// ExitError is returned when a command exits with a non-zero status.
// The error message is the command's trimmed stderr when it produced any,
// so failures read like the underlying tool's own diagnostics.
type ExitError struct {
	ExitCode int
	Stderr   string
	err      error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.err.Error()
}

func (e *ExitError) Unwrap() error { return e.err }

// RunContext executes a command with context support and verbose logging.
// The command runs in dir (current directory if empty). A non-zero exit
// is returned as an *ExitError.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, false)
	return err
}

// OutputContext executes a command with context support and verbose logging,
// returning its stdout. The trailing newline is kept; callers trim as needed.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return run(ctx, dir, name, args, true)
}

func run(ctx context.Context, dir, name string, args []string, capture bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	if capture {
		c.Stdout = &stdout
	}
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
				err:      err,
			}
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}
