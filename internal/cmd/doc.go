// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repo, "git", "fetch", "--all"); err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("git failed: %w", err)
//	}
//
//	// For commands that return output:
//	out, err := cmd.OutputContext(ctx, repo, "git", "branch", "--show-current")
//	if err != nil {
//	    // err contains stderr output
//	}
//
// Non-zero exits are returned as [*ExitError] so callers can branch on the
// exit code (git uses distinct codes for "key not found" vs real failures).
//
// # Design Notes
//
// wf shells out to the git and direnv CLIs rather than using Go libraries.
// This approach is simpler, more reliable, and ensures compatibility with
// user configurations (SSH keys, credential helpers, etc.).
package cmd
