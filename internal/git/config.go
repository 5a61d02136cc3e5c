package git

import (
	"context"
	"strings"
)

// ConfigGet returns a git config value, following git's usual local/global
// resolution. Returns def when the key is not set; any other failure is
// returned as a *CommandError.
func ConfigGet(ctx context.Context, dir, key, def string) (string, error) {
	out, err := outputGit(ctx, dir, "config", "--get", key)
	if err != nil {
		// Exit code 1 means the key doesn't exist
		if hasExitCode(err, 1) {
			return def, nil
		}
		return "", err
	}
	if out == "" {
		return def, nil
	}
	return out, nil
}

// ConfigGetAll returns all values of a multi-valued config key.
// Returns nil when the key is not set.
func ConfigGetAll(ctx context.Context, dir, key string) ([]string, error) {
	out, err := outputGit(ctx, dir, "config", "--get-all", key)
	if err != nil {
		if hasExitCode(err, 1) {
			return nil, nil
		}
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// ConfigSet sets a config key in the repository's local config.
func ConfigSet(ctx context.Context, dir, key, value string) error {
	return runGit(ctx, dir, "config", key, value)
}

// ConfigAdd appends a value to a multi-valued config key.
func ConfigAdd(ctx context.Context, dir, key, value string) error {
	return runGit(ctx, dir, "config", "--add", key, value)
}

// ConfigUnsetAll removes all values of a config key.
// A key that was never set is not an error.
func ConfigUnsetAll(ctx context.Context, dir, key string) error {
	err := runGit(ctx, dir, "config", "--unset-all", key)
	// Exit code 5 means the key doesn't exist
	if hasExitCode(err, 5) {
		return nil
	}
	return err
}
