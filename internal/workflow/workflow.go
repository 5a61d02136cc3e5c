// Package workflow reads the workflow.* git config keys and expands the
// %(name) placeholders used by branch name formats and ticket URL patterns.
package workflow

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wfcli/wf/internal/git"
)

// Config keys consumed by this package.
const (
	ticketPrefixKey     = "workflow.ticket.prefix"
	ticketURLPatternKey = "workflow.ticket.urlPattern"
	projectNameKey      = "workflow.project.name"
	localFormatKey      = "workflow.branch.localFormat"
	remoteFormatKey     = "workflow.branch.remoteFormat"
)

// Format defaults applied when the branch format keys are unset.
const (
	DefaultLocalFormat  = "%(desc)"
	DefaultRemoteFormat = "%(type)/%(owner)/%(ticket)-%(desc)"
)

// ConfigError indicates required configuration is missing or invalid.
// Proceeding without it would silently do the wrong thing.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// TicketPrefix returns the configured ticket prefix (e.g. "PROJ"),
// empty when unset.
func TicketPrefix(ctx context.Context, dir string) (string, error) {
	return git.ConfigGet(ctx, dir, ticketPrefixKey, "")
}

// TicketURLPattern returns the configured ticket URL pattern containing a
// %(ticket) placeholder, empty when unset.
func TicketURLPattern(ctx context.Context, dir string) (string, error) {
	return git.ConfigGet(ctx, dir, ticketURLPatternKey, "")
}

// ProjectName returns the configured project name, falling back to the
// origin URL's repository name, then to the directory name of the common
// git dir's parent.
func ProjectName(ctx context.Context, dir string) (string, error) {
	name, err := git.ConfigGet(ctx, dir, projectNameKey, "")
	if err != nil || name != "" {
		return name, err
	}

	if name, err = git.RepoName(ctx, dir); err == nil && name != "" {
		return name, nil
	}

	common, err := git.CommonDir(ctx, dir)
	if err != nil {
		return "", err
	}
	return filepath.Base(filepath.Dir(common)), nil
}

// Owner returns the local part of the configured user.email,
// "unknown" when no email is set.
func Owner(ctx context.Context, dir string) (string, error) {
	email, err := git.UserEmail(ctx, dir)
	if err != nil {
		return "", err
	}
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "unknown", nil
	}
	return local, nil
}

// LocalFormat returns the format for local branch names.
func LocalFormat(ctx context.Context, dir string) (string, error) {
	return git.ConfigGet(ctx, dir, localFormatKey, DefaultLocalFormat)
}

// RemoteFormat returns the format for remote branch names.
func RemoteFormat(ctx context.Context, dir string) (string, error) {
	return git.ConfigGet(ctx, dir, remoteFormatKey, DefaultRemoteFormat)
}

var placeholderRe = regexp.MustCompile(`%\((\w+)\)`)

// ExpandFormat replaces %(name) placeholders in format with the supplied
// values. Recognized names are ticket, desc, type and owner, but any name
// present in values is substituted. Unknown placeholders are left verbatim
// so configuration typos stay visible in the output.
func ExpandFormat(format string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(format, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}
