// Package config handles loading and validation of wf tool configuration.
//
// Configuration is read from ~/.config/wf/config.toml (overridable via the
// WF_CONFIG environment variable). This file configures the tool itself;
// per-repository workflow settings live in git config and are read by the
// workflow package.
//
// # Key Settings
//
//   - remote: Default remote used for branch discovery (default: "origin")
//   - repo_dir: Directory scanned by "wf repos" (must be absolute or ~/...)
//   - ignore_file: Name of the per-directory scan ignore file (default: ".wfignore")
//   - [theme]: UI theme name, light/dark mode, nerdfont symbols and
//     individual color overrides
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
