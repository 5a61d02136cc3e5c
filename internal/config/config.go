package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ThemeConfig holds UI theme configuration.
type ThemeConfig struct {
	Name     string `toml:"name"`     // default|dracula|nord|gruvbox|catppuccin|none
	Mode     string `toml:"mode"`     // auto|light|dark
	Nerdfont bool   `toml:"nerdfont"` // use nerd font symbols

	// Individual color overrides (hex or ANSI color strings)
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Muted   string `toml:"muted"`
	Normal  string `toml:"normal"`
	Info    string `toml:"info"`
	Warning string `toml:"warning"`
}

// Config holds the wf configuration.
type Config struct {
	Remote     string      `toml:"remote"`      // default remote for branch discovery
	RepoDir    string      `toml:"repo_dir"`    // scan root for `wf repos`
	IgnoreFile string      `toml:"ignore_file"` // per-directory scan excludes
	Theme      ThemeConfig `toml:"theme"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Remote:     "origin",
		IgnoreFile: ".wfignore",
	}
}

// envOverride lets tests and scripts point at an alternate config file.
const envOverride = "WF_CONFIG"

// Path returns the config file location: $WF_CONFIG when set, otherwise
// ~/.config/wf/config.toml.
func Path() (string, error) {
	if p := os.Getenv(envOverride); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wf", "config.toml"), nil
}

// Load reads the config file. A missing file yields Default() without an
// error; a present but invalid file is an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	if cfg.RepoDir != "" {
		expanded, err := expandPath(cfg.RepoDir)
		if err != nil {
			return Default(), fmt.Errorf("expand repo_dir: %w", err)
		}
		cfg.RepoDir = expanded
	}

	return cfg, nil
}

// expandPath expands ~ to the user's home directory.
// Shells don't expand ~ inside config files.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// defaultFileContent is written by `wf config init`.
const defaultFileContent = `# wf configuration

# Default remote used for branch discovery.
# remote = "origin"

# Directory scanned by 'wf repos'. Must be absolute or start with ~.
# repo_dir = "~/code"

# Name of the per-directory ignore file honored while scanning.
# Lines are glob patterns, # starts a comment, a leading ! re-includes.
# ignore_file = ".wfignore"

# [theme]
# name = "default"   # default|dracula|nord|gruvbox|catppuccin|none
# mode = "auto"      # auto|light|dark
# nerdfont = false
`

// WriteDefault writes a commented default config file. Refuses to
// overwrite an existing file.
func WriteDefault() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultFileContent), 0644); err != nil {
		return "", err
	}
	return path, nil
}
