// Package ui provides terminal UI components for wf command output.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// for interactive and styled terminal output.
//
// # Picker
//
// [Pick] runs a fuzzy-filterable item picker, used by branch selection
// when a pattern matches several branches. The picker renders to stderr
// so stdout
// stays available for piping, and [IsInteractive] gates it behind a
// TTY check.
//
// # Static Output
//
// The static subpackage renders non-interactive tables for branch and
// repository listings. The styles subpackage holds the shared theme,
// color, and symbol state configured at startup.
package ui
