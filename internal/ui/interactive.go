package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether an interactive picker can run: stdin
// must be a terminal (for key input) and stderr must be a terminal
// (the picker renders to stderr so stdout remains pipeable).
func IsInteractive() bool {
	return isTTY(os.Stdin) && isTTY(os.Stderr)
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
