package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// IsTTY reports whether the prompts can be drawn interactively: answers are
// read from stdin and the widgets are drawn on stdout, so both must be
// terminals, and Bubble Tea needs /dev/tty.
func IsTTY() bool {
	if !IsTerminal(os.Stdin) || !IsTerminal(os.Stdout) {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	defer tty.Close()

	return true
}
