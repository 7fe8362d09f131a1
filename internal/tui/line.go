package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gitcz/internal/core"
)

// Line asks questions over plain reader/writer streams, for when no
// terminal is attached. It implements core.Prompter.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{in: bufio.NewReader(r), out: w}
}

var _ core.Prompter = (*Line)(nil)

func (l *Line) readLine() (string, error) {
	s, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (l *Line) Select(prompt string, options []string, defaultIndex int) (int, bool, error) {
	fmt.Fprintln(l.out, prompt)
	for i, o := range options {
		fmt.Fprintf(l.out, "  %2d) %s\n", i+1, o)
	}

	for {
		fmt.Fprintf(l.out, "Enter a number, or q to quit [%d]: ", defaultIndex+1)
		answer, err := l.readLine()
		if err != nil {
			return 0, false, err
		}

		answer = strings.TrimSpace(answer)
		switch answer {
		case "":
			return defaultIndex, true, nil
		case "q", "Q":
			return 0, false, nil
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, true, nil
		}
		fmt.Fprintf(l.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

func (l *Line) Confirm(prompt string, defaultValue bool) (bool, error) {
	hint := "(y/N)"
	if defaultValue {
		hint = "(Y/n)"
	}

	for {
		fmt.Fprintf(l.out, "%s %s: ", prompt, hint)
		answer, err := l.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return defaultValue, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.out, "Please answer y or n.")
	}
}

func (l *Line) Input(prompt string, allowEmpty bool) (string, error) {
	for {
		fmt.Fprintf(l.out, "%s ", prompt)
		answer, err := l.readLine()
		if err != nil {
			return "", err
		}
		if allowEmpty || strings.TrimSpace(answer) != "" {
			return answer, nil
		}
		fmt.Fprintln(l.out, "A value is required.")
	}
}
