package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitFailed marks every non-zero git exit.
var ErrGitFailed = errors.New("git exited with an error")

const missingIdentityHint = `Git exited with code 128. Did you forget to run:

  git config --global user.email "you@example.com"
  git config --global user.name "Your Name"`

// GitError carries the exit code and captured output of a failed git command.
type GitError struct {
	Args     []string
	ExitCode int
	Output   string
	Err      error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git exited with error %d", e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	return msg
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// Hint returns advice for well-known failures, or "" when there is none.
func (e *GitError) Hint() string {
	if e.ExitCode == 128 {
		return missingIdentityHint
	}
	return ""
}

type exitCoder interface {
	ExitCode() int
}

// commandError turns a failed run into a *GitError when git actually ran and
// exited non-zero. Failures to start git are only wrapped.
func commandError(args []string, output string, err error) error {
	var ec exitCoder
	if !errors.As(err, &ec) {
		return fmt.Errorf("failed to run git: %w", err)
	}
	return &GitError{
		Args:     args,
		ExitCode: ec.ExitCode(),
		Output:   output,
		Err:      fmt.Errorf("%w: %w", ErrGitFailed, err),
	}
}
