package git

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Client runs git on behalf of the commit flow.
type Client struct {
	exec Executor

	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewClient returns a Client wired to the process stdio.
func NewClient() *Client {
	return NewClientWithExecutor(NewExecExecutor())
}

// NewClientWithExecutor returns a Client running commands through e.
func NewClientWithExecutor(e Executor) *Client {
	return &Client{
		exec:   e,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (c *Client) command(args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.Dir
	return cmd
}

// Execute runs git with args and returns its stdout. When strict is set a
// non-zero exit is reported as a *GitError carrying stderr.
func (c *Client) Execute(args []string, strict bool) (string, error) {
	stdout, stderr, err := c.exec.Output(c.command(args...))
	if err != nil {
		if !strict {
			var ec exitCoder
			if errors.As(err, &ec) {
				return stdout, nil
			}
		}
		return stdout, commandError(args, stderr, err)
	}
	return stdout, nil
}

// Passthrough runs "git commit" with args attached to the terminal, for
// flows that are not ours to drive such as --amend.
func (c *Client) Passthrough(args []string) error {
	full := append([]string{"commit"}, args...)
	cmd := c.command(full...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := c.exec.Run(cmd); err != nil {
		return commandError(full, "", err)
	}
	return nil
}

// StagingIsClean reports whether nothing is staged for commit.
func (c *Client) StagingIsClean() (bool, error) {
	out, err := c.Execute([]string{"diff", "--no-ext-diff", "--cached", "--name-only"}, true)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

// Commit runs "git commit -m <message>" followed by the extra args, returning
// git's output. The message goes first so a "--" pathspec separator or a
// trailing option expecting a value in args cannot consume it.
func (c *Client) Commit(message string, args []string) (string, error) {
	full := make([]string, 0, len(args)+3)
	full = append(full, "commit", "-m", message)
	full = append(full, args...)

	out, err := c.exec.CombinedOutput(c.command(full...))
	if err != nil {
		return out, commandError(full, out, err)
	}
	return out, nil
}
