package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e *exitError) ExitCode() int { return e.code }

type fakeExecutor struct {
	calls [][]string
	dirs  []string

	stdout string
	stderr string
	err    error
}

func (f *fakeExecutor) record(cmd *exec.Cmd) {
	f.calls = append(f.calls, cmd.Args[1:])
	f.dirs = append(f.dirs, cmd.Dir)
}

func (f *fakeExecutor) Run(cmd *exec.Cmd) error {
	f.record(cmd)
	if cmd.Stdout != nil {
		_, _ = cmd.Stdout.Write([]byte(f.stdout))
	}
	return f.err
}

func (f *fakeExecutor) CombinedOutput(cmd *exec.Cmd) (string, error) {
	f.record(cmd)
	return f.stdout + f.stderr, f.err
}

func (f *fakeExecutor) Output(cmd *exec.Cmd) (string, string, error) {
	f.record(cmd)
	return f.stdout, f.stderr, f.err
}

func TestStagingIsClean(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   bool
	}{
		{"nothing staged", "", true},
		{"whitespace only", "\n", true},
		{"files staged", "main.go\nREADME.md\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := &fakeExecutor{stdout: tt.stdout}
			c := NewClientWithExecutor(fe)

			clean, err := c.StagingIsClean()
			require.NoError(t, err)
			assert.Equal(t, tt.want, clean)
			assert.Equal(t, [][]string{{"diff", "--no-ext-diff", "--cached", "--name-only"}}, fe.calls)
		})
	}
}

func TestStagingIsCleanOutsideRepository(t *testing.T) {
	fe := &fakeExecutor{stderr: "fatal: not a git repository", err: &exitError{code: 129}}
	c := NewClientWithExecutor(fe)

	_, err := c.StagingIsClean()

	var gitErr *GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, 129, gitErr.ExitCode)
	assert.Contains(t, gitErr.Error(), "not a git repository")
	assert.ErrorIs(t, err, ErrGitFailed)
}

func TestExecuteNonStrict(t *testing.T) {
	fe := &fakeExecutor{stdout: "partial", err: &exitError{code: 1}}
	c := NewClientWithExecutor(fe)

	out, err := c.Execute([]string{"status"}, false)
	require.NoError(t, err)
	assert.Equal(t, "partial", out)
}

func TestExecuteStartFailure(t *testing.T) {
	fe := &fakeExecutor{err: exec.ErrNotFound}
	c := NewClientWithExecutor(fe)

	_, err := c.Execute([]string{"status"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)

	var gitErr *GitError
	assert.False(t, errors.As(err, &gitErr))
}

func TestCommit(t *testing.T) {
	fe := &fakeExecutor{stdout: "[main 1a2b3c4] feat: add x\n"}
	c := NewClientWithExecutor(fe)
	c.Dir = "/tmp/repo"

	out, err := c.Commit("feat: add x", []string{"-a", "--no-verify"})
	require.NoError(t, err)
	assert.Equal(t, "[main 1a2b3c4] feat: add x\n", out)
	assert.Equal(t, [][]string{{"commit", "-m", "feat: add x", "-a", "--no-verify"}}, fe.calls)
	assert.Equal(t, []string{"/tmp/repo"}, fe.dirs)
}

func TestCommitMessageComesBeforeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "pathspec separator",
			args: []string{"--", "a.txt"},
			want: []string{"commit", "-m", "feat: add a", "--", "a.txt"},
		},
		{
			name: "trailing option expecting a value",
			args: []string{"-a", "--cleanup"},
			want: []string{"commit", "-m", "feat: add a", "-a", "--cleanup"},
		},
		{
			name: "no args",
			args: nil,
			want: []string{"commit", "-m", "feat: add a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := &fakeExecutor{}
			c := NewClientWithExecutor(fe)

			_, err := c.Commit("feat: add a", tt.args)
			require.NoError(t, err)
			require.Len(t, fe.calls, 1)
			assert.Equal(t, tt.want, fe.calls[0])
		})
	}
}

func TestCommitFailure(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantHint bool
	}{
		{"missing identity", 128, true},
		{"hook rejected", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := &fakeExecutor{stderr: "fatal: something", err: &exitError{code: tt.code}}
			c := NewClientWithExecutor(fe)

			_, err := c.Commit("fix: y", nil)

			var gitErr *GitError
			require.ErrorAs(t, err, &gitErr)
			assert.Equal(t, tt.code, gitErr.ExitCode)
			assert.Equal(t, []string{"commit", "-m", "fix: y"}, gitErr.Args)
			assert.True(t, strings.HasPrefix(gitErr.Error(), "git exited with error"))
			if tt.wantHint {
				assert.Contains(t, gitErr.Hint(), "git config --global user.email")
			} else {
				assert.Empty(t, gitErr.Hint())
			}
		})
	}
}

func TestPassthrough(t *testing.T) {
	var stdout bytes.Buffer
	fe := &fakeExecutor{stdout: "amended\n"}
	c := NewClientWithExecutor(fe)
	c.Stdout = &stdout

	require.NoError(t, c.Passthrough([]string{"--amend", "--no-edit"}))
	assert.Equal(t, [][]string{{"commit", "--amend", "--no-edit"}}, fe.calls)
	assert.Equal(t, "amended\n", stdout.String())

	fe.err = &exitError{code: 1}
	err := c.Passthrough([]string{"--amend"})
	var gitErr *GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, 1, gitErr.ExitCode)
}
