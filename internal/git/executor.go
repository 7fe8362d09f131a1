package git

import (
	"bytes"
	"os/exec"
)

// Executor runs prepared git commands. Tests swap it for a fake.
type Executor interface {
	// Run executes cmd with whatever stdio it already carries.
	Run(cmd *exec.Cmd) error
	// CombinedOutput executes cmd and returns stdout and stderr together.
	CombinedOutput(cmd *exec.Cmd) (string, error)
	// Output executes cmd and returns stdout, with stderr kept apart.
	Output(cmd *exec.Cmd) (stdout string, stderr string, err error)
}

// ExecExecutor delegates to os/exec.
type ExecExecutor struct{}

func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

func (e *ExecExecutor) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func (e *ExecExecutor) CombinedOutput(cmd *exec.Cmd) (string, error) {
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func (e *ExecExecutor) Output(cmd *exec.Cmd) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
