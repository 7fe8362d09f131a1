package core

import (
	"errors"
	"fmt"
)

// ErrUserAborted is returned when the user cancels a required selection.
var ErrUserAborted = errors.New("user quit, aborting")

// EnvironmentError wraps a failure of the prompt backend itself.
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("prompt %s failed: %v", e.Op, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// wrapPromptErr maps a Prompter failure onto the builder's error taxonomy.
func wrapPromptErr(op string, err error) error {
	if errors.Is(err, ErrUserAborted) {
		return ErrUserAborted
	}
	return &EnvironmentError{Op: op, Err: err}
}
