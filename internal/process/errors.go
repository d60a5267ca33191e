package process

import (
	"errors"
	"fmt"
	"strings"
)

// ProcessFailedError reports a command that ran to completion with a nonzero exit code.
type ProcessFailedError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessFailedError) Error() string {
	msg := fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, e.CommandLine())
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", stderr)
	}
	return msg
}

func (e *ProcessFailedError) Unwrap() error {
	return e.Err
}

// CommandLine renders the command for diagnostics. It is never executed.
func (e *ProcessFailedError) CommandLine() string {
	if len(e.Args) == 0 {
		return e.Command
	}
	return e.Command + " " + strings.Join(e.Args, " ")
}

// NewProcessFailedError creates a new ProcessFailedError
func NewProcessFailedError(command string, args []string, exitCode int, stderr string, err error) *ProcessFailedError {
	return &ProcessFailedError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// IsProcessFailed reports whether err is, or wraps, a ProcessFailedError.
func IsProcessFailed(err error) bool {
	var failed *ProcessFailedError
	return errors.As(err, &failed)
}
