// Package process runs external programs and captures their output.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultCommandTimeout applies when the caller's context has no deadline.
const DefaultCommandTimeout = 5 * time.Minute

// waitDelay bounds how long output pipes are drained after the process is killed.
const waitDelay = time.Second

// Runner executes a program with an argument vector and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	RunLines(ctx context.Context, name string, args ...string) ([]string, error)
}

// ExecRunner is the os/exec implementation of Runner.
type ExecRunner struct {
	workingDir string
	timeout    time.Duration
	log        *zap.Logger
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithWorkingDir runs every command in dir.
func WithWorkingDir(dir string) Option {
	return func(r *ExecRunner) { r.workingDir = dir }
}

// WithTimeout overrides DefaultCommandTimeout.
func WithTimeout(d time.Duration) Option {
	return func(r *ExecRunner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger logs every invocation at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(r *ExecRunner) {
		if log != nil {
			r.log = log
		}
	}
}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		timeout: DefaultCommandTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WorkingDir returns the directory commands run in; empty means the process cwd.
func (r *ExecRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes name with args and returns trimmed stdout.
// A nonzero exit yields a *ProcessFailedError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...) //#nosec G204 -- argument vector, no shell involved
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	r.log.Debug("command finished",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	if err != nil {
		switch ctxErr := ctx.Err(); {
		case errors.Is(ctxErr, context.DeadlineExceeded):
			return "", fmt.Errorf("command %s timed out: %w", name, ctxErr)
		case ctxErr != nil:
			return "", fmt.Errorf("command %s interrupted: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", NewProcessFailedError(name, args, exitErr.ExitCode(), stderr.String(), err)
		}
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunLines executes name with args and returns its output split into trimmed lines.
// Empty output yields an empty slice.
func (r *ExecRunner) RunLines(ctx context.Context, name string, args ...string) ([]string, error) {
	out, err := r.Run(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	return SplitLines(out), nil
}

// SplitLines splits output on newlines and trims each line.
func SplitLines(out string) []string {
	if out == "" {
		return []string{}
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
