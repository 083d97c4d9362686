// Package engine runs the external programs faceswap delegates to: the
// engine that performs detection, training and conversion, and ffmpeg.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/log"
)

// Runner executes a tool to completion.
type Runner interface {
	Run(ctx context.Context, tool string, args []string, stdin io.Reader) error
}

// ExternalToolError reports a tool that could not be started or exited
// with a non-zero status.
type ExternalToolError struct {
	Tool     string
	Args     []string
	ExitCode int
	Err      error
}

func (e *ExternalToolError) Error() string {
	if errors.Is(e.Err, exec.ErrNotFound) {
		return fmt.Sprintf("%s: executable not found in PATH", e.Tool)
	}
	if e.ExitCode != 0 {
		return fmt.Sprintf("%s %s: exited with status %d", e.Tool, strings.Join(e.Args, " "), e.ExitCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

// GetExitCode implements usage.ExitCoder. Tool failures are general
// failures regardless of the tool's own status.
func (e *ExternalToolError) GetExitCode() int { return 1 }

// ExecRunner runs tools as subprocesses. The tool's stdout and stderr
// are forwarded, and stderr is also copied to the log at debug level.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger domain.Logger
}

// NewExecRunner returns a runner forwarding to the process streams.
func NewExecRunner() *ExecRunner {
	r := &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr, Logger: log.Get()}
	if l := log.Default(); l != nil {
		r.Stderr = io.MultiWriter(os.Stderr, l.Writer(log.LevelDebug))
	}
	return r
}

// Run blocks until the tool exits. There is no timeout and no retry;
// cancelling ctx kills the process.
func (r *ExecRunner) Run(ctx context.Context, tool string, args []string, stdin io.Reader) error {
	logger := r.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		logger.Error("engine: %s not found: %v", tool, err)
		return &ExternalToolError{Tool: tool, Args: args, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Info("engine: running %s", cmd.String())

	if err := cmd.Run(); err != nil {
		code := 0
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		logger.Error("engine: %s failed: %v", tool, err)
		return &ExternalToolError{Tool: tool, Args: args, ExitCode: code, Err: err}
	}

	logger.Debug("engine: %s finished", tool)
	return nil
}

// Call records one invocation made through a RecordingRunner.
type Call struct {
	Tool  string
	Args  []string
	Stdin []byte
}

// RecordingRunner records invocations instead of running anything.
// Err, when set, is returned from every call.
type RecordingRunner struct {
	Calls []Call
	Err   error
}

func (r *RecordingRunner) Run(_ context.Context, tool string, args []string, stdin io.Reader) error {
	call := Call{Tool: tool, Args: append([]string(nil), args...)}
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		call.Stdin = data
	}
	r.Calls = append(r.Calls, call)
	return r.Err
}

// Last returns the most recent call, or false when nothing ran.
func (r *RecordingRunner) Last() (Call, bool) {
	if len(r.Calls) == 0 {
		return Call{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}
