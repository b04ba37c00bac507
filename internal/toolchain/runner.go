// Package toolchain runs the external JavaScript toolchain (npm, pnpm,
// and the scripts they front) on behalf of the course tooling.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Spec describes one command-line invocation.
type Spec struct {
	Dir     string        // working directory
	Line    string        // full command line, run through the shell
	Env     []string      // extra KEY=VALUE pairs appended to the inherited environment
	Timeout time.Duration // bounds the run when positive; zero means unbounded
}

// Result holds the outcome of a run. Err is set when the command never
// produced an exit status (spawn failure, timeout, cancellation).
type Result struct {
	Success  bool
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

const failureTailLimit = 500

// Failure summarizes why the run failed, preferring the runner error,
// then the tail of the captured output, then the bare exit status.
func (r Result) Failure() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	s := strings.TrimSpace(r.Stderr)
	if s == "" {
		s = strings.TrimSpace(r.Stdout)
	}
	if s == "" {
		return fmt.Sprintf("exit status %d", r.ExitCode)
	}
	if len(s) > failureTailLimit {
		s = "..." + s[len(s)-failureTailLimit:]
	}
	return fmt.Sprintf("exit status %d: %s", r.ExitCode, s)
}

// StreamKind labels which stream an output chunk arrived on.
type StreamKind int

const (
	StdoutStream StreamKind = iota
	StderrStream
)

// Runner executes toolchain commands. Tests substitute a mock.
type Runner interface {
	Run(ctx context.Context, spec Spec) Result
	RunStream(ctx context.Context, spec Spec, deliver func(StreamKind, []byte)) Result
	Start(ctx context.Context, spec Spec) (*exec.Cmd, error)
}

// ExecRunner runs commands through the platform shell.
type ExecRunner struct {
	Shell Shell
}

// NewExecRunner returns an ExecRunner using the platform shell.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Shell: DetectShell()}
}

func (r *ExecRunner) shell() Shell {
	if r.Shell != nil {
		return r.Shell
	}
	return DetectShell()
}

// Run executes one command line and captures its output.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) Result {
	return r.run(ctx, spec, nil)
}

// RunStream executes like Run while handing output chunks to deliver as
// they arrive. deliver is called from the command's copy goroutines and
// must not retain the chunk after returning.
func (r *ExecRunner) RunStream(ctx context.Context, spec Spec, deliver func(StreamKind, []byte)) Result {
	return r.run(ctx, spec, deliver)
}

func (r *ExecRunner) run(ctx context.Context, spec Spec, deliver func(StreamKind, []byte)) Result {
	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	name, args := r.shell().Wrap(spec.Line)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	setProcGroup(cmd)
	cmd.Cancel = func() error {
		return killTree(cmd)
	}
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = outputWriter(&stdout, StdoutStream, deliver)
	cmd.Stderr = outputWriter(&stderr, StderrStream, deliver)

	runErr := cmd.Run()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: -1}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		res.Err = fmt.Errorf("command timed out after %s: %s", spec.Timeout, spec.Line)
		return res
	case errors.Is(ctx.Err(), context.Canceled):
		res.Err = fmt.Errorf("command canceled: %s", spec.Line)
		return res
	}
	code, err := exitCode(runErr)
	if err != nil {
		res.Err = err
		return res
	}
	res.ExitCode = code
	res.Success = code == 0
	return res
}

// Start launches an interactive command attached to the caller's
// terminal and returns without waiting. Canceling the context kills the
// whole process group.
func (r *ExecRunner) Start(ctx context.Context, spec Spec) (*exec.Cmd, error) {
	name, args := r.shell().Wrap(spec.Line)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setProcGroup(cmd)
	cmd.Cancel = func() error {
		return killTree(cmd)
	}
	cmd.WaitDelay = 5 * time.Second

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}

func outputWriter(buf *bytes.Buffer, kind StreamKind, deliver func(StreamKind, []byte)) io.Writer {
	if deliver == nil {
		return buf
	}
	return io.MultiWriter(buf, writerFunc(func(p []byte) (int, error) {
		deliver(kind, p)
		return len(p), nil
	}))
}

// exitCode extracts an exit code from a command error.
// Returns (code, nil) for ExitError, (0, err) for other errors, (0, nil) for nil.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
