package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
)

// Invocation describes one external process launch.
type Invocation struct {
	Path          string
	Args          []string
	Elevate       bool
	CaptureOutput bool
	NoWindow      bool
	Dir           string
}

func (inv Invocation) String() string {
	return strings.Join(append([]string{inv.Path}, inv.Args...), " ")
}

// Result holds the outcome of a finished process. A non-zero ExitCode is
// not an error at this layer.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner launches external processes and waits for them to exit.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (*Result, error)
}

// Exec runs processes on the local machine. There is no timeout: a child
// that never exits blocks the caller.
type Exec struct{}

// Run starts inv and blocks until it exits.
func (Exec) Run(ctx context.Context, inv Invocation) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, &insterrors.ProcessStartError{Path: inv.Path, Err: err}
	}

	path, err := resolve(inv.Path)
	if err != nil {
		return nil, &insterrors.LaunchError{Path: inv.Path, Err: err}
	}

	cmd, wrapped, err := command(path, inv)
	if err != nil {
		return nil, &insterrors.ProcessStartError{Path: inv.Path, Err: err}
	}
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}
	var stdout, stderr bytes.Buffer
	if inv.CaptureOutput {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, &insterrors.ProcessStartError{Path: inv.Path, Err: err}
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &insterrors.ProcessStartError{Path: inv.Path, Err: err}
		}
		exitCode = exitErr.ExitCode()
	}

	if wrapped && exitCode == elevationCancelledCode {
		return nil, &insterrors.ProcessStartError{Path: inv.Path, Err: insterrors.ErrElevationDeclined}
	}

	return &Result{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// resolve checks that an explicit path exists and looks bare names up in PATH.
func resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty executable path")
	}
	if strings.ContainsAny(path, `/\`) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return exec.LookPath(path)
}
