package errors

import (
	stderrors "errors"
	"fmt"
)

// Error type constants
const (
	ValidationError = "VALIDATION_ERROR"
	ToolNotFound    = "TOOL_NOT_FOUND"
	MissingFile     = "MISSING_FILE"
	LaunchFailure   = "LAUNCH_FAILURE"
	ProcessStart    = "PROCESS_START"
	NonZeroExit     = "NON_ZERO_EXIT"
	CopyFailure     = "COPY_FAILURE"
	Fatal           = "FATAL"
	StepFailed      = "STEP_FAILED"
)

// ErrElevationDeclined is returned when the user cancels the elevation prompt.
var ErrElevationDeclined = stderrors.New("elevation request was declined")

// RunError is a structured error reported in run results.
type RunError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	StepID  string `json:"step_id,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func (e *RunError) Error() string {
	if e.StepID != "" {
		return fmt.Sprintf("[%s] step %s: %s", e.Type, e.StepID, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// NewValidationError reports a manifest problem not tied to one step.
func NewValidationError(msg, hint string) *RunError {
	return &RunError{Type: ValidationError, Message: msg, Hint: hint}
}

// LaunchError means the target executable could not be resolved.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ProcessStartError means the OS refused to start the process.
type ProcessStartError struct {
	Path string
	Err  error
}

func (e *ProcessStartError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Path, e.Err)
}

func (e *ProcessStartError) Unwrap() error { return e.Err }

// ExitError reports a process that ran but exited non-zero.
type ExitError struct {
	Path string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Path, e.Code)
}

// KindOf maps err onto one of the error type constants.
func KindOf(err error) string {
	var (
		runErr   *RunError
		launch   *LaunchError
		startErr *ProcessStartError
		exitErr  *ExitError
	)
	switch {
	case err == nil:
		return ""
	case stderrors.As(err, &runErr):
		return runErr.Type
	case stderrors.As(err, &launch):
		return LaunchFailure
	case stderrors.As(err, &startErr):
		return ProcessStart
	case stderrors.As(err, &exitErr):
		return NonZeroExit
	default:
		return StepFailed
	}
}
