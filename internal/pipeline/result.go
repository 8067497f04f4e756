package pipeline

import insterrors "github.com/stevehiehn/win10to8/internal/errors"

// StepResult is the immutable outcome of one step.
type StepResult struct {
	Succeeded bool   `json:"succeeded"`
	Skipped   bool   `json:"skipped,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Message   string `json:"message,omitempty"`
	ExitCode  int    `json:"exit_code,omitempty"`
	Stdout    string `json:"-"`
	Stderr    string `json:"-"`
}

// Succeed returns a successful result.
func Succeed(msg string) StepResult {
	return StepResult{Succeeded: true, Message: msg}
}

// Fail returns a failed result of the given error kind.
func Fail(kind, msg string) StepResult {
	return StepResult{Kind: kind, Message: msg}
}

// Skip marks a step that did not run because an input was missing.
func Skip(msg string) StepResult {
	return StepResult{Skipped: true, Kind: insterrors.MissingFile, Message: msg}
}

// Failure pairs a step name with its error message.
type Failure struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// Record is the per-step entry of a Summary.
type Record struct {
	Name        string      `json:"name"`
	Criticality Criticality `json:"criticality"`
	Result      StepResult  `json:"result"`
	Duration    string      `json:"duration,omitempty"`
}

// Summary is accumulated over one run and read once at the end.
type Summary struct {
	TotalSteps        int       `json:"total_steps"`
	SucceededRequired int       `json:"succeeded_required"`
	RequiredCount     int       `json:"required_count"`
	Failures          []Failure `json:"failures,omitempty"`
	Steps             []Record  `json:"steps"`
}

// AllRequiredSucceeded is the coarse signal that drives the reboot path.
func (s *Summary) AllRequiredSucceeded() bool {
	return s.SucceededRequired == s.RequiredCount
}
