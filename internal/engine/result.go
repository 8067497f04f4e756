package engine

import (
	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
)

// Step statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusDryRun  = "dry-run"
	StatusExplain = "explain"
)

// Result is the structured output of a manifest execution.
type Result struct {
	RunID             string                `json:"run_id"`
	Success           bool                  `json:"success"`
	RequiredSucceeded int                   `json:"required_succeeded"`
	RequiredCount     int                   `json:"required_count"`
	Steps             []StepResult          `json:"steps"`
	Artifacts         []string              `json:"artifacts,omitempty"`
	Errors            []insterrors.RunError `json:"errors,omitempty"`

	// Summary is set in run mode and feeds the reboot decision.
	Summary *pipeline.Summary `json:"-"`
}

// StepResult describes the outcome of a single step.
type StepResult struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Action     string `json:"action"`
	Required   bool   `json:"required,omitempty"`
	Status     string `json:"status"` // success, failed, skipped, dry-run, explain
	Kind       string `json:"kind,omitempty"`
	Message    string `json:"message,omitempty"`
	ExitCode   int    `json:"exit_code,omitempty"`
	StdoutRef  string `json:"stdout_ref,omitempty"`
	StderrRef  string `json:"stderr_ref,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Command    string `json:"command,omitempty"`
	DryRunInfo string `json:"dry_run_info,omitempty"`
}
