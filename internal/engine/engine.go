package engine

import (
	"context"
	"fmt"

	"github.com/stevehiehn/win10to8/internal/action"
	"github.com/stevehiehn/win10to8/internal/artifact"
	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/plan"
	"github.com/stevehiehn/win10to8/internal/template"
)

// Mode controls execution behavior.
type Mode int

const (
	ModeExplain Mode = iota
	ModeDryRun
	ModeRun
)

func (m Mode) String() string {
	switch m {
	case ModeExplain:
		return "explain"
	case ModeDryRun:
		return "dry-run"
	default:
		return "run"
	}
}

// FinalStatus is the last status line of a run.
const FinalStatus = "Installation complete!"

type resolvedStep struct {
	step plan.Step
	act  action.Action
	req  action.Request
}

// Execute runs a manifest in the given mode. Errors are returned only for
// problems that stop the manifest from being executed at all; step
// failures are part of the Result.
func Execute(ctx context.Context, p *plan.Plan, rc *RunContext, mode Mode) (*Result, error) {
	steps := make([]resolvedStep, 0, len(p.Steps))
	for _, s := range p.Steps {
		rs, err := resolve(s, rc)
		if err != nil {
			return nil, err
		}
		steps = append(steps, rs)
	}

	result := &Result{RunID: rc.RunID, RequiredCount: p.RequiredCount()}
	if mode != ModeRun {
		for _, rs := range steps {
			sr := StepResult{
				ID:         rs.step.ID,
				Name:       rs.step.Label(),
				Action:     rs.step.Action,
				Required:   rs.step.Required,
				DryRunInfo: rs.act.DryRun(rs.req),
			}
			if mode == ModeExplain {
				sr.Status = StatusExplain
				sr.Command = fmt.Sprintf("action: %s", rs.step.Action)
			} else {
				sr.Status = StatusDryRun
			}
			result.Steps = append(result.Steps, sr)
		}
		result.Success = true
		return result, nil
	}

	return run(ctx, steps, rc, result), nil
}

func run(ctx context.Context, steps []resolvedStep, rc *RunContext, result *Result) *Result {
	store, err := artifact.New(rc.RunID, rc.StateDir)
	if err != nil {
		rc.Log.WithError(err).Warn("run record disabled")
	} else {
		result.Artifacts = []string{store.BaseDir}
	}

	pl := pipeline.New()
	for _, rs := range steps {
		crit := pipeline.Optional
		if rs.step.Required {
			crit = pipeline.Required
		}
		env := &action.Env{
			StepID:   rs.step.ID,
			Runner:   rc.Runner,
			Observer: rc.Observer,
			Log:      rc.Log.WithField("step", rs.step.ID).WithField("action", rs.step.Action),
		}
		pl.AddStep(rs.step.Label(), func(ctx context.Context) pipeline.StepResult {
			return rs.act.Execute(ctx, env, rs.req)
		}, crit)
	}

	rc.Log.WithField("steps", pl.Len()).Info("starting install")
	summary := pl.Run(ctx, rc.Observer.Status)
	rc.Observer.Status(FinalStatus)

	result.Summary = summary
	result.Success = summary.AllRequiredSucceeded()
	result.RequiredSucceeded = summary.SucceededRequired
	result.RequiredCount = summary.RequiredCount

	for i, rec := range summary.Steps {
		rs := steps[i]
		sr := StepResult{
			ID:       rs.step.ID,
			Name:     rec.Name,
			Action:   rs.step.Action,
			Required: rs.step.Required,
			Kind:     rec.Result.Kind,
			Message:  rec.Result.Message,
			ExitCode: rec.Result.ExitCode,
			Duration: rec.Duration,
		}
		switch {
		case rec.Result.Succeeded:
			sr.Status = StatusSuccess
		case rec.Result.Skipped:
			sr.Status = StatusSkipped
		default:
			sr.Status = StatusFailed
		}

		if store != nil {
			stdoutRef, stderrRef, err := store.WriteStepOutput(rs.step.ID, rec.Result.Stdout, rec.Result.Stderr)
			if err != nil {
				rc.Log.WithError(err).WithField("step", rs.step.ID).Warn("writing step output")
			}
			sr.StdoutRef, sr.StderrRef = stdoutRef, stderrRef
		}

		if !rec.Result.Succeeded {
			result.Errors = append(result.Errors, insterrors.RunError{
				Type:    rec.Result.Kind,
				StepID:  rs.step.ID,
				Message: rec.Result.Message,
			})
		}
		result.Steps = append(result.Steps, sr)

		rc.Log.WithField("step", rs.step.ID).WithField("status", sr.Status).WithField("duration", sr.Duration).Info(rec.Result.Message)
	}

	rc.Log.WithField("required", fmt.Sprintf("%d/%d", result.RequiredSucceeded, result.RequiredCount)).
		WithField("failures", len(summary.Failures)).Info("install finished")

	if store != nil {
		if err := store.WriteResult(result); err != nil {
			rc.Log.WithError(err).Warn("writing run result")
		}
	}
	return result
}

func resolve(s plan.Step, rc *RunContext) (resolvedStep, error) {
	act, err := action.Get(s.Action)
	if err != nil {
		return resolvedStep{}, &insterrors.RunError{Type: insterrors.ToolNotFound, StepID: s.ID, Message: err.Error()}
	}

	req := action.Request{Params: map[string]string{}}
	for k, v := range s.Params {
		resolved, err := template.Resolve(v, rc.TmplCtx)
		if err != nil {
			return resolvedStep{}, fmt.Errorf("resolving param %q for step %q: %w", k, s.ID, err)
		}
		req.Params[k] = resolved
	}
	for i, a := range s.Args {
		resolved, err := template.Resolve(a, rc.TmplCtx)
		if err != nil {
			return resolvedStep{}, fmt.Errorf("resolving arg %d for step %q: %w", i, s.ID, err)
		}
		req.Args = append(req.Args, resolved)
	}
	return resolvedStep{step: s, act: act, req: req}, nil
}
