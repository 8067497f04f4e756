// Package pipeline runs an ordered list of install steps one at a time.
// A failing step is recorded and the run moves on to the next one.
package pipeline

import (
	"context"
	"fmt"
	"time"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
)

// Criticality decides whether a step counts toward the required tally.
type Criticality int

const (
	Optional Criticality = iota
	Required
)

func (c Criticality) String() string {
	if c == Required {
		return "required"
	}
	return "optional"
}

func (c Criticality) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ActionFunc performs one step's side effect.
type ActionFunc func(ctx context.Context) StepResult

// Step is one named unit of work. Steps are immutable once added.
type Step struct {
	name        string
	action      ActionFunc
	criticality Criticality
}

// Pipeline holds steps in the order they were added.
type Pipeline struct {
	steps []Step
}

// New returns an empty pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// AddStep appends a step.
func (p *Pipeline) AddStep(name string, action ActionFunc, criticality Criticality) {
	p.steps = append(p.steps, Step{name: name, action: action, criticality: criticality})
}

// Len returns the number of steps.
func (p *Pipeline) Len() int { return len(p.steps) }

// Run executes every step in declaration order. onStatus, when non-nil,
// receives each step name before the step starts.
func (p *Pipeline) Run(ctx context.Context, onStatus func(string)) *Summary {
	sum := &Summary{TotalSteps: len(p.steps)}
	for _, s := range p.steps {
		if s.criticality == Required {
			sum.RequiredCount++
		}
	}

	for _, s := range p.steps {
		if onStatus != nil {
			onStatus(s.name)
		}

		start := time.Now()
		res := invoke(ctx, s)
		rec := Record{
			Name:        s.name,
			Criticality: s.criticality,
			Result:      res,
			Duration:    time.Since(start).Round(time.Millisecond).String(),
		}
		sum.Steps = append(sum.Steps, rec)

		if res.Succeeded {
			if s.criticality == Required {
				sum.SucceededRequired++
			}
			continue
		}
		sum.Failures = append(sum.Failures, Failure{Step: s.name, Message: res.Message})
	}
	return sum
}

// invoke turns a panicking action into a failed result.
func invoke(ctx context.Context, s Step) (res StepResult) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail(insterrors.StepFailed, fmt.Sprintf("step %q panicked: %v", s.name, r))
		}
	}()
	if s.action == nil {
		return Fail(insterrors.StepFailed, fmt.Sprintf("step %q has no action", s.name))
	}
	return s.action(ctx)
}
