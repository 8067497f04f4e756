package plan

import (
	"fmt"
	"strings"

	"github.com/stevehiehn/win10to8/internal/action"
	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/paths"
	"github.com/stevehiehn/win10to8/internal/template"
)

// requiredParams lists the `with:` keys each registered action needs.
var requiredParams = map[string][]string{
	"copy.tree":       {"source", "destination"},
	"installer.run":   {"path"},
	"symbols.fetch":   {"tool", "server", "cache"},
	"dll.register":    {"path"},
	"task.import":     {"file"},
	"registry.import": {"file"},
}

var knownPaths = map[string]bool{
	paths.Base:        true,
	paths.Windows:     true,
	paths.System32:    true,
	paths.ProgramData: true,
	paths.SystemDrive: true,
}

// Validate checks a manifest for structural correctness.
func Validate(p *Plan, providedInputs map[string]string) error {
	// Check required inputs (skip if providedInputs is nil, e.g. validate-only mode)
	if providedInputs != nil {
		for name, inp := range p.Inputs {
			if !inp.Required {
				continue
			}
			if _, ok := providedInputs[name]; !ok && inp.Default == "" {
				return insterrors.NewValidationError(
					fmt.Sprintf("missing required input %q", name),
					fmt.Sprintf("Provide --input %s=<value>", name))
			}
		}
	}

	for name, inp := range p.Inputs {
		if err := checkRefs(p, fmt.Sprintf("input %q", name), inp.Default); err != nil {
			return err
		}
	}

	seen := map[string]bool{}
	for i, s := range p.Steps {
		if s.ID == "" {
			return insterrors.NewValidationError(fmt.Sprintf("step at index %d has no id", i), "")
		}
		if seen[s.ID] {
			return insterrors.NewValidationError(fmt.Sprintf("duplicate step id %q", s.ID), "")
		}
		seen[s.ID] = true

		if s.Action == "" {
			return &insterrors.RunError{
				Type:    insterrors.ValidationError,
				StepID:  s.ID,
				Message: "step has no action",
				Hint:    "Known actions: " + knownActionList(),
			}
		}
		if !action.Known(s.Action) {
			return &insterrors.RunError{
				Type:    insterrors.ToolNotFound,
				StepID:  s.ID,
				Message: fmt.Sprintf("unknown action %q", s.Action),
				Hint:    "Known actions: " + knownActionList(),
			}
		}
		for _, key := range requiredParams[s.Action] {
			if strings.TrimSpace(s.Params[key]) == "" {
				return &insterrors.RunError{
					Type:    insterrors.ValidationError,
					StepID:  s.ID,
					Message: fmt.Sprintf("%s requires param %q", s.Action, key),
				}
			}
		}
		if s.Action == "symbols.fetch" && len(s.Args) == 0 {
			return &insterrors.RunError{
				Type:    insterrors.ValidationError,
				StepID:  s.ID,
				Message: "symbols.fetch requires at least one binary in args",
			}
		}

		for _, str := range stepStrings(s) {
			if err := checkRefs(p, fmt.Sprintf("step %q", s.ID), str); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkRefs(p *Plan, where, s string) error {
	for _, ref := range template.Refs(s) {
		switch ref.Namespace {
		case "paths":
			if !knownPaths[ref.Name] {
				return insterrors.NewValidationError(
					fmt.Sprintf("%s references unknown path %q", where, ref.Name),
					"Known paths: base, windows, system32, programdata, systemdrive")
			}
		case "inputs":
			if _, ok := p.Inputs[ref.Name]; !ok {
				return insterrors.NewValidationError(
					fmt.Sprintf("%s references unknown input %q", where, ref.Name),
					"Declare it under inputs:")
			}
		}
	}
	return nil
}

func stepStrings(s Step) []string {
	strs := append([]string(nil), s.Args...)
	for _, v := range s.Params {
		strs = append(strs, v)
	}
	return strs
}

func knownActionList() string {
	return strings.Join(action.Names(), ", ")
}
